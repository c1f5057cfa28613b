package handlers

import (
	"context"
	"net/http"

	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

//go:generate mockgen -source=todo_list.go -destination=todo_list_mock.go -package=handlers

// AllTodosLister defines the interface for listing every todo.
type AllTodosLister interface {
	ListAll(ctx context.Context, callerRole models.Role) ([]models.Todo, error)
}

// UserTodosLister defines the interface for listing the caller's todos.
type UserTodosLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
}

// NewListTodosHandler returns an HTTP handler listing every todo.
// @Summary List all todos
// @Description Returns every todo record, unfiltered. Admin only.
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo "All todos"
// @Failure 401 {object} handlers.MessageResponse "Not authorized"
// @Failure 403 {object} handlers.MessageResponse "Access denied"
// @Router /api/todos [get]
// @Security BearerAuth
func NewListTodosHandler(svc AllTodosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		todos, err := svc.ListAll(r.Context(), claims.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, todos)
	}
}

// NewListUserTodosHandler returns an HTTP handler listing the caller's todos.
// @Summary List own todos
// @Description Returns the todos owned by the authenticated caller.
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo "Caller's todos"
// @Failure 401 {object} handlers.MessageResponse "Not authorized"
// @Router /api/todos/user [get]
// @Security BearerAuth
func NewListUserTodosHandler(svc UserTodosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		todos, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, todos)
	}
}
