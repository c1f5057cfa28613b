package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

//go:generate mockgen -source=todo_get.go -destination=todo_get_mock.go -package=handlers

// TodoGetter defines the interface for fetching one todo.
type TodoGetter interface {
	Get(ctx context.Context, id, callerID string, callerRole models.Role) (*models.Todo, error)
}

// NewGetTodoHandler returns an HTTP handler fetching a todo by id.
// @Summary Get a todo
// @Description Returns the todo with the given id. Owner or admin only.
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} models.Todo "The todo"
// @Failure 403 {object} handlers.MessageResponse "Access denied"
// @Failure 404 {object} handlers.MessageResponse "Todo not found"
// @Router /api/todos/{id} [get]
// @Security BearerAuth
func NewGetTodoHandler(svc TodoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		todo, err := svc.Get(r.Context(), chi.URLParam(r, "id"), claims.UserID, claims.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
