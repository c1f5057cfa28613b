package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

//go:generate mockgen -source=todo_delete.go -destination=todo_delete_mock.go -package=handlers

// TodoDeleter defines the interface for deleting a todo.
type TodoDeleter interface {
	Delete(ctx context.Context, id, callerID string, callerRole models.Role) error
}

// DeleteTodoResponse confirms a deletion
// swagger:model DeleteTodoResponse
type DeleteTodoResponse struct {
	// Deleted todo id
	ID string `json:"id"`

	// Confirmation message
	// default: Todo deleted successfully
	Message string `json:"message"`
}

// NewDeleteTodoHandler returns an HTTP handler deleting a todo and its
// stored image.
// @Summary Delete a todo
// @Description Deletes the todo's stored image, then clears its row. Owner or admin only.
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} handlers.DeleteTodoResponse "Deletion confirmation"
// @Failure 403 {object} handlers.MessageResponse "Access denied"
// @Failure 404 {object} handlers.MessageResponse "Todo not found"
// @Router /api/todos/{id} [delete]
// @Security BearerAuth
func NewDeleteTodoHandler(svc TodoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id, claims.UserID, claims.Role); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteTodoResponse{
			ID:      id,
			Message: "Todo deleted successfully",
		})
	}
}
