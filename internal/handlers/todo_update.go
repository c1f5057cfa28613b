package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

//go:generate mockgen -source=todo_update.go -destination=todo_update_mock.go -package=handlers

// TodoUpdater defines the interface for updating a todo.
type TodoUpdater interface {
	Update(ctx context.Context, id, callerID string, callerRole models.Role, in services.TodoUpdate, image *models.ImageUpload) (*models.Todo, error)
}

// NewUpdateTodoHandler returns an HTTP handler merging multipart form fields
// over an existing todo. A new image file replaces the stored one.
// @Summary Update a todo
// @Description Merges the supplied fields over the existing todo. Owner or admin only. A new image replaces the stored one.
// @Tags todos
// @Accept mpfd
// @Produce json
// @Param id path string true "Todo id"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param completed formData boolean false "Completed"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.Todo "Updated todo"
// @Failure 403 {object} handlers.MessageResponse "Access denied"
// @Failure 404 {object} handlers.MessageResponse "Todo not found"
// @Router /api/todos/{id} [put]
// @Security BearerAuth
func NewUpdateTodoHandler(svc TodoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		form, image, err := readTodoForm(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		update := services.TodoUpdate{
			Title:       form.Title,
			Description: form.Description,
			Completed:   form.Completed,
		}

		todo, err := svc.Update(r.Context(), chi.URLParam(r, "id"), claims.UserID, claims.Role, update, image)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
