package handlers

import (
	"context"
	"net/http"

	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

//go:generate mockgen -source=todo_create.go -destination=todo_create_mock.go -package=handlers

// TodoCreator defines the interface for creating a todo.
type TodoCreator interface {
	Create(ctx context.Context, callerID string, in services.TodoCreate, image *models.ImageUpload) (*models.Todo, error)
}

// NewCreateTodoHandler returns an HTTP handler creating a todo from a
// multipart form with an optional image file.
// @Summary Create a todo
// @Description Creates a todo owned by the caller. Accepts multipart form fields title, description, completed and an optional image file.
// @Tags todos
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param completed formData boolean false "Completed"
// @Param image formData file false "Image attachment"
// @Success 201 {object} models.Todo "Created todo"
// @Failure 400 {object} handlers.MessageResponse "Invalid form / missing title"
// @Router /api/todos [post]
// @Security BearerAuth
func NewCreateTodoHandler(svc TodoCreator) http.HandlerFunc {
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

		create := services.TodoCreate{}
		if form.Title != nil {
			create.Title = *form.Title
		}
		if form.Description != nil {
			create.Description = *form.Description
		}
		if form.Completed != nil {
			create.Completed = *form.Completed
		}

		todo, err := svc.Create(r.Context(), claims.UserID, create, image)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, todo)
	}
}
