package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/repositories"
)

//go:generate mockgen -source=todo.go -destination=todo_mock.go -package=services

// Error variables
var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrTitleRequired = errors.New("title is required")
)

// TodoReader defines read-only operations for todos.
type TodoReader interface {
	FindAll(ctx context.Context) ([]models.Todo, error)
	FindByUser(ctx context.Context, userID string) ([]models.Todo, error)
	FindByID(ctx context.Context, id string) (*models.Todo, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	Append(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	Clear(ctx context.Context, id string) error
}

// ImageStorage stores and removes image blobs.
type ImageStorage interface {
	Upload(ctx context.Context, data []byte, name, mimeType string) (*models.Image, error)
	Delete(ctx context.Context, id string) error
}

// TodoCreate carries the fields accepted when creating a todo.
type TodoCreate struct {
	Title       string
	Description string
	Completed   bool
}

// TodoUpdate carries a partial update; nil fields keep their prior values.
type TodoUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoService handles todo CRUD with owner-or-admin authorization and
// image orchestration.
type TodoService struct {
	reader TodoReader
	writer TodoWriter
	images ImageStorage
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(reader TodoReader, writer TodoWriter, images ImageStorage) *TodoService {
	return &TodoService{
		reader: reader,
		writer: writer,
		images: images,
	}
}

// ListAll returns every todo. Restricted to admins.
func (svc *TodoService) ListAll(ctx context.Context, callerRole models.Role) ([]models.Todo, error) {
	if callerRole != models.RoleAdmin {
		return nil, ErrAccessDenied
	}
	return svc.reader.FindAll(ctx)
}

// ListByUser returns the caller's own todos.
func (svc *TodoService) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	return svc.reader.FindByUser(ctx, userID)
}

// Get fetches a todo by id, allowing only its owner or an admin.
func (svc *TodoService) Get(ctx context.Context, id, callerID string, callerRole models.Role) (*models.Todo, error) {
	todo, err := svc.reader.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	if !canAccess(todo, callerID, callerRole) {
		logger.Log.Errorw("todo access denied", "todo_id", id, "caller_id", callerID)
		return nil, ErrAccessDenied
	}
	return todo, nil
}

// Create validates and persists a new todo owned by the caller. An attached
// image is uploaded first so the stored row carries its reference.
func (svc *TodoService) Create(ctx context.Context, callerID string, in TodoCreate, image *models.ImageUpload) (*models.Todo, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Completed:   in.Completed,
		UserID:      callerID,
	}

	if image != nil {
		stored, err := svc.images.Upload(ctx, image.Data, image.Name, image.MimeType)
		if err != nil {
			return nil, err
		}
		todo.ImageID = stored.ID
		todo.ImageLink = stored.Link
	}

	if err := svc.writer.Append(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update merges the supplied fields over the existing todo and overwrites
// its row. Owner and creation timestamp never change. When a new image is
// attached the old one is deleted before the upload; a failed upload after
// a successful delete leaves the todo imageless, which is accepted.
func (svc *TodoService) Update(ctx context.Context, id, callerID string, callerRole models.Role, in TodoUpdate, image *models.ImageUpload) (*models.Todo, error) {
	todo, err := svc.Get(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if image != nil {
		if todo.ImageID != "" {
			if err := svc.images.Delete(ctx, todo.ImageID); err != nil {
				return nil, err
			}
		}
		stored, err := svc.images.Upload(ctx, image.Data, image.Name, image.MimeType)
		if err != nil {
			return nil, err
		}
		todo.ImageID = stored.ID
		todo.ImageLink = stored.Link
	}

	if in.Title != nil && *in.Title != "" {
		todo.Title = *in.Title
	}
	if in.Description != nil {
		todo.Description = *in.Description
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := svc.writer.Update(ctx, todo); err != nil {
		if errors.Is(err, repositories.ErrRowNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

// Delete removes a todo's stored image, then clears its row.
func (svc *TodoService) Delete(ctx context.Context, id, callerID string, callerRole models.Role) error {
	todo, err := svc.Get(ctx, id, callerID, callerRole)
	if err != nil {
		return err
	}

	if todo.ImageID != "" {
		if err := svc.images.Delete(ctx, todo.ImageID); err != nil {
			return err
		}
	}

	if err := svc.writer.Clear(ctx, todo.ID); err != nil {
		if errors.Is(err, repositories.ErrRowNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}

// canAccess implements the shared ownership check: admins bypass ownership,
// everyone else must own the todo.
func canAccess(todo *models.Todo, callerID string, callerRole models.Role) bool {
	return callerRole == models.RoleAdmin || todo.UserID == callerID
}
