package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

type TodoReadRepository struct {
	api SheetsAPI
}

func NewTodoReadRepository(api SheetsAPI) *TodoReadRepository {
	return &TodoReadRepository{api: api}
}

// FindAll returns every todo row, unfiltered.
func (r *TodoReadRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.api.Get(ctx, todosRange)
	if err != nil {
		logger.Log.Errorw("failed to read todos sheet", "err", err)
		return nil, err
	}

	recs := mapRows(rows)
	todos := make([]models.Todo, 0, len(recs))
	for _, rec := range recs {
		todos = append(todos, todoFromRecord(rec))
	}
	return todos, nil
}

// FindByUser returns the todos owned by the given user.
func (r *TodoReadRepository) FindByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, len(all))
	for _, todo := range all {
		if todo.UserID == userID {
			todos = append(todos, todo)
		}
	}
	return todos, nil
}

// FindByID linear-scans the Todos sheet. Returns (nil, nil) when the id is
// not present.
func (r *TodoReadRepository) FindByID(ctx context.Context, id string) (*models.Todo, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

type TodoWriteRepository struct {
	api SheetsAPI
}

func NewTodoWriteRepository(api SheetsAPI) *TodoWriteRepository {
	return &TodoWriteRepository{api: api}
}

// Append adds the todo as a new row at the end of the Todos sheet.
func (r *TodoWriteRepository) Append(ctx context.Context, todo *models.Todo) error {
	if err := r.api.Append(ctx, todosSheet, todoToRow(todo)); err != nil {
		logger.Log.Errorw("failed to append todo row", "err", err, "todo_id", todo.ID)
		return err
	}
	return nil
}

// Update overwrites the full row holding the todo's id.
// Returns ErrRowNotFound if the id is no longer present.
func (r *TodoWriteRepository) Update(ctx context.Context, todo *models.Todo) error {
	idx, err := r.rowIndex(ctx, todo.ID)
	if err != nil {
		return err
	}

	writeRange := fmt.Sprintf("%s!A%d:I%d", todosSheet, idx, idx)
	if err := r.api.Update(ctx, writeRange, todoToRow(todo)); err != nil {
		logger.Log.Errorw("failed to update todo row", "err", err, "todo_id", todo.ID)
		return err
	}
	return nil
}

// Clear blanks the row holding the given id, leaving a tombstone row that
// readers skip. Returns ErrRowNotFound if the id is not present.
func (r *TodoWriteRepository) Clear(ctx context.Context, id string) error {
	idx, err := r.rowIndex(ctx, id)
	if err != nil {
		return err
	}

	clearRange := fmt.Sprintf("%s!A%d:I%d", todosSheet, idx, idx)
	if err := r.api.Clear(ctx, clearRange); err != nil {
		logger.Log.Errorw("failed to clear todo row", "err", err, "todo_id", id)
		return err
	}
	return nil
}

// rowIndex scans the id column and returns the 1-based sheet row number.
func (r *TodoWriteRepository) rowIndex(ctx context.Context, id string) (int, error) {
	ids, err := r.api.Get(ctx, todosSheet+"!A:A")
	if err != nil {
		logger.Log.Errorw("failed to read todo id column", "err", err)
		return 0, err
	}

	for i, row := range ids {
		if len(row) > 0 && row[0] == id {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}

func todoFromRecord(rec map[string]string) models.Todo {
	createdAt, _ := time.Parse(time.RFC3339, rec["createdAt"])
	updatedAt, _ := time.Parse(time.RFC3339, rec["updatedAt"])
	completed, _ := strconv.ParseBool(strings.ToLower(rec["completed"]))
	return models.Todo{
		ID:          rec["id"],
		Title:       rec["title"],
		Description: rec["description"],
		ImageID:     rec["imageId"],
		ImageLink:   rec["imageLink"],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Completed:   completed,
		UserID:      rec["userId"],
	}
}

func todoToRow(todo *models.Todo) []string {
	completed := "FALSE"
	if todo.Completed {
		completed = "TRUE"
	}
	return []string{
		todo.ID,
		todo.Title,
		todo.Description,
		todo.ImageID,
		todo.ImageLink,
		todo.CreatedAt.UTC().Format(time.RFC3339),
		todo.UpdatedAt.UTC().Format(time.RFC3339),
		completed,
		todo.UserID,
	}
}
