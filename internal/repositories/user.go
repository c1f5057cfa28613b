package repositories

import (
	"context"
	"time"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

type UserReadRepository struct {
	api SheetsAPI
}

func NewUserReadRepository(api SheetsAPI) *UserReadRepository {
	return &UserReadRepository{api: api}
}

// FindByUsername linear-scans the Users sheet. Returns (nil, nil) when the
// username is not present.
func (r *UserReadRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	rows, err := r.api.Get(ctx, usersRange)
	if err != nil {
		logger.Log.Errorw("failed to read users sheet", "err", err)
		return nil, err
	}

	for _, rec := range mapRows(rows) {
		if rec["username"] == username {
			user := userFromRecord(rec)
			return &user, nil
		}
	}
	return nil, nil
}

type UserWriteRepository struct {
	api SheetsAPI
}

func NewUserWriteRepository(api SheetsAPI) *UserWriteRepository {
	return &UserWriteRepository{api: api}
}

// Save appends the user as a new row at the end of the Users sheet.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.api.Append(ctx, usersSheet, userToRow(user)); err != nil {
		logger.Log.Errorw("failed to append user row", "err", err, "username", user.Username)
		return err
	}
	return nil
}

func userFromRecord(rec map[string]string) models.User {
	createdAt, _ := time.Parse(time.RFC3339, rec["createdAt"])
	return models.User{
		ID:        rec["id"],
		Username:  rec["username"],
		Password:  rec["password"],
		Role:      models.ParseRole(rec["role"]),
		CreatedAt: createdAt,
	}
}

func userToRow(user *models.User) []string {
	return []string{
		user.ID,
		user.Username,
		user.Password,
		user.Role.String(),
		user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
