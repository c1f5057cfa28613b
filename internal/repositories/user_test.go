package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/todo-sheets-api/internal/models"
)

func usersSheetRows() [][]string {
	return [][]string{
		{"id", "username", "password", "role", "createdAt"},
		{"u1", "alice", "$2a$10$hash1", "user", "2024-05-01T10:00:00Z"},
		{"u2", "admin", "$2a$10$hash2", "admin", "2024-05-01T09:00:00Z"},
	}
}

func TestUserReadRepository_FindByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		username string
		rows     [][]string
		apiErr   error
		want     *models.User
		wantErr  bool
	}{
		{
			name:     "found",
			username: "alice",
			rows:     usersSheetRows(),
			want: &models.User{
				ID:        "u1",
				Username:  "alice",
				Password:  "$2a$10$hash1",
				Role:      models.RoleUser,
				CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "admin role parsed",
			username: "admin",
			rows:     usersSheetRows(),
			want: &models.User{
				ID:        "u2",
				Username:  "admin",
				Password:  "$2a$10$hash2",
				Role:      models.RoleAdmin,
				CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "not found returns nil without error",
			username: "carol",
			rows:     usersSheetRows(),
			want:     nil,
		},
		{
			name:     "api error",
			username: "alice",
			apiErr:   errors.New("sheets unavailable"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := NewMockSheetsAPI(ctrl)
			api.EXPECT().Get(gomock.Any(), "Users!A:E").Return(tt.rows, tt.apiErr)

			repo := NewUserReadRepository(api)
			user, err := repo.FindByUsername(context.Background(), tt.username)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:        "u3",
		Username:  "carol",
		Password:  "$2a$10$hash3",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2024, 5, 2, 12, 30, 0, 0, time.UTC),
	}

	api := NewMockSheetsAPI(ctrl)
	api.EXPECT().
		Append(gomock.Any(), "Users", []string{"u3", "carol", "$2a$10$hash3", "user", "2024-05-02T12:30:00Z"}).
		Return(nil)

	repo := NewUserWriteRepository(api)
	assert.NoError(t, repo.Save(context.Background(), user))
}

func TestUserWriteRepository_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSheetsAPI(ctrl)
	api.EXPECT().Append(gomock.Any(), "Users", gomock.Any()).Return(errors.New("append failed"))

	repo := NewUserWriteRepository(api)
	assert.Error(t, repo.Save(context.Background(), &models.User{ID: "u1"}))
}
