package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		body        string
		mockUser    *models.User
		mockErr     error
		skipCall    bool
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful registration",
			body: `{"username":"alice","password":"secret1"}`,
			mockUser: &models.User{
				ID:       "u1",
				Username: "alice",
				Password: "$2a$10$hash",
				Role:     models.RoleUser,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "username taken",
			body:        `{"username":"alice","password":"secret1"}`,
			mockErr:     services.ErrUserAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username already exists",
		},
		{
			name:        "password too short",
			body:        `{"username":"alice","password":"abc"}`,
			mockErr:     services.ErrPasswordTooShort,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password must be at least 6 characters",
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			skipCall:    true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if !tt.skipCall {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.mockUser, tt.mockErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantMessage != "" {
				var resp MessageResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
				return
			}

			var resp UserResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.mockUser.ID, resp.ID)
			assert.Equal(t, tt.mockUser.Username, resp.Username)
			assert.Equal(t, tt.mockUser.Role, resp.Role)
			assert.NotContains(t, rec.Body.String(), "$2a$10$hash", "password hash must never be returned")
		})
	}
}
