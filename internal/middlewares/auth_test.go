package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/todo-sheets-api/internal/jwt"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: "user-1", Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name         string
		mockSetup    func(m *MockClaimsParser)
		expectedCode int
		expectClaims bool
	}{
		{
			name: "valid token attaches claims",
			mockSetup: func(m *MockClaimsParser) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode: http.StatusOK,
			expectClaims: true,
		},
		{
			name: "missing token",
			mockSetup: func(m *MockClaimsParser) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(m *MockClaimsParser) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				m.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewMockClaimsParser(ctrl)
			tt.mockSetup(parser)

			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/todos/user", nil)
			AuthMiddleware(parser)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectClaims {
				assert.Equal(t, claims, gotClaims)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name         string
		roles        []models.Role
		claims       *jwt.Claims
		expectedCode int
	}{
		{
			name:         "no claims in context",
			roles:        []models.Role{models.RoleAdmin},
			claims:       nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "role allowed",
			roles:        []models.Role{models.RoleAdmin},
			claims:       &jwt.Claims{UserID: "user-1", Role: models.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "role denied",
			roles:        []models.Role{models.RoleAdmin},
			claims:       &jwt.Claims{UserID: "user-1", Role: models.RoleUser},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "empty list allows any authenticated identity",
			roles:        nil,
			claims:       &jwt.Claims{UserID: "user-1", Role: models.RoleUser},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}

			RequireRoles(tt.roles...)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))
}
