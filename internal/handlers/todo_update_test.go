package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

func TestUpdateTodoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serve := func(svc TodoUpdater, req *http.Request) *httptest.ResponseRecorder {
		router := chi.NewRouter()
		router.Put("/api/todos/{id}", NewUpdateTodoHandler(svc))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("forwards only the supplied fields", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)
		updated := &models.Todo{ID: "t1", Title: "Buy milk", Completed: true, UserID: "u1"}

		mockSvc.EXPECT().
			Update(gomock.Any(), "t1", "u1", models.RoleUser, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _, _ string, _ models.Role, in services.TodoUpdate, _ *models.ImageUpload) (*models.Todo, error) {
				assert.Nil(t, in.Title)
				assert.Nil(t, in.Description)
				if assert.NotNil(t, in.Completed) {
					assert.True(t, *in.Completed)
				}
				return updated, nil
			})

		body, contentType := multipartBody(t, map[string]string{"completed": "true"}, nil)
		req := authedRequest(http.MethodPut, "/api/todos/t1", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)

		rec := serve(mockSvc, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var todo models.Todo
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
		assert.Equal(t, *updated, todo)
	})

	t.Run("forwards a replacement image", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)
		updated := &models.Todo{ID: "t1", Title: "Buy milk", ImageID: "img-new", UserID: "u1"}

		mockSvc.EXPECT().
			Update(gomock.Any(), "t1", "u1", models.RoleUser, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ models.Role, _ services.TodoUpdate, image *models.ImageUpload) (*models.Todo, error) {
				assert.Equal(t, "new.png", image.Name)
				assert.Equal(t, []byte("new-bytes"), image.Data)
				return updated, nil
			})

		body, contentType := multipartBody(t, nil, &formFile{
			field:    "image",
			name:     "new.png",
			mimeType: "image/png",
			data:     []byte("new-bytes"),
		})
		req := authedRequest(http.MethodPut, "/api/todos/t1", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)

		rec := serve(mockSvc, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign todo is forbidden", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), "t1", "u2", models.RoleUser, gomock.Any(), nil).
			Return(nil, services.ErrAccessDenied)

		body, contentType := multipartBody(t, map[string]string{"title": "Hijack"}, nil)
		req := authedRequest(http.MethodPut, "/api/todos/t1", body, userClaims("u2"))
		req.Header.Set("Content-Type", contentType)

		rec := serve(mockSvc, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("absent todo", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), "t99", "u1", models.RoleUser, gomock.Any(), nil).
			Return(nil, services.ErrTodoNotFound)

		body, contentType := multipartBody(t, map[string]string{"title": "Whatever"}, nil)
		req := authedRequest(http.MethodPut, "/api/todos/t99", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)

		rec := serve(mockSvc, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp MessageResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Todo not found", resp.Message)
	})

	t.Run("unparsable completed flag", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)

		body, contentType := multipartBody(t, map[string]string{"completed": "maybe"}, nil)
		req := authedRequest(http.MethodPut, "/api/todos/t1", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)

		rec := serve(mockSvc, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		mockSvc := NewMockTodoUpdater(ctrl)

		rec := serve(mockSvc, authedRequest(http.MethodPut, "/api/todos/t1", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
