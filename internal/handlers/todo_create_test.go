package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

type formFile struct {
	field    string
	name     string
	mimeType string
	data     []byte
}

// multipartBody assembles a multipart form body from plain fields and an
// optional file part.
func multipartBody(t *testing.T, fields map[string]string, file *formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}

	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.mimeType)

		part, err := mw.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(file.data)
		assert.NoError(t, err)
	}

	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateTodoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates from form fields", func(t *testing.T) {
		mockSvc := NewMockTodoCreator(ctrl)
		created := &models.Todo{ID: "t1", Title: "Buy milk", Description: "2 liters", Completed: true, UserID: "u1"}

		mockSvc.EXPECT().
			Create(gomock.Any(), "u1", services.TodoCreate{Title: "Buy milk", Description: "2 liters", Completed: true}, nil).
			Return(created, nil)

		body, contentType := multipartBody(t, map[string]string{
			"title":       "Buy milk",
			"description": "2 liters",
			"completed":   "true",
		}, nil)

		req := authedRequest(http.MethodPost, "/api/todos", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		NewCreateTodoHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var todo models.Todo
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
		assert.Equal(t, *created, todo)
	})

	t.Run("forwards the image file", func(t *testing.T) {
		mockSvc := NewMockTodoCreator(ctrl)
		created := &models.Todo{ID: "t1", Title: "Buy milk", ImageID: "img-1", UserID: "u1"}

		mockSvc.EXPECT().
			Create(gomock.Any(), "u1", services.TodoCreate{Title: "Buy milk"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ services.TodoCreate, image *models.ImageUpload) (*models.Todo, error) {
				assert.Equal(t, "cat.png", image.Name)
				assert.Equal(t, "image/png", image.MimeType)
				assert.Equal(t, []byte("png-bytes"), image.Data)
				return created, nil
			})

		body, contentType := multipartBody(t, map[string]string{"title": "Buy milk"}, &formFile{
			field:    "image",
			name:     "cat.png",
			mimeType: "image/png",
			data:     []byte("png-bytes"),
		})

		req := authedRequest(http.MethodPost, "/api/todos", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		NewCreateTodoHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		mockSvc := NewMockTodoCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "u1", services.TodoCreate{}, nil).
			Return(nil, services.ErrTitleRequired)

		body, contentType := multipartBody(t, map[string]string{}, nil)

		req := authedRequest(http.MethodPost, "/api/todos", body, userClaims("u1"))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		NewCreateTodoHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "title is required", resp.Message)
	})

	t.Run("body is not multipart", func(t *testing.T) {
		mockSvc := NewMockTodoCreator(ctrl)

		req := authedRequest(http.MethodPost, "/api/todos", bytes.NewBufferString("{}"), userClaims("u1"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		NewCreateTodoHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		mockSvc := NewMockTodoCreator(ctrl)

		rec := httptest.NewRecorder()
		NewCreateTodoHandler(mockSvc)(rec, authedRequest(http.MethodPost, "/api/todos", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
