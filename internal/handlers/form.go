package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/akarpov87/todo-sheets-api/internal/models"
)

const maxUploadSize = 10 << 20

// todoForm holds the multipart fields shared by create and update. Pointers
// distinguish "absent" from "empty" so updates can be partial.
type todoForm struct {
	Title       *string
	Description *string
	Completed   *bool
}

// readTodoForm parses the multipart body of a create/update request and
// reads the optional image file into memory.
func readTodoForm(r *http.Request) (todoForm, *models.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return todoForm{}, nil, err
	}

	var form todoForm
	if vs, ok := r.MultipartForm.Value["title"]; ok && len(vs) > 0 {
		form.Title = &vs[0]
	}
	if vs, ok := r.MultipartForm.Value["description"]; ok && len(vs) > 0 {
		form.Description = &vs[0]
	}
	if vs, ok := r.MultipartForm.Value["completed"]; ok && len(vs) > 0 {
		completed, err := strconv.ParseBool(vs[0])
		if err != nil {
			return todoForm{}, nil, err
		}
		form.Completed = &completed
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil, nil
		}
		return todoForm{}, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return todoForm{}, nil, err
	}

	return form, &models.ImageUpload{
		Data:     data,
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}
