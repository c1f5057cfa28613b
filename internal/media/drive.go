package media

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

// DriveStorage stores image blobs in a fixed Google Drive folder and serves
// them through public links.
type DriveStorage struct {
	svc      *drive.Service
	folderID string
}

// NewDriveStorage creates a storage bound to one Drive folder.
func NewDriveStorage(svc *drive.Service, folderID string) *DriveStorage {
	return &DriveStorage{svc: svc, folderID: folderID}
}

var whitespace = regexp.MustCompile(`\s+`)

// storageName builds a collision-resistant object name from the upload
// timestamp and the sanitized original file name.
func storageName(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), whitespace.ReplaceAllString(original, "_"))
}

// Upload stores the payload in the target folder, makes it world-readable
// and returns its id, stored name and public link.
func (s *DriveStorage) Upload(ctx context.Context, data []byte, name, mimeType string) (*models.Image, error) {
	meta := &drive.File{
		Name:    storageName(name),
		Parents: []string{s.folderID},
	}

	file, err := s.svc.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id", "name").
		Context(ctx).
		Do()
	if err != nil {
		logger.Log.Errorw("failed to upload image", "err", err, "name", name)
		return nil, err
	}

	perm := &drive.Permission{Role: "reader", Type: "anyone"}
	if _, err := s.svc.Permissions.Create(file.Id, perm).Context(ctx).Do(); err != nil {
		logger.Log.Errorw("failed to set image permission", "err", err, "file_id", file.Id)
		return nil, err
	}

	return &models.Image{
		ID:   file.Id,
		Name: file.Name,
		Link: "https://drive.google.com/uc?id=" + file.Id,
	}, nil
}

// Delete removes a stored object. An empty id is a no-op so callers can
// pass a todo's image reference without checking it first.
func (s *DriveStorage) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.svc.Files.Delete(id).Context(ctx).Do(); err != nil {
		logger.Log.Errorw("failed to delete image", "err", err, "file_id", id)
		return err
	}
	return nil
}
