package repositories

import (
	"context"
	"errors"
)

//go:generate mockgen -source=sheets.go -destination=sheets_mock.go -package=repositories

// ErrRowNotFound is returned when no row carries the requested id.
var ErrRowNotFound = errors.New("row not found")

// SheetsAPI is the slice of the spreadsheet values API the repositories
// need. *gsheets.Client satisfies it.
type SheetsAPI interface {
	Get(ctx context.Context, readRange string) ([][]string, error)
	Append(ctx context.Context, writeRange string, row []string) error
	Update(ctx context.Context, writeRange string, row []string) error
	Clear(ctx context.Context, clearRange string) error
}

const (
	usersSheet = "Users"
	todosSheet = "Todos"

	// Row 1 of each sheet is the header row.
	// Users columns: id, username, password, role, createdAt.
	// Todos columns: id, title, description, imageId, imageLink,
	// createdAt, updatedAt, completed, userId.
	usersRange = usersSheet + "!A:E"
	todosRange = todosSheet + "!A:I"
)
