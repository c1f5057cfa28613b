package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

// MessageResponse is the uniform JSON body for errors and confirmations
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable message
	// default: Something went wrong
	Message string `json:"message"`
}

// UserResponse is the public view of a user account; the password hash is
// never included
// swagger:model UserResponse
type UserResponse struct {
	// User id
	ID string `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Role
	// default: user
	Role models.Role `json:"role"`
}

func publicUser(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, MessageResponse{Message: message})
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized becomes a 500 with no detail leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCredentialsMissing),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrUserAlreadyExists):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrAccessDenied):
		writeMessage(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, services.ErrTodoNotFound):
		writeMessage(w, http.StatusNotFound, "Todo not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
