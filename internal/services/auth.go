package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCredentialsMissing = errors.New("username and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const (
	adminUsername     = "admin"
	minPasswordLength = 6
)

// UserReader defines read-only operations for users.
type UserReader interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
}

// TokenIssuer defines an interface for generating session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID, username string, role models.Role) (string, error)
}

// AuthService handles registration, login and admin bootstrap.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user with the default role. The uniqueness check
// and the append are not atomic; concurrent registrations of the same
// username can race, an accepted property of the sheet-backed store.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsMissing
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.FindByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a session token with the user.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := svc.reader.FindByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// SeedAdmin ensures the bootstrap admin account exists. Safe to call on
// every startup.
func (svc *AuthService) SeedAdmin(ctx context.Context, password string) error {
	existing, err := svc.reader.FindByUsername(ctx, adminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:        uuid.NewString(),
		Username:  adminUsername,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, admin); err != nil {
		return err
	}

	logger.Log.Infow("admin user created", "username", adminUsername)
	return nil
}
