package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, MaxPasswordBytes)
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TokenGenerator issues bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles signup, login and profile lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a user and returns it together with a fresh token.
func (svc *AuthService) Signup(ctx context.Context, name, email, password string) (*models.UserDB, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	if len(password) > MaxPasswordBytes {
		return nil, "", ErrPasswordTooLong
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Warnw("user already exists", "email", email)
			return nil, "", ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.UserID, "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it with a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.UserID, "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Me returns the user behind an authenticated request.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
