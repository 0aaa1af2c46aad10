package user

import (
	"context"

	userRepo "prolink/database/repository/user"
	"prolink/models"
)

// RegistrationData carries the fields a new consumer supplies.
type RegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// UserService resolves and authenticates the acting identity. All other
// services operate on behalf of a user it has resolved.
type UserService interface {
	// Login authenticates by email and credential. An unknown email fails
	// with a NotFound-coded error; a credential mismatch with an
	// Unauthorized-coded one, so callers can distinguish the two without
	// string matching. The credential is never returned.
	Login(ctx context.Context, email, password string) (*models.User, error)
	// Register creates a new user, failing with a Conflict-coded error
	// when the email is already taken.
	Register(ctx context.Context, data RegistrationData) (*models.User, error)
	// ResolveSession restores a previously authenticated identity. An
	// absent id yields (nil, nil): "no session" is not a hard failure.
	ResolveSession(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
