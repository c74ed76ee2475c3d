package user

import (
	"context"

	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// UserService manages portal accounts around the opaque sign-in identity.
type UserService interface {
	// EnsureUser upserts the account for a fresh sign-in and returns it.
	EnsureUser(ctx context.Context, email, displayName, provider string) (*models.User, error)
	// IsAdmin reports whether the account carries the admin flag.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// GetAdmins returns every admin account.
	GetAdmins(ctx context.Context) ([]models.User, error)
	// GetAll returns every account.
	GetAll(ctx context.Context) ([]models.User, error)
}
