package userRepo

import (
	"context"

	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// UserRepository defines methods for portal account data access.
type UserRepository interface {
	// GetByEmail retrieves a user by lowercase email, nil if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert creates or refreshes the account document for a sign-in.
	Upsert(ctx context.Context, user *models.User) error
	// GetAdmins retrieves every account with the admin flag set.
	GetAdmins(ctx context.Context) ([]models.User, error)
	// GetAll retrieves every account.
	GetAll(ctx context.Context) ([]models.User, error)
}
