package user

import (
	"context"
	"fmt"
	"strings"

	userRepo "github.com/adeeb-debug/baitussalambookingapp/database/repository/user"
	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// EnsureUser upserts the account document for a sign-in and returns the
// stored account, including the out-of-band managed admin flag.
func (s *DefaultUserService) EnsureUser(ctx context.Context, email, displayName, provider string) (*models.User, error) {
	email = strings.ToLower(email)
	if email == "" {
		return nil, fmt.Errorf("sign-in identity has no email")
	}
	if displayName == "" {
		displayName = firstNameFromEmail(email)
	}

	u := &models.User{
		Email:       email,
		DisplayName: displayName,
		Provider:    provider,
	}
	if err := s.Repo.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to record sign-in for %s: %w", email, err)
	}

	stored, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("account %s missing after upsert", email)
	}
	return stored, nil
}

// IsAdmin reports whether the account carries the admin flag. Unknown
// accounts are not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return false, err
	}
	return u != nil && u.IsAdmin, nil
}

// GetAdmins returns every admin account.
func (s *DefaultUserService) GetAdmins(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAdmins(ctx)
}

// GetAll returns every account.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// firstNameFromEmail derives a presentable name from the local part of an
// email address when the provider supplies no display name.
func firstNameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	if len(words) == 0 {
		return "Guest"
	}
	w := words[0]
	return strings.ToUpper(w[:1]) + w[1:]
}
