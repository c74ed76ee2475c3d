package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) Upsert(ctx context.Context, user *models.User) error {
	existing, ok := r.users[user.Email]
	if !ok {
		stored := *user
		stored.CreatedAt = time.Now()
		stored.LastSeenAt = stored.CreatedAt
		r.users[user.Email] = &stored
		return nil
	}
	// Refresh the sign-in fields, keep the managed admin flag.
	existing.DisplayName = user.DisplayName
	existing.Provider = user.Provider
	existing.LastSeenAt = time.Now()
	return nil
}

func (r *memoryUserRepo) GetAdmins(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.IsAdmin {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memoryUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account on first sign-in", func(t *testing.T) {
		svc := &DefaultUserService{Repo: newMemoryUserRepo()}
		u, err := svc.EnsureUser(ctx, "Ali@Example.com", "Ali Ahmed", "google.com")
		require.NoError(t, err)
		assert.Equal(t, "ali@example.com", u.Email)
		assert.Equal(t, "Ali Ahmed", u.DisplayName)
		assert.False(t, u.IsAdmin)
	})

	t.Run("keeps the admin flag across sign-ins", func(t *testing.T) {
		repo := newMemoryUserRepo()
		svc := &DefaultUserService{Repo: repo}

		_, err := svc.EnsureUser(ctx, "admin@example.com", "Admin", "google.com")
		require.NoError(t, err)
		repo.users["admin@example.com"].IsAdmin = true

		u, err := svc.EnsureUser(ctx, "admin@example.com", "Admin", "google.com")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
	})

	t.Run("derives a display name from the email when absent", func(t *testing.T) {
		svc := &DefaultUserService{Repo: newMemoryUserRepo()}
		u, err := svc.EnsureUser(ctx, "sara.khan@example.com", "", "microsoft.com")
		require.NoError(t, err)
		assert.Equal(t, "Sara", u.DisplayName)
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		svc := &DefaultUserService{Repo: newMemoryUserRepo()}
		_, err := svc.EnsureUser(ctx, "", "Nobody", "google.com")
		assert.Error(t, err)
	})
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.EnsureUser(ctx, "ali@example.com", "Ali", "google.com")
	require.NoError(t, err)

	ok, err := svc.IsAdmin(ctx, "ali@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.users["ali@example.com"].IsAdmin = true
	ok, err = svc.IsAdmin(ctx, "Ali@Example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(ctx, "unknown@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstNameFromEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sara.khan@example.com", "Sara"},
		{"omar_farooq@example.com", "Omar"},
		{"bilal-m@example.com", "Bilal"},
		{"plain@example.com", "Plain"},
		{"@example.com", "Guest"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, firstNameFromEmail(tt.in))
		})
	}
}
