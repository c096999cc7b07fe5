package ports

import (
	"context"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// UserRepository defines the persistence operations the auth core needs.
// Any backend works as long as it honors these contracts.
type UserRepository interface {
	// Create persists a new user and returns it with the store-assigned ID.
	// A rejected candidate (duplicate username, policy violation) comes back
	// as domain.ValidationErrors.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByUsername looks up a user by normalized (uppercase) username.
	// Returns domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, normalizedUsername string) (*domain.User, error)

	// GetRoles returns the user's role names in the order the store keeps them.
	GetRoles(ctx context.Context, user *domain.User) ([]string, error)
}
