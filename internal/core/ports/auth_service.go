package ports

import (
	"context"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// RegisterInput carries a registration candidate: credentials plus the
// public profile fields captured at sign-up.
type RegisterInput struct {
	Username    string
	Password    string
	KnownAs     string
	Gender      string
	DateOfBirth string
	City        string
	Country     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
