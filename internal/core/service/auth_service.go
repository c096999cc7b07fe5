package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sparkmeet/identity-api/internal/core/domain"
	"github.com/sparkmeet/identity-api/internal/core/ports"
	"github.com/sparkmeet/identity-api/internal/core/token"
)

// AuthService implements registration and login on top of the user store
// and the token issuer.
type AuthService struct {
	repo     ports.UserRepository
	issuer   *token.Issuer
	activity ports.ActivitySink
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, activity ports.ActivitySink) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, activity: activity}
}

// Register hashes the candidate's password and delegates creation to the
// store. Input constraints (username uniqueness, field policy) are the
// store's to enforce; a rejection comes back as domain.ValidationErrors
// and is surfaced verbatim.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var dob time.Time
	if in.DateOfBirth != "" {
		dob, err = time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return nil, domain.ValidationErrors{{Field: "date_of_birth", Message: "must be a date in YYYY-MM-DD format"}}
		}
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		KnownAs:      in.KnownAs,
		Gender:       in.Gender,
		DateOfBirth:  dob,
		City:         in.City,
		Country:      in.Country,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleMember},
		CreatedAt:    now,
		LastActive:   now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the submitted credentials and, on success, issues a signed
// bearer token. Unknown usernames and wrong passwords produce the same
// generic domain.ErrInvalidCredentials so callers cannot probe which
// usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil && err != domain.ErrUserNotFound {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	// The password check runs even when the lookup came back empty: a nil
	// user verifies against an empty hash and fails, keeping the unknown-user
	// and wrong-password paths indistinguishable.
	if !verifyPassword(user, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	roles, err := s.repo.GetRoles(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("get roles: %w", err)
	}

	tok, err := s.issuer.Issue(user, roles)
	if err != nil {
		return "", nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityEvent{UserID: user.ID, Seen: time.Now().UTC()})
	}

	return tok, user, nil
}

// verifyPassword compares the plaintext password against the stored hash.
// It is defined for an absent user and always returns false in that case,
// without faulting.
func verifyPassword(user *domain.User, password string) bool {
	var hash string
	if user != nil {
		hash = user.PasswordHash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
