package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparkmeet/identity-api/internal/core/domain"
	"github.com/sparkmeet/identity-api/internal/core/ports"
	"github.com/sparkmeet/identity-api/internal/core/token"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	key := domain.NormalizeUsername(user.Username)
	if _, exists := r.users[key]; exists {
		return nil, domain.ValidationErrors{{Field: "username", Message: "username is already taken"}}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[key] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, normalizedUsername string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[normalizedUsername]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) GetRoles(_ context.Context, user *domain.User) ([]string, error) {
	return user.Roles, nil
}

type stubActivitySink struct {
	events []ports.ActivityEvent
}

func (s *stubActivitySink) Enqueue(event ports.ActivityEvent) {
	s.events = append(s.events, event)
}

func newTestService(t *testing.T, repo ports.UserRepository, sink ports.ActivitySink) *AuthService {
	t.Helper()
	issuer, err := token.NewIssuer("secret", token.DefaultTTL)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return NewAuthService(repo, issuer, sink)
}

func register(t *testing.T, svc *AuthService, username, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Password: password,
		KnownAs:  username,
	})
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	user := register(t, svc, "alice", "pass12345")

	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected username: %s", user.Username)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleMember {
		t.Fatalf("expected default member role, got %v", user.Roles)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	register(t, svc, "bob", "pass12345")

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "BOB", Password: "other1234"})
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve) != 1 || ve[0].Field != "username" {
		t.Fatalf("expected a username validation error, got %v", ve)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected no second identity, store has %d", len(repo.users))
	}
}

func TestAuthService_Register_InvalidDateOfBirth(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:    "carol",
		Password:    "pass12345",
		DateOfBirth: "not-a-date",
	})
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if ve[0].Field != "date_of_birth" {
		t.Fatalf("expected date_of_birth error, got %v", ve)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	sink := &stubActivitySink{}
	svc := newTestService(t, repo, sink)

	created := register(t, svc, "carol", "s3cret123")

	tok, user, err := svc.Login(context.Background(), "carol", "s3cret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims[token.ClaimNameIdentifier] != created.ID {
		t.Fatalf("expected nameidentifier %s, got %v", created.ID, claims[token.ClaimNameIdentifier])
	}
	if claims[token.ClaimName] != "carol" {
		t.Fatalf("expected name carol, got %v", claims[token.ClaimName])
	}
	if claims[token.ClaimRole] != domain.RoleMember {
		t.Fatalf("expected role %s, got %v", domain.RoleMember, claims[token.ClaimRole])
	}

	if len(sink.events) != 1 || sink.events[0].UserID != created.ID {
		t.Fatalf("expected one activity event for %s, got %v", created.ID, sink.events)
	}
}

func TestAuthService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	register(t, svc, "Dave", "pass12345")

	if _, _, err := svc.Login(context.Background(), "dAvE", "pass12345"); err != nil {
		t.Fatalf("expected case-insensitive lookup to succeed, got %v", err)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	register(t, svc, "erin", "goodpass1")

	_, _, wrongPass := svc.Login(context.Background(), "erin", "badpass99")
	_, _, unknown := svc.Login(context.Background(), "ghost", "whatever1")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass != unknown {
		t.Fatalf("expected identical outcomes, got %v vs %v", wrongPass, unknown)
	}
}

func TestAuthService_Login_StoreFaultIsNotUnauthorized(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection reset")
	svc := newTestService(t, repo, nil)

	_, _, err := svc.Login(context.Background(), "frank", "pass12345")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("infrastructure fault must not look like a credential failure")
	}
}
