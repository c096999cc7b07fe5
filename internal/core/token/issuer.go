// Package token builds claim sets for verified identities and signs them
// into compact JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// Claim keys embedded in every issued token.
const (
	ClaimNameIdentifier = "nameidentifier"
	ClaimName           = "name"
	ClaimRole           = "role"
)

// DefaultTTL is the fixed lifetime of an issued token.
const DefaultTTL = 24 * time.Hour

// ErrMissingSecret indicates the signing secret was not configured. This is
// a startup-time failure; Issue itself has no configuration error path.
var ErrMissingSecret = errors.New("token: signing secret is not configured")

// Issuer signs self-contained bearer tokens with HMAC-SHA-512. The secret
// is loaded once at startup and never changes afterwards.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. An empty secret is a configuration error.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue builds the claim set for the given user and roles and returns the
// serialized signed token. Each call embeds the current timestamp, so two
// tokens for the same user issued at different times differ in bytes even
// though their subject claims are identical.
func (i *Issuer) Issue(user *domain.User, roles []string) (string, error) {
	now := i.now()

	claims := jwt.MapClaims{
		ClaimNameIdentifier: user.ID,
		ClaimName:           user.Username,
		"iat":               now.Unix(),
		"exp":               now.Add(i.ttl).Unix(),
	}

	// Mirror the usual claim serialization for repeated role claims:
	// a single role is a plain string, several collapse into an array,
	// none omits the key entirely.
	switch len(roles) {
	case 0:
	case 1:
		claims[ClaimRole] = roles[0]
	default:
		claims[ClaimRole] = roles
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// TTL reports the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
