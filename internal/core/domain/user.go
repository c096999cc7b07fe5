package domain

import (
	"strings"
	"time"
)

const (
	RoleMember    = "Member"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

// User models a registered identity: the source of truth for credentials
// and role assignments. Roles are owned by the store; this package never
// mutates them.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	KnownAs      string    `json:"known_as,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	DateOfBirth  time.Time `json:"date_of_birth,omitzero"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}

// NormalizeUsername returns the canonical form used for uniqueness and
// lookup: usernames compare case-insensitively.
func NormalizeUsername(username string) string {
	return strings.ToUpper(strings.TrimSpace(username))
}
