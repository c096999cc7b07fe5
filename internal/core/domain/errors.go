package domain

import (
	"errors"
	"strings"
)

// ErrInvalidCredentials is the single outcome for every failed login,
// whether the username is unknown or the password is wrong. Callers must
// not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is an internal lookup outcome; the login path folds it
// into ErrInvalidCredentials before anything reaches a client.
var ErrUserNotFound = errors.New("user not found")

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered list of field rejections returned by the
// store (or by request validation). It is surfaced to clients verbatim.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Field + ": " + e.Message
	}
	return strings.Join(msgs, "; ")
}
