package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// errorResponse is the canonical envelope for single-message API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse is the envelope for field-level failures. The order of
// the store's (or the validator's) descriptors is preserved.
type validationResponse struct {
	Errors domain.ValidationErrors `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as an ordered {field, message} list.
//   - Collapses every credential failure into one generic 401 body.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: ve})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A failed login is the one domain error with a deterministic status.
	// The body carries no hint of whether the username or password was wrong.
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return http.StatusUnauthorized, "invalid credentials"
	}

	// Infrastructure fault: log the real cause, return a generic message so
	// store connectivity problems never masquerade as credential problems.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
