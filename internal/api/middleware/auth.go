package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sparkmeet/identity-api/internal/core/token"
)

// Auth validates the bearer token and injects its claims into the echo
// context under "user_id", "username", and "roles". Only HS512 tokens are
// accepted; any other algorithm in the header is rejected outright.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	secret := []byte(jwtSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims[token.ClaimNameIdentifier].(string)
			username, _ := claims[token.ClaimName].(string)

			c.Set("user_id", userID)
			c.Set("username", username)
			c.Set("roles", roleClaim(claims[token.ClaimRole]))

			return next(c)
		}
	}
}

// roleClaim normalizes the role claim, which serializes as a plain string
// for a single role and as an array for several.
func roleClaim(v any) []string {
	switch r := v.(type) {
	case string:
		return []string{r}
	case []any:
		roles := make([]string, 0, len(r))
		for _, item := range r {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	default:
		return nil
	}
}
