package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authClaims is the subject identity the Auth middleware extracted from a
// verified token.
type authClaims struct {
	UserID   string
	Username string
	Roles    []string
}

// ctxClaims pulls the claims injected by the Auth middleware out of the
// echo context. An empty user id proves the middleware did not run (or the
// token carried no subject); both are a 401, not a 500.
func ctxClaims(c echo.Context) (authClaims, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	roles, _ := c.Get("roles").([]string)

	return authClaims{UserID: userID, Username: username, Roles: roles}, nil
}
