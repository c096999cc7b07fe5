package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the authenticated-user endpoints.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type currentUserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
}

// Me returns the identity claims of the presented token.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		ID:       claims.UserID,
		Username: claims.Username,
		Roles:    claims.Roles,
	})
}
