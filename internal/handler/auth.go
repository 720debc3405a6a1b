package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/auth"
)

// AuthHandler implements the single-admin login.  Credentials come from the
// environment; only the bcrypt hash of the password is held in memory.
type AuthHandler struct {
	JWTSecret string
	TTLMin    int
	AdminUser string
	PassHash  string
}

// Login handles POST /v1/auth/login and exchanges the admin credentials for
// an access token.  Wrong username and wrong password produce the same
// response so the endpoint leaks nothing about which part failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	username := strings.TrimSpace(body.Username)
	if username != h.AdminUser || !auth.CheckPassword(h.PassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := auth.NewAccessToken(h.JWTSecret, username, auth.AdminRole, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

// Me handles GET /v1/me and echoes the authenticated session's claims.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user": c.Get("user"),
		"role": c.Get("role"),
	})
}
