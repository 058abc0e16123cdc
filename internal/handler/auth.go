package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/state"
	"github.com/moodfood/restaurant-floor/internal/utils"
)

// AuthHandler implements the mock staff session flow. The prototype does
// not verify passwords: login marks the session authenticated as the
// catalog user and hands back a JWT the tablet keeps as its session
// handle. Access recovery generates a temporary password and stores only
// its bcrypt hash.
type AuthHandler struct {
	Store        *state.Store
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// NewAuthHandler constructs an AuthHandler. Store must be non-nil.
func NewAuthHandler(store *state.Store, jwtSecret string, accessTTLMin, bcryptCost int) *AuthHandler {
	if store == nil {
		panic("nil store passed to NewAuthHandler")
	}
	return &AuthHandler{Store: store, JWTSecret: jwtSecret, AccessTTLMin: accessTTLMin, BcryptCost: bcryptCost}
}

// Login handles POST /v1/auth/login. The body must contain an email; the
// password field is accepted and ignored. Responds with the signed-in user
// and a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	user := h.Store.Login(req.Email)
	tok, err := utils.NewAccessToken(h.JWTSecret, user.ID, user.FullName, user.Role, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token signing failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":         user,
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

// Forgot handles POST /v1/auth/forgot. It generates a temporary password,
// stores its bcrypt hash in the session and pretends to email it; the
// plain value is included in the response because delivery is a mock.
func (h *AuthHandler) Forgot(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	plain, err := utils.NewTempPassword()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "password generation failed"})
	}
	hash, err := utils.HashPassword(plain, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "password hashing failed"})
	}
	h.Store.RequestReset(req.Email, hash)
	return c.JSON(http.StatusOK, echo.Map{
		"sent_to":       req.Email,
		"temp_password": plain,
	})
}

// Logout handles POST /v1/auth/logout and clears the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Store.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/auth/me and returns the current session state.
func (h *AuthHandler) Me(c echo.Context) error {
	sess := h.Store.Session()
	if !sess.Authenticated {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"authenticated":  true,
		"user":           sess.User,
		"lastLoginEmail": sess.LastLoginEmail,
	})
}
