// Package middleware contains the HTTP middleware for the floor service.
// The service never enforces authentication, so the only middleware is
// identity extraction: when a Bearer token is present its claims are made
// available to handlers, but a missing or invalid token never rejects the
// request.
package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity returns an Echo middleware that parses an optional Bearer
// session token and injects "user_id" and "role" into the request context.
// Requests without a token, or with one that fails to parse, proceed as
// "guest".
func Identity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return next(c)
			}
			if cl, ok := tok.Claims.(jwt.MapClaims); ok {
				if v, ok := cl["sub"].(string); ok && v != "" {
					c.Set("user_id", v)
				}
				if v, ok := cl["role"].(string); ok && v != "" {
					c.Set("role", v)
				}
			}
			return next(c)
		}
	}
}

// UserID extracts the identified user from the context, defaulting to
// "guest" when no valid token accompanied the request.
func UserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return "guest"
}
