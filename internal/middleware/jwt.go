package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"errors"   // errors distinguishes the expired sentinel from other failures
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/tcprodojo/backend/internal/utils" // utils validates bearer tokens
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the token's subject (the admin username) into the request context.
// The provided secret must match the one used when issuing tokens.  Every
// request is authenticated independently; no session state is kept anywhere.
// Handlers behind this middleware read the caller via `c.Get("username")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			// Anything else is treated the same as an invalid token.
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not validate credentials"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			username, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				// Expired tokens get their own message so the admin UI can
				// prompt for a fresh login instead of a generic failure.
				if errors.Is(err, utils.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has expired"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not validate credentials"})
			}

			c.Set("username", username)
			return next(c)
		}
	}
}
