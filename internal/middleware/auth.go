// Package middleware holds the authentication guard applied to every route
// except signup, signin and signout.
package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/deeplydee/photocards/internal/apperror"
	"github.com/deeplydee/photocards/internal/token"
)

// CookieName is the cookie the identity token travels in.
const CookieName = "jwt"

// userIDKey is the echo context key the authenticated user's id is stored under.
const userIDKey = "userID"

// Auth verifies the jwt cookie and puts the subject user id into the request
// context. A missing cookie and a failed verification produce the same
// message so callers cannot probe token state.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return apperror.Unauthorized("authorization required", err)
			}
			subjectID, err := tokens.Verify(cookie.Value)
			if err != nil {
				return apperror.Unauthorized("authorization required", err)
			}
			c.Set(userIDKey, subjectID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id set by Auth, or "" on a route
// the guard did not run on.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
