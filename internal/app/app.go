// Package app wires routes, middleware and the uniform error responder into
// an echo instance.
package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/deeplydee/photocards/internal/apperror"
	"github.com/deeplydee/photocards/internal/card"
	"github.com/deeplydee/photocards/internal/config"
	"github.com/deeplydee/photocards/internal/middleware"
	"github.com/deeplydee/photocards/internal/token"
	"github.com/deeplydee/photocards/internal/user"
	"github.com/deeplydee/photocards/internal/validation"
)

// New builds the HTTP application. Stores are injected so tests can run the
// full router against in-memory implementations.
func New(cfg config.Config, logger *slog.Logger, users user.Store, cards card.Store) *echo.Echo {
	tokens := token.New(cfg.JWTSecret)
	userHandler := user.NewHandler(users, tokens, cfg.CookieSecure)
	cardHandler := card.NewHandler(cards)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Public routes
	e.POST("/signup", userHandler.Signup)
	e.POST("/signin", userHandler.Login)
	e.POST("/signout", userHandler.Logout)

	// Protected routes
	api := e.Group("", middleware.Auth(tokens))

	api.GET("/users", userHandler.List)
	api.GET("/users/me", userHandler.Me)
	api.GET("/users/:id", userHandler.GetByID)
	api.PATCH("/users/me", userHandler.UpdateProfile)
	api.PATCH("/users/me/avatar", userHandler.UpdateAvatar)

	api.GET("/cards", cardHandler.List)
	api.POST("/cards", cardHandler.Create)
	api.DELETE("/cards/:cardId", cardHandler.Delete)
	api.PUT("/cards/:cardId/likes", cardHandler.Like)
	api.DELETE("/cards/:cardId/likes", cardHandler.Dislike)

	return e
}

// errorResponse is the body every failed request ends with.
type errorResponse struct {
	Message    string               `json:"message"`
	Validation []apperror.Violation `json:"validation,omitempty"`
}

// errorHandler is the terminal stage of every error path: log, map to the
// taxonomy, respond. Unmapped errors become a 500 with a generic message so
// internals never leak.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := errorResponse{Message: "internal server error"}
		status := http.StatusInternalServerError

		var appErr *apperror.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			resp.Message = appErr.Message
			resp.Validation = appErr.Violations
		case errors.As(err, &httpErr):
			// Router-level errors: unmatched route, method not allowed,
			// oversized body. Internals of 5xx variants stay generic.
			status = httpErr.Code
			if status < http.StatusInternalServerError {
				if msg, ok := httpErr.Message.(string); ok {
					resp.Message = msg
				} else {
					resp.Message = http.StatusText(status)
				}
			}
		}

		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"error", err,
		)

		if status == http.StatusInternalServerError {
			resp.Message = "internal server error"
			resp.Validation = nil
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, resp)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
