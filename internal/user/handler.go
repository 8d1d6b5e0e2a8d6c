package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deeplydee/photocards/internal/apperror"
	"github.com/deeplydee/photocards/internal/middleware"
	"github.com/deeplydee/photocards/internal/password"
	"github.com/deeplydee/photocards/internal/token"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,weburl"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,weburl"`
}

// Handler serves the user resource routes.
type Handler struct {
	store        Store
	tokens       *token.Service
	cookieSecure bool
}

func NewHandler(store Store, tokens *token.Service, cookieSecure bool) *Handler {
	return &Handler{store: store, tokens: tokens, cookieSecure: cookieSecure}
}

// Signup handles POST /signup.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return err
	}
	u := User{
		Name:     orDefault(req.Name, DefaultName),
		About:    orDefault(req.About, DefaultAbout),
		Avatar:   orDefault(req.Avatar, DefaultAvatar),
		Email:    req.Email,
		Password: hash,
	}
	created, err := h.store.Create(c.Request().Context(), u)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": created})
}

// Login handles POST /signin. Every failure yields the same message so the
// response never reveals whether the email exists.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	u, err := h.store.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.Unauthorized("incorrect email or password", err)
		}
		return err
	}
	if !password.Verify(req.Password, u.Password) {
		return apperror.Unauthorized("incorrect email or password", nil)
	}

	tok, err := h.tokens.Issue(u.ID.Hex())
	if err != nil {
		return err
	}
	h.setAuthCookie(c, tok)
	return c.JSON(http.StatusOK, echo.Map{"data": u})
}

// Logout handles POST /signout by clearing the jwt cookie. The token itself
// stays valid until it expires; there is no server-side revocation.
func (h *Handler) Logout(c echo.Context) error {
	h.clearAuthCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "signed out"})
}

// List handles GET /users.
func (h *Handler) List(c echo.Context) error {
	users, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID handles GET /users/:id.
func (h *Handler) GetByID(c echo.Context) error {
	u, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(http.StatusOK, u)
}

// Me handles GET /users/me.
func (h *Handler) Me(c echo.Context) error {
	u, err := h.store.GetByID(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateProfile handles PATCH /users/me. Only the caller's own name and
// about are touched.
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	u, err := h.store.UpdateProfile(c.Request().Context(), middleware.UserID(c), req.Name, req.About)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *Handler) UpdateAvatar(c echo.Context) error {
	var req UpdateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	u, err := h.store.UpdateAvatar(c.Request().Context(), middleware.UserID(c), req.Avatar)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) mapErr(err error) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return apperror.BadRequest("invalid user id", err)
	case errors.Is(err, ErrNotFound):
		return apperror.NotFound("user not found", err)
	case errors.Is(err, ErrEmailTaken):
		return apperror.Conflict("user with this email already exists", err)
	default:
		return err
	}
}

func (h *Handler) setAuthCookie(c echo.Context, tok string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
		MaxAge:   int(token.TTL / time.Second),
	})
}

func (h *Handler) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
		MaxAge:   -1,
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
