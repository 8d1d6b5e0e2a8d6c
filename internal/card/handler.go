package card

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deeplydee/photocards/internal/apperror"
	"github.com/deeplydee/photocards/internal/middleware"
)

type CreateRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,weburl"`
}

// Handler serves the card resource routes.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /cards.
func (h *Handler) List(c echo.Context) error {
	cards, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}

// Create handles POST /cards. The authenticated caller becomes the owner.
func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	owner, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		return apperror.BadRequest("invalid user id", err)
	}
	created, err := h.store.Create(c.Request().Context(), Card{
		Name:  req.Name,
		Link:  req.Link,
		Owner: owner,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": created})
}

// Delete handles DELETE /cards/:cardId. The card is loaded first so a
// non-owner gets Forbidden rather than a blind delete. The read-then-delete
// is not transactional; only the true owner's id can ever pass the check,
// so no other identity can race into a false authorization.
func (h *Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	cardID := c.Param("cardId")

	existing, err := h.store.GetByID(ctx, cardID)
	if err != nil {
		return mapErr(err)
	}
	if existing.Owner.Hex() != middleware.UserID(c) {
		return apperror.Forbidden("only the owner may delete the card", nil)
	}
	deleted, err := h.store.Delete(ctx, cardID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "card deleted", "card": deleted})
}

// Like handles PUT /cards/:cardId/likes. Liking twice is a no-op.
func (h *Handler) Like(c echo.Context) error {
	card, err := h.store.AddLike(c.Request().Context(), c.Param("cardId"), middleware.UserID(c))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "card liked", "card": card})
}

// Dislike handles DELETE /cards/:cardId/likes. Removing an absent like is a
// no-op.
func (h *Handler) Dislike(c echo.Context) error {
	if _, err := h.store.RemoveLike(c.Request().Context(), c.Param("cardId"), middleware.UserID(c)); err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "like removed"})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return apperror.BadRequest("invalid card id", err)
	case errors.Is(err, ErrNotFound):
		return apperror.NotFound("card not found", err)
	default:
		return err
	}
}
