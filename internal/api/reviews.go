package api

import (
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.Store.Reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, reviews)
}

func bindReview(c echo.Context) (*models.Review, error) {
	var review models.Review
	if err := c.Bind(&review); err != nil {
		return nil, invalid(fmt.Errorf("invalid review body: %w", err))
	}
	if err := review.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &review, nil
}

func (h *Handler) CreateReview(c echo.Context) error {
	review, err := bindReview(c)
	if err != nil {
		return err
	}
	now := timeNow().UTC()
	review.CreatedAt, review.UpdatedAt = now, now
	if err := h.Store.Reviews.Create(c.Request().Context(), review); err != nil {
		return err
	}
	return created(c, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	review, err := bindReview(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.Store.Reviews.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	review.ID = existing.ID
	review.CreatedAt = existing.CreatedAt
	review.UpdatedAt = timeNow().UTC()
	if err := h.Store.Reviews.Update(ctx, review); err != nil {
		return err
	}
	return ok(c, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	if err := h.Store.Reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Review Removed")
}
