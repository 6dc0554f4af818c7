package api

import (
	"fmt"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListFood(c echo.Context) error {
	foods, err := h.Store.Foods.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"food_list": foods,
	})
}

func (h *Handler) GetFood(c echo.Context) error {
	food, err := h.Store.Foods.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, food)
}

func bindFood(c echo.Context) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := c.Bind(&food); err != nil {
		return nil, invalid(fmt.Errorf("invalid food body: %w", err))
	}
	if err := food.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &food, nil
}

func (h *Handler) CreateFood(c echo.Context) error {
	food, err := bindFood(c)
	if err != nil {
		return err
	}
	if err := h.Store.Foods.Create(c.Request().Context(), food); err != nil {
		return err
	}
	return created(c, food)
}

func (h *Handler) UpdateFood(c echo.Context) error {
	food, err := bindFood(c)
	if err != nil {
		return err
	}
	food.ID = c.Param("id")
	if err := h.Store.Foods.Update(c.Request().Context(), food); err != nil {
		return err
	}
	return ok(c, food)
}

func (h *Handler) DeleteFood(c echo.Context) error {
	if err := h.Store.Foods.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Food Removed")
}
