package api

import (
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListCustomers(c echo.Context) error {
	customers, err := h.Store.Customers.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return ok(c, customers)
}

func (h *Handler) GetCustomer(c echo.Context) error {
	customer, err := h.Store.Customers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, customer)
}

func bindCustomer(c echo.Context) (*models.Customer, error) {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return nil, invalid(fmt.Errorf("invalid customer body: %w", err))
	}
	if err := customer.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &customer, nil
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	customer, err := bindCustomer(c)
	if err != nil {
		return err
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = timeNow().UTC()
	}
	if err := h.Store.Customers.Create(c.Request().Context(), customer); err != nil {
		return err
	}
	return created(c, customer)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	customer, err := bindCustomer(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.Store.Customers.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	customer.ID = existing.ID
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = existing.CreatedAt
	}
	if err := h.Store.Customers.Update(ctx, customer); err != nil {
		return err
	}
	return ok(c, customer)
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	if err := h.Store.Customers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Customer Removed")
}
