package api

import (
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListDeliveryPersons(c echo.Context) error {
	persons, err := h.Store.Delivery.ListPersons(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, persons)
}

func (h *Handler) CreateDeliveryPerson(c echo.Context) error {
	var person models.DeliveryPerson
	if err := c.Bind(&person); err != nil {
		return invalid(fmt.Errorf("invalid delivery person body: %w", err))
	}
	if err := person.Validate(); err != nil {
		return invalid(err)
	}
	if person.JoinDate.IsZero() {
		person.JoinDate = timeNow().UTC()
	}
	person.Active = true
	if err := h.Store.Delivery.CreatePerson(c.Request().Context(), &person); err != nil {
		return err
	}
	return created(c, person)
}

func (h *Handler) ListAssignments(c echo.Context) error {
	assignments, err := h.Store.Delivery.ListAssignments(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, assignments)
}

func bindAssignment(c echo.Context) (*models.DeliveryAssignment, error) {
	var a models.DeliveryAssignment
	if err := c.Bind(&a); err != nil {
		return nil, invalid(fmt.Errorf("invalid assignment body: %w", err))
	}
	if a.Status == "" {
		a.Status = models.AssignmentStatusAssigned
	}
	if err := a.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &a, nil
}

func (h *Handler) CreateAssignment(c echo.Context) error {
	a, err := bindAssignment(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err := h.Store.Orders.Get(ctx, a.OrderID); err != nil {
		return err
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = timeNow().UTC()
	}
	if err := h.Store.Delivery.CreateAssignment(ctx, a); err != nil {
		return err
	}
	return created(c, a)
}

func (h *Handler) UpdateAssignment(c echo.Context) error {
	a, err := bindAssignment(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.Store.Delivery.GetAssignment(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	a.ID = existing.ID
	if a.AssignedAt.IsZero() {
		a.AssignedAt = existing.AssignedAt
	}
	if err := h.Store.Delivery.UpdateAssignment(ctx, a); err != nil {
		return err
	}
	return ok(c, a)
}

func (h *Handler) DeleteAssignment(c echo.Context) error {
	if err := h.Store.Delivery.DeleteAssignment(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Assignment Removed")
}
