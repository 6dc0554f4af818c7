package api

import (
	"fmt"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

const defaultOrderPageSize = 50

func parsePayment(raw string) (*bool, error) {
	switch strings.ToLower(raw) {
	case "":
		return nil, nil
	case "paid", "true":
		v := true
		return &v, nil
	case "unpaid", "false":
		v := false
		return &v, nil
	default:
		return nil, invalidf("payment must be paid or unpaid")
	}
}

func orderFilter(c echo.Context) (models.OrderFilter, error) {
	var (
		f   models.OrderFilter
		err error
	)
	f.Status = listParam(c, "status")
	for _, s := range f.Status {
		if !models.IsOrderStatus(s) {
			return f, invalidf("unknown order status %q", s)
		}
	}
	if f.Payment, err = parsePayment(c.QueryParam("payment")); err != nil {
		return f, err
	}
	if f.From, err = timeParam(c, "from", false); err != nil {
		return f, err
	}
	if f.To, err = timeParam(c, "to", true); err != nil {
		return f, err
	}
	f.Search = strings.TrimSpace(c.QueryParam("q"))
	f.Newest = true
	f.Limit, f.Offset, err = getPaginationParams(c, defaultOrderPageSize)
	return f, err
}

func (h *Handler) ListOrders(c echo.Context) error {
	filter, err := orderFilter(c)
	if err != nil {
		return err
	}
	orders, err := h.Store.Orders.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return ok(c, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.Store.Orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, order)
}

func bindOrder(c echo.Context) (*models.Order, error) {
	var order models.Order
	if err := c.Bind(&order); err != nil {
		return nil, invalid(fmt.Errorf("invalid order body: %w", err))
	}
	if err := order.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &order, nil
}

func (h *Handler) CreateOrder(c echo.Context) error {
	order, err := bindOrder(c)
	if err != nil {
		return err
	}
	if order.Status == "" {
		order.Status = models.OrderStatusProcessing
	}
	if order.PlacedAt.IsZero() {
		order.PlacedAt = timeNow().UTC()
	}
	ctx := c.Request().Context()
	if err := h.Store.Orders.Create(ctx, order); err != nil {
		return err
	}
	h.emit(ctx, h.OrderTopic, events.TypeOrderCreated, order.ID, order)
	return created(c, order)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	order, err := bindOrder(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.Store.Orders.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	order.ID = existing.ID
	if order.PlacedAt.IsZero() {
		order.PlacedAt = existing.PlacedAt
	}
	if order.Status == "" {
		order.Status = existing.Status
	}
	if err := h.Store.Orders.Update(ctx, order); err != nil {
		return err
	}
	if order.Status != existing.Status {
		h.emit(ctx, h.OrderTopic, events.TypeOrderStatusChanged, order.ID,
			events.OrderStatusChange{OrderID: order.ID, From: existing.Status, To: order.Status})
	}
	return ok(c, order)
}

func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return invalid(err)
	}
	if !models.IsOrderStatus(body.Status) {
		return invalidf("unknown order status %q", body.Status)
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	current, err := h.Store.Orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.Store.Orders.UpdateStatus(ctx, id, body.Status); err != nil {
		return err
	}
	h.emit(ctx, h.OrderTopic, events.TypeOrderStatusChanged, id,
		events.OrderStatusChange{OrderID: id, From: current.Status, To: body.Status})
	return done(c, "Status Updated")
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := h.Store.Orders.Delete(ctx, id); err != nil {
		return err
	}
	h.emit(ctx, h.OrderTopic, events.TypeOrderDeleted, id, map[string]string{"orderId": id})
	return done(c, "Order Removed")
}
