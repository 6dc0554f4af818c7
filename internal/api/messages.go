package api

import (
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListMessages(c echo.Context) error {
	messages, err := h.Store.Messages.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, messages)
}

func bindMessage(c echo.Context) (*models.CustomerMessage, error) {
	var msg models.CustomerMessage
	if err := c.Bind(&msg); err != nil {
		return nil, invalid(fmt.Errorf("invalid message body: %w", err))
	}
	if err := msg.Validate(); err != nil {
		return nil, invalid(err)
	}
	return &msg, nil
}

func (h *Handler) CreateMessage(c echo.Context) error {
	msg, err := bindMessage(c)
	if err != nil {
		return err
	}
	if msg.Status == "" {
		msg.Status = models.MessageStatusPending
	}
	msg.CreatedAt = timeNow().UTC()
	if err := h.Store.Messages.Create(c.Request().Context(), msg); err != nil {
		return err
	}
	return created(c, msg)
}

func (h *Handler) UpdateMessage(c echo.Context) error {
	msg, err := bindMessage(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.Store.Messages.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	msg.ID = existing.ID
	msg.CreatedAt = existing.CreatedAt
	if msg.Status == "" {
		msg.Status = existing.Status
	}
	if err := h.Store.Messages.Update(ctx, msg); err != nil {
		return err
	}
	return ok(c, msg)
}

func (h *Handler) DeleteMessage(c echo.Context) error {
	if err := h.Store.Messages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Message Removed")
}
