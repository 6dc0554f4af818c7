package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type CustomerMessage struct {
	ID         string    `json:"_id"`
	CustomerID string    `json:"userId"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m *CustomerMessage) Validate() error {
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	if m.Status != "" && !IsMessageStatus(m.Status) {
		return fmt.Errorf("unknown message status %q", m.Status)
	}
	return nil
}
