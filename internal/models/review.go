package models

import (
	"errors"
	"strings"
	"time"
)

type Review struct {
	ID         string    `json:"_id"`
	CustomerID string    `json:"reviewedBy"`
	OrderID    string    `json:"orderId,omitempty"`
	FoodID     string    `json:"itemId,omitempty"`
	Rating     int       `json:"rate"`
	Text       string    `json:"review"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r *Review) Validate() error {
	if r.CustomerID == "" {
		return errors.New("reviewedBy is required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("review text is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rate must be between 1 and 5")
	}
	return nil
}
