package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type LineItem struct {
	FoodID   string   `json:"_id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"` // nil when the price is not embedded in the order
	Quantity int      `json:"quantity"`
}

type Order struct {
	ID         string     `json:"_id"`
	CustomerID string     `json:"userId"`
	Items      []LineItem `json:"items"`
	Amount     float64    `json:"amount"`
	Payment    bool       `json:"payment"`
	Status     string     `json:"status"` // "Food Processing", "Out for Delivery", "Delivered"
	PlacedAt   time.Time  `json:"date"`
	Address    Address    `json:"address"`
}

// OrderFilter narrows order listings. Zero values mean "no constraint".
type OrderFilter struct {
	Status  []string
	Payment *bool
	From    time.Time
	To      time.Time
	Search  string
	Newest  bool // newest first; oldest first otherwise
	Limit   int
	Offset  int
}

// EffectiveQuantity treats missing or non-positive quantities as a single unit.
func (li LineItem) EffectiveQuantity() int {
	if li.Quantity <= 0 {
		return 1
	}
	return li.Quantity
}

// Subtotal returns price*quantity and false when the price is not embedded.
func (li LineItem) Subtotal() (float64, bool) {
	if li.Price == nil {
		return 0, false
	}
	return *li.Price * float64(li.EffectiveQuantity()), true
}

func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return errors.New("userId is required")
	}
	if len(o.Items) == 0 {
		return errors.New("an order needs at least one item")
	}
	if o.Status != "" && !IsOrderStatus(o.Status) {
		return fmt.Errorf("unknown order status %q", o.Status)
	}
	var total float64
	complete := true
	for i, item := range o.Items {
		if item.FoodID == "" {
			return fmt.Errorf("item %d: _id is required", i)
		}
		sub, ok := item.Subtotal()
		if !ok {
			complete = false
			continue
		}
		total += sub
	}
	if complete && math.Abs(total-o.Amount) > 0.005 {
		return fmt.Errorf("amount %.2f does not match item subtotal %.2f", o.Amount, total)
	}
	return nil
}

// Matches reports whether o passes every constraint except paging.
func (f OrderFilter) Matches(o Order) bool {
	if len(f.Status) > 0 && !contains(f.Status, o.Status) {
		return false
	}
	if f.Payment != nil && *f.Payment != o.Payment {
		return false
	}
	if !f.From.IsZero() && o.PlacedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && o.PlacedAt.After(f.To) {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	fields := []string{o.ID, o.CustomerID, o.Address.FirstName, o.Address.LastName, o.Address.City}
	for _, item := range o.Items {
		fields = append(fields, item.Name)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func Float64(v float64) *float64 {
	return &v
}
