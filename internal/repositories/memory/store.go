// Package memory holds map-backed repositories used by tests and by
// `foodadmin serve --memory`.
package memory

import (
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/lucsky/cuid"
)

func NewStore() *repositories.Store {
	return &repositories.Store{
		Orders:    NewOrderRepository(),
		Foods:     NewFoodItemRepository(),
		Customers: NewCustomerRepository(),
		Reviews:   NewReviewRepository(),
		Delivery:  NewDeliveryRepository(),
		Messages:  NewMessageRepository(),
	}
}

func ensureID(id *string) {
	if *id == "" {
		*id = cuid.New()
	}
}

func page[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
