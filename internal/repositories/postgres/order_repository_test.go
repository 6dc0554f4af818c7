package postgres

import (
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildOrderQueryNoFilter(t *testing.T) {
	query, args := buildOrderQuery(models.OrderFilter{})

	assert.Equal(t, "SELECT "+orderColumns+" FROM orders ORDER BY placed_at ASC, id", query)
	assert.Empty(t, args)
}

func TestBuildOrderQueryAllFilters(t *testing.T) {
	paid := true
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query, args := buildOrderQuery(models.OrderFilter{
		Status:  []string{models.OrderStatusDelivered},
		Payment: &paid,
		From:    from,
		To:      to,
		Search:  "ramen",
		Newest:  true,
		Limit:   20,
		Offset:  40,
	})

	assert.Contains(t, query, "status = ANY($1)")
	assert.Contains(t, query, "payment = $2")
	assert.Contains(t, query, "placed_at >= $3")
	assert.Contains(t, query, "placed_at <= $4")
	assert.Contains(t, query, "items::text ILIKE $5")
	assert.Contains(t, query, "ORDER BY placed_at DESC, id LIMIT $6 OFFSET $7")
	assert.Equal(t, []interface{}{[]string{models.OrderStatusDelivered}, true, from, to, "%ramen%", 20, 40}, args)
}

func TestBuildOrderQueryEscapesSearchWildcards(t *testing.T) {
	query, args := buildOrderQuery(models.OrderFilter{Search: `50%_off\`})

	assert.Contains(t, query, `id ILIKE $1 ESCAPE '\'`)
	assert.Contains(t, query, `items::text ILIKE $1 ESCAPE '\')`)
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}
