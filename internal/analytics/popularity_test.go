package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func item(id, name string, price float64, qty int) models.LineItem {
	return models.LineItem{FoodID: id, Name: name, Price: models.Float64(price), Quantity: qty}
}

func order(id string, paid bool, placed time.Time, items ...models.LineItem) models.Order {
	var amount float64
	for _, li := range items {
		sub, _ := li.Subtotal()
		amount += sub
	}
	return models.Order{
		ID:         id,
		CustomerID: "c-" + id,
		Items:      items,
		Amount:     amount,
		Payment:    paid,
		Status:     models.OrderStatusProcessing,
		PlacedAt:   placed,
	}
}

func TestPopularityMergesSameItemAcrossOrders(t *testing.T) {
	orders := []models.Order{
		order("o1", true, testNow, item("A", "Burger", 5, 2)),
		order("o2", true, testNow, item("A", "Burger", 5, 2)),
	}

	rows, err := Popularity(FilterPaid(orders), nil, 0)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.SummaryRow{ID: "A", Name: "Burger", Quantity: 4, Revenue: 20, AvgPrice: 5}, rows[0])
}

func TestPopularityExcludesUnpaidAndTruncates(t *testing.T) {
	orders := []models.Order{
		order("o1", true, testNow, item("A", "Burger", 5, 3), item("B", "Fries", 2, 5)),
		order("o2", false, testNow, item("A", "Burger", 5, 100)),
	}
	engine := NewEngine(WithClock(fixedClock))

	report, err := engine.Popularity(Query{Window: WindowAll, Limit: 1}, orders, nil)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "B", report.Rows[0].ID)
	assert.Equal(t, 5, report.Rows[0].Quantity)
	assert.Equal(t, 10.0, report.Rows[0].Revenue)
}

func TestPopularityEmptyInput(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock))

	report, err := engine.Popularity(Query{Window: WindowAll}, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.TotalQuantity)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Nil(t, report.TopItem)
	assert.Equal(t, testNow, report.GeneratedAt)
}

func TestPopularityNonPositiveQuantityCountsAsOne(t *testing.T) {
	orders := []models.Order{
		order("o1", true, testNow, item("A", "Burger", 7.5, 0)),
		order("o2", true, testNow, item("B", "Soda", 1.25, -3)),
	}

	rows, err := Popularity(orders, nil, 0)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Quantity)
	assert.Equal(t, 7.5, rows[0].Revenue)
	assert.Equal(t, 1, rows[1].Quantity)
	assert.Equal(t, 1.25, rows[1].Revenue)
}

func TestPopularityRejectsUnknownWindow(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock))
	orders := []models.Order{order("o1", true, testNow, item("A", "Burger", 5, 1))}

	report, err := engine.Popularity(Query{Window: TimeWindow("decade")}, orders, nil)

	assert.ErrorIs(t, err, ErrInvalidFilterKind)
	assert.Nil(t, report)
}

func TestPopularityMalformedLineItems(t *testing.T) {
	tests := []struct {
		name string
		item models.LineItem
	}{
		{"missing id", models.LineItem{Name: "Ghost", Price: models.Float64(3), Quantity: 1}},
		{"missing price without catalog entry", models.LineItem{FoodID: "Z", Name: "Mystery", Quantity: 1}},
		{"negative price", item("A", "Burger", -1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := []models.Order{
				order("ok", true, testNow, item("A", "Burger", 5, 1)),
				{ID: "bad", Payment: true, PlacedAt: testNow, Items: []models.LineItem{tt.item}},
			}

			rows, err := Popularity(orders, nil, 0)

			assert.ErrorIs(t, err, ErrMalformedLineItem)
			assert.Nil(t, rows)
		})
	}
}

func TestPopularityResolvesFromCatalog(t *testing.T) {
	catalog := NewCatalog([]models.FoodItem{{ID: "A", Name: "Burger", Price: 6}})
	orders := []models.Order{
		{ID: "o1", Payment: true, PlacedAt: testNow, Items: []models.LineItem{{FoodID: "A", Quantity: 2}}},
	}

	rows, err := Popularity(orders, catalog, 0)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Burger", rows[0].Name)
	assert.Equal(t, 12.0, rows[0].Revenue)
}

func TestPopularityFirstSeenNameWins(t *testing.T) {
	orders := []models.Order{
		order("o1", true, testNow, item("A", "Burger", 5, 1)),
		order("o2", true, testNow, item("A", "Cheeseburger", 5, 1)),
	}

	rows, err := Popularity(orders, nil, 0)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Burger", rows[0].Name)
}

func TestPopularityTiesKeepFirstAppearance(t *testing.T) {
	orders := []models.Order{
		order("o1", true, testNow, item("C", "Cake", 4, 2), item("A", "Burger", 5, 2)),
		order("o2", true, testNow, item("B", "Fries", 2, 2)),
	}

	rows, err := Popularity(orders, nil, 0)

	require.NoError(t, err)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"C", "A", "B"}, ids)
}

func sampleOrders() []models.Order {
	return []models.Order{
		order("o1", true, testNow.Add(-time.Hour), item("A", "Burger", 5, 2), item("B", "Fries", 2.5, 4)),
		order("o2", true, testNow.AddDate(0, 0, -3), item("C", "Cake", 4.25, 1), item("A", "Burger", 5, 1)),
		order("o3", false, testNow.AddDate(0, 0, -1), item("D", "Soda", 1.5, 9)),
		order("o4", true, testNow.AddDate(0, -2, 0), item("D", "Soda", 1.5, 3), item("E", "Salad", 6.75, 0)),
		order("o5", true, testNow.AddDate(0, 0, -10), item("B", "Fries", 2.5, 1), item("F", "Wrap", 7, 2)),
	}
}

func TestPopularityConservesRevenue(t *testing.T) {
	orders := sampleOrders()
	for _, w := range []TimeWindow{WindowAll, WindowLast7Days, WindowLastMonth, WindowLastYear} {
		t.Run(string(w), func(t *testing.T) {
			filtered, err := FilterByWindow(orders, w, testNow)
			require.NoError(t, err)
			paid := FilterPaid(filtered)

			var expected float64
			for _, o := range paid {
				for _, li := range o.Items {
					sub, _ := li.Subtotal()
					expected += sub
				}
			}

			rows, err := Popularity(paid, nil, 0)
			require.NoError(t, err)

			var got float64
			for _, r := range rows {
				got += r.Revenue
			}
			assert.InDelta(t, expected, got, 1e-9)
		})
	}
}

func TestPopularityRankIsMonotonic(t *testing.T) {
	rows, err := Popularity(FilterPaid(sampleOrders()), nil, 0)
	require.NoError(t, err)

	for i := 0; i+1 < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i].Quantity, rows[i+1].Quantity)
	}
}

func TestPopularityIsIdempotent(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock))
	q := Query{Window: WindowLastYear, Limit: 3}

	first, err := engine.Popularity(q, sampleOrders(), nil)
	require.NoError(t, err)
	second, err := engine.Popularity(q, sampleOrders(), nil)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPopularityTopN(t *testing.T) {
	paid := FilterPaid(sampleOrders())
	all, err := Popularity(paid, nil, 0)
	require.NoError(t, err)
	distinct := len(all)

	for _, n := range []int{1, 2, distinct, distinct + 5} {
		rows, err := Popularity(paid, nil, n)
		require.NoError(t, err)
		assert.Len(t, rows, min(n, distinct))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
