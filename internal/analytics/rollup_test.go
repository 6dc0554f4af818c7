package analytics

import (
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountOrder(id, customer string, amount float64, placed time.Time) models.Order {
	return models.Order{ID: id, CustomerID: customer, Amount: amount, Payment: true, PlacedAt: placed}
}

func TestMonthlyRevenueChronological(t *testing.T) {
	orders := []models.Order{
		amountOrder("1", "c1", 10, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)),
		amountOrder("2", "c1", 5.5, time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)),
		amountOrder("3", "c2", 4.5, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
		amountOrder("4", "c3", 8, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthlyRevenue(orders)

	assert.Equal(t, []models.MonthlyRevenue{
		{Month: "Feb 2023", Amount: 8, Orders: 1},
		{Month: "Dec 2023", Amount: 5.5, Orders: 1},
		{Month: "Jan 2024", Amount: 14.5, Orders: 2},
	}, got)
}

func TestMonthlyRevenueUsesOrderLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-01-31 20:00 UTC is already February in Tokyo
	placed := time.Date(2024, time.February, 1, 5, 0, 0, 0, tokyo)

	got := MonthlyRevenue([]models.Order{amountOrder("1", "c1", 3, placed)})

	require.Len(t, got, 1)
	assert.Equal(t, "Feb 2024", got[0].Month)
}

func TestTopCustomers(t *testing.T) {
	dir := Directory{"c1": "Ada", "c2": "Grace", "c3": "Linus", "c4": "Ken", "c5": "Rob"}
	var orders []models.Order
	add := func(customer string, n int, amount float64) {
		for i := 0; i < n; i++ {
			orders = append(orders, amountOrder(customer, customer, amount, testNow))
		}
	}
	add("c1", 1, 10)
	add("c2", 3, 2)
	add("c3", 2, 5)
	add("ghost", 2, 1)
	add("c4", 1, 1)
	add("c5", 4, 3)

	got := TopCustomers(orders, dir, DefaultTopCustomers)

	require.Len(t, got, 5)
	assert.Equal(t, models.CustomerSummary{CustomerID: "c5", Name: "Rob", Orders: 4, Amount: 12}, got[0])
	assert.Equal(t, "Grace", got[1].Name)
	assert.Equal(t, "Linus", got[2].Name)
	assert.Equal(t, models.CustomerSummary{CustomerID: "ghost", Name: UnknownCustomer, Orders: 2, Amount: 2}, got[3])
	assert.Equal(t, "Ada", got[4].Name)
}

func TestTopCustomersNilDirectory(t *testing.T) {
	got := TopCustomers([]models.Order{amountOrder("1", "c1", 1, testNow)}, nil, 0)

	require.Len(t, got, 1)
	assert.Equal(t, UnknownCustomer, got[0].Name)
}

func TestRollupsConserveAmount(t *testing.T) {
	orders := FilterPaid(sampleOrders())
	var expected float64
	for _, o := range orders {
		expected += o.Amount
	}

	var monthly float64
	for _, m := range MonthlyRevenue(orders) {
		monthly += m.Amount
	}
	var customers float64
	for _, c := range TopCustomers(orders, nil, 0) {
		customers += c.Amount
	}

	assert.InDelta(t, expected, monthly, 1e-9)
	assert.InDelta(t, expected, customers, 1e-9)
}

func TestStatusAndPaymentBreakdown(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusProcessing, Payment: true},
		{Status: models.OrderStatusDelivered, Payment: true},
		{Status: models.OrderStatusDelivered},
		{Status: models.OrderStatusOutForDel},
	}

	assert.Equal(t, []models.CountItem{
		{Name: models.OrderStatusProcessing, Value: 1},
		{Name: models.OrderStatusOutForDel, Value: 1},
		{Name: models.OrderStatusDelivered, Value: 2},
	}, StatusBreakdown(orders))
	assert.Equal(t, []models.CountItem{{Name: "Paid", Value: 2}, {Name: "Unpaid", Value: 2}}, PaymentBreakdown(orders))
}

func TestAssembleReport(t *testing.T) {
	rows := []models.SummaryRow{
		{ID: "B", Name: "Fries", Quantity: 5, Revenue: 10, AvgPrice: 2},
		{ID: "A", Name: "Burger", Quantity: 3, Revenue: 15, AvgPrice: 5},
	}

	report := AssembleReport(WindowLast7Days, testNow, rows)

	assert.Equal(t, 8, report.TotalQuantity)
	assert.Equal(t, 25.0, report.TotalRevenue)
	require.NotNil(t, report.TopItem)
	assert.Equal(t, "B", report.TopItem.ID)
	assert.Equal(t, "last-7-days", report.Window)
}

func TestEngineDashboard(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock))
	dir := Directory{"c-o1": "Ada"}

	dash, err := engine.Dashboard(Query{Window: WindowLast7Days}, sampleOrders(), dir)

	require.NoError(t, err)
	assert.Equal(t, 3, dash.TotalOrders)
	assert.Equal(t, 2, dash.PaidOrders)
	assert.InDelta(t, 29.25, dash.Revenue, 1e-9)
	assert.Equal(t, []models.CountItem{{Name: "Paid", Value: 2}, {Name: "Unpaid", Value: 1}}, dash.Payment)
	require.Len(t, dash.TopCustomers, 2)
	assert.Equal(t, "Ada", dash.TopCustomers[0].Name)
	assert.Equal(t, UnknownCustomer, dash.TopCustomers[1].Name)
	require.Len(t, dash.Monthly, 1)
	assert.Equal(t, "Mar 2024", dash.Monthly[0].Month)

	_, err = engine.Dashboard(Query{Window: "decade"}, sampleOrders(), dir)
	assert.ErrorIs(t, err, ErrInvalidFilterKind)
}
