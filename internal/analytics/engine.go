package analytics

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/shopspring/decimal"
)

// Query selects the window and top-N limit of a report. Limit 0 means unbounded.
type Query struct {
	Window TimeWindow
	Limit  int
}

// Engine runs the aggregation pipeline over in-memory data. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the wall clock used for time windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Popularity filters orders to the paid ones inside the window, ranks their
// items and assembles the summary report.
func (e *Engine) Popularity(q Query, orders []models.Order, catalog Catalog) (*models.PopularityReport, error) {
	now := e.now()
	inWindow, err := FilterByWindow(orders, q.Window, now)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit < 0 {
		limit = 0
	}
	rows, err := Popularity(FilterPaid(inWindow), catalog, limit)
	if err != nil {
		return nil, err
	}

	report := AssembleReport(q.Window, now, rows)
	return &report, nil
}

// Dashboard builds the order-manager charts. Status and payment splits cover
// every order in the window; revenue, monthly and customer roll-ups cover the
// paid ones.
func (e *Engine) Dashboard(q Query, orders []models.Order, dir CustomerDirectory) (*models.OrderDashboard, error) {
	inWindow, err := FilterByWindow(orders, q.Window, e.now())
	if err != nil {
		return nil, err
	}
	paid := FilterPaid(inWindow)

	revenue := decimal.Zero
	for _, o := range paid {
		revenue = revenue.Add(decimal.NewFromFloat(o.Amount))
	}

	return &models.OrderDashboard{
		Window:       string(q.Window),
		TotalOrders:  len(inWindow),
		PaidOrders:   len(paid),
		Revenue:      revenue.InexactFloat64(),
		Status:       StatusBreakdown(inWindow),
		Payment:      PaymentBreakdown(inWindow),
		Monthly:      MonthlyRevenue(paid),
		TopCustomers: TopCustomers(paid, dir, DefaultTopCustomers),
	}, nil
}
