package models

import "time"

// SummaryRow is one ranked entry of the popularity report.
type SummaryRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"count"`
	Revenue  float64 `json:"totalRevenue"`
	AvgPrice float64 `json:"avgPrice"`
}

type PopularityReport struct {
	ID            string       `json:"id"`
	Window        string       `json:"window"`
	GeneratedAt   time.Time    `json:"generatedAt"`
	Rows          []SummaryRow `json:"rows"`
	TotalQuantity int          `json:"totalQuantity"`
	TotalRevenue  float64      `json:"totalRevenue"`
	TopItem       *SummaryRow  `json:"topItem"`
}

type MonthlyRevenue struct {
	Month  string  `json:"name"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

type CustomerSummary struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	Orders     int     `json:"orders"`
	Amount     float64 `json:"amount"`
}

type CountItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OrderDashboard backs the Order Manager chart tab.
type OrderDashboard struct {
	Window       string            `json:"window"`
	TotalOrders  int               `json:"totalOrders"`
	PaidOrders   int               `json:"paidOrders"`
	Revenue      float64           `json:"revenue"`
	Status       []CountItem       `json:"statusData"`
	Payment      []CountItem       `json:"paymentData"`
	Monthly      []MonthlyRevenue  `json:"monthlyData"`
	TopCustomers []CustomerSummary `json:"customerData"`
}
