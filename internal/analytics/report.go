package analytics

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/shopspring/decimal"
)

// AssembleReport totals already-ranked rows. An empty row set yields a zero
// report with a nil TopItem.
func AssembleReport(w TimeWindow, generatedAt time.Time, rows []models.SummaryRow) models.PopularityReport {
	report := models.PopularityReport{
		Window:      string(w),
		GeneratedAt: generatedAt,
		Rows:        rows,
	}
	if report.Rows == nil {
		report.Rows = []models.SummaryRow{}
	}

	revenue := decimal.Zero
	for _, r := range rows {
		report.TotalQuantity += r.Quantity
		revenue = revenue.Add(decimal.NewFromFloat(r.Revenue))
	}
	report.TotalRevenue = revenue.InexactFloat64()

	if len(rows) > 0 {
		top := rows[0]
		report.TopItem = &top
	}
	return report
}
