package export

import "github.com/chrisdamba/foodadmin/internal/models"

// ReportRow is one ranked item of a popularity report as written to disk.
type ReportRow struct {
	Rank        int32   `json:"rank" parquet:"name=rank,type=INT32"`
	ReportID    string  `json:"reportId" parquet:"name=reportId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Window      string  `json:"window" parquet:"name=window,type=BYTE_ARRAY,convertedtype=UTF8"`
	GeneratedAt int64   `json:"generatedAt" parquet:"name=generatedAt,type=INT64"`
	ItemID      string  `json:"_id" parquet:"name=itemId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name        string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Quantity    int64   `json:"count" parquet:"name=count,type=INT64"`
	Revenue     float64 `json:"totalRevenue" parquet:"name=totalRevenue,type=DOUBLE"`
	AvgPrice    float64 `json:"avgPrice" parquet:"name=avgPrice,type=DOUBLE"`
}

var csvHeader = []string{"rank", "_id", "name", "count", "totalRevenue", "avgPrice"}

// Rows flattens a report in rank order.
func Rows(report *models.PopularityReport) []ReportRow {
	rows := make([]ReportRow, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = ReportRow{
			Rank:        int32(i + 1),
			ReportID:    report.ID,
			Window:      report.Window,
			GeneratedAt: report.GeneratedAt.UnixMilli(),
			ItemID:      r.ID,
			Name:        r.Name,
			Quantity:    int64(r.Quantity),
			Revenue:     r.Revenue,
			AvgPrice:    r.AvgPrice,
		}
	}
	return rows
}
