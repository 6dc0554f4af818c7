package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetParallelism = 4

// Encode writes report to w in the given format.
func Encode(w io.Writer, format Format, report *models.PopularityReport) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, report)
	case FormatJSON:
		return encodeJSON(w, report)
	case FormatParquet:
		pw, err := writer.NewParquetWriterFromWriter(w, new(ReportRow), parquetParallelism)
		if err != nil {
			return fmt.Errorf("failed to create ParquetWriter: %w", err)
		}
		return writeParquet(pw, report)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func encodeCSV(w io.Writer, report *models.PopularityReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Rows(report) {
		record := []string{
			strconv.Itoa(int(r.Rank)),
			r.ItemID,
			r.Name,
			strconv.FormatInt(r.Quantity, 10),
			decimal.NewFromFloat(r.Revenue).StringFixed(2),
			decimal.NewFromFloat(r.AvgPrice).StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeJSON(w io.Writer, report *models.PopularityReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func newParquetFileWriter(pf source.ParquetFile) (*writer.ParquetWriter, error) {
	pw, err := writer.NewParquetWriter(pf, new(ReportRow), parquetParallelism)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	return pw, nil
}

func writeParquet(pw *writer.ParquetWriter, report *models.PopularityReport) error {
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range Rows(report) {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}
