package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/cloudwriter"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func sampleReport() *models.PopularityReport {
	return &models.PopularityReport{
		ID:          "r1",
		Window:      "last-7-days",
		GeneratedAt: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
		Rows: []models.SummaryRow{
			{ID: "B", Name: "Fries", Quantity: 5, Revenue: 10, AvgPrice: 2},
			{ID: "A", Name: "Burger, double", Quantity: 3, Revenue: 15.5, AvgPrice: 5.1666666},
		},
		TotalQuantity: 8,
		TotalRevenue:  25.5,
	}
}

type memoryWriter struct {
	bytes.Buffer
	closed bool
}

func (m *memoryWriter) Close() error {
	m.closed = true
	return nil
}

type memoryFactory struct {
	objects map[string]*memoryWriter
	types   map[string]string
}

func (f *memoryFactory) NewWriter(_ context.Context, bucket, objectPath, contentType string) (cloudwriter.CloudWriter, error) {
	w := &memoryWriter{}
	f.objects[bucket+"/"+objectPath] = w
	f.types[bucket+"/"+objectPath] = contentType
	return w, nil
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PARQUET")
	require.NoError(t, err)
	assert.Equal(t, FormatParquet, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatCSV, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"rank", "_id", "name", "count", "totalRevenue", "avgPrice"},
		{"1", "B", "Fries", "5", "10.00", "2.00"},
		{"2", "A", "Burger, double", "3", "15.50", "5.17"},
	}, records)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sampleReport()))

	var decoded models.PopularityReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleReport(), decoded)
}

func TestEncodeParquetToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatParquet, sampleReport()))

	data := buf.Bytes()
	require.Greater(t, len(data), 8)
	assert.Equal(t, "PAR1", string(data[:4]))
	assert.Equal(t, "PAR1", string(data[len(data)-4:]))
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Format("xml"), sampleReport()))
}

func TestLocalExportParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	exporter := NewLocalExporter(dir, "reports")

	target, err := exporter.Export(context.Background(), sampleReport(), FormatParquet)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reports", "popularity", "year=2024", "month=03", "day=15", "report-r1.parquet"), target)

	fr, err := local.NewLocalFileReader(target)
	require.NoError(t, err)
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(ReportRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(2), pr.GetNumRows())
	rows := make([]ReportRow, 2)
	require.NoError(t, pr.Read(&rows))
	assert.Equal(t, Rows(sampleReport()), rows)
}

func TestLocalExportCSV(t *testing.T) {
	dir := t.TempDir()
	exporter := NewLocalExporter(dir, "reports")

	target, err := exporter.Export(context.Background(), sampleReport(), FormatCSV)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "rank,_id,name"))
}

func TestCloudExport(t *testing.T) {
	factory := &memoryFactory{objects: map[string]*memoryWriter{}, types: map[string]string{}}
	exporter := NewCloudExporter(factory, "bucket", "reports")

	for _, format := range []Format{FormatJSON, FormatParquet} {
		key, err := exporter.Export(context.Background(), sampleReport(), format)
		require.NoError(t, err)

		obj, ok := factory.objects["bucket/"+key]
		require.True(t, ok, key)
		assert.True(t, obj.closed)
		assert.NotZero(t, obj.Len())
		assert.Equal(t, format.ContentType(), factory.types["bucket/"+key])
	}
}

func TestRowsRankAndMetadata(t *testing.T) {
	rows := Rows(sampleReport())

	require.Len(t, rows, 2)
	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, int32(2), rows[1].Rank)
	assert.Equal(t, "r1", rows[1].ReportID)
	assert.Equal(t, sampleReport().GeneratedAt.UnixMilli(), rows[0].GeneratedAt)
}
