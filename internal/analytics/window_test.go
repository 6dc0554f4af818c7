package analytics

import (
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		in   string
		want TimeWindow
	}{
		{"", WindowAll},
		{"all", WindowAll},
		{"last-7-days", WindowLast7Days},
		{"LAST-MONTH", WindowLastMonth},
		{" last-year ", WindowLastYear},
		{"week", WindowLast7Days},
		{"month", WindowLastMonth},
		{"year", WindowLastYear},
	}
	for _, tt := range tests {
		got, err := ParseTimeWindow(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseTimeWindow("decade")
	assert.ErrorIs(t, err, ErrInvalidFilterKind)
}

func TestFilterByWindowSevenDayBoundary(t *testing.T) {
	onBoundary := order("edge", true, testNow.AddDate(0, 0, -7))
	tooOld := order("old", true, testNow.AddDate(0, 0, -8))
	recent := order("new", true, testNow.Add(-time.Minute))

	got, err := FilterByWindow([]models.Order{onBoundary, tooOld, recent}, WindowLast7Days, testNow)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "edge", got[0].ID)
	assert.Equal(t, "new", got[1].ID)
}

func TestFilterByWindowCalendarMonthAndYear(t *testing.T) {
	orders := []models.Order{
		order("a", true, time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)),
		order("b", true, time.Date(2024, time.February, 15, 11, 59, 59, 0, time.UTC)),
		order("c", true, time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)),
		order("d", true, time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)),
	}

	month, err := FilterByWindow(orders, WindowLastMonth, testNow)
	require.NoError(t, err)
	require.Len(t, month, 1)
	assert.Equal(t, "a", month[0].ID)

	year, err := FilterByWindow(orders, WindowLastYear, testNow)
	require.NoError(t, err)
	assert.Len(t, year, 3)
}

func TestFilterByWindowAllReturnsInput(t *testing.T) {
	orders := []models.Order{
		order("future", true, testNow.Add(24*time.Hour)),
		order("ancient", false, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	got, err := FilterByWindow(orders, WindowAll, testNow)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestFilterByWindowExcludesFutureOrders(t *testing.T) {
	got, err := FilterByWindow([]models.Order{order("future", true, testNow.Add(time.Second))}, WindowLast7Days, testNow)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByWindowUnknownKind(t *testing.T) {
	got, err := FilterByWindow(sampleOrders(), TimeWindow("decade"), testNow)

	assert.ErrorIs(t, err, ErrInvalidFilterKind)
	assert.Nil(t, got)
}

func TestFilterPaid(t *testing.T) {
	orders := []models.Order{
		order("paid", true, testNow),
		order("unpaid", false, testNow),
	}

	got := FilterPaid(orders)

	require.Len(t, got, 1)
	assert.Equal(t, "paid", got[0].ID)
}
