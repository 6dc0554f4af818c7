package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type TimeWindow string

const (
	WindowAll       TimeWindow = "all"
	WindowLast7Days TimeWindow = "last-7-days"
	WindowLastMonth TimeWindow = "last-month"
	WindowLastYear  TimeWindow = "last-year"
)

var windowAliases = map[string]TimeWindow{
	"all":         WindowAll,
	"last-7-days": WindowLast7Days,
	"last-month":  WindowLastMonth,
	"last-year":   WindowLastYear,
	// values posted by the dashboard's radio group
	"week":  WindowLast7Days,
	"month": WindowLastMonth,
	"year":  WindowLastYear,
}

var windowLabels = map[TimeWindow]string{
	WindowAll:       "All Time",
	WindowLast7Days: "Last 7 Days",
	WindowLastMonth: "Last Month",
	WindowLastYear:  "Last Year",
}

// ParseTimeWindow resolves a selector. An empty selector means "all".
func ParseTimeWindow(s string) (TimeWindow, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		key = string(WindowAll)
	}
	w, ok := windowAliases[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilterKind, s)
	}
	return w, nil
}

func (w TimeWindow) Label() string {
	return windowLabels[w]
}

// Cutoff returns the inclusive lower bound of the window. ok is false for WindowAll.
func (w TimeWindow) Cutoff(now time.Time) (cutoff time.Time, ok bool, err error) {
	switch w {
	case WindowAll:
		return time.Time{}, false, nil
	case WindowLast7Days:
		return now.AddDate(0, 0, -7), true, nil
	case WindowLastMonth:
		return now.AddDate(0, -1, 0), true, nil
	case WindowLastYear:
		return now.AddDate(-1, 0, 0), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidFilterKind, string(w))
	}
}

// FilterByWindow keeps the orders placed within [cutoff, now].
func FilterByWindow(orders []models.Order, w TimeWindow, now time.Time) ([]models.Order, error) {
	cutoff, bounded, err := w.Cutoff(now)
	if err != nil {
		return nil, err
	}
	if !bounded {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.PlacedAt.Before(cutoff) || o.PlacedAt.After(now) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

// FilterPaid keeps orders whose payment has completed.
func FilterPaid(orders []models.Order) []models.Order {
	paid := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Payment {
			paid = append(paid, o)
		}
	}
	return paid
}
