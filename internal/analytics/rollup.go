package analytics

import (
	"sort"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultTopCustomers = 5
	UnknownCustomer     = "Unknown"
	monthLabelLayout    = "Jan 2006"
)

// CustomerDirectory resolves customer display names.
type CustomerDirectory interface {
	CustomerName(id string) (string, bool)
}

// Directory is a map-backed CustomerDirectory.
type Directory map[string]string

func NewDirectory(customers []models.Customer) Directory {
	d := make(Directory, len(customers))
	for _, c := range customers {
		d[c.ID] = c.Name
	}
	return d
}

func (d Directory) CustomerName(id string) (string, bool) {
	name, ok := d[id]
	return name, ok
}

// MonthlyRevenue sums order amounts per calendar month of each order's own
// timestamp, in chronological order.
func MonthlyRevenue(orders []models.Order) []models.MonthlyRevenue {
	type month struct {
		key    int
		label  string
		amount decimal.Decimal
		orders int
	}
	byKey := make(map[int]*month)
	for _, o := range orders {
		key := o.PlacedAt.Year()*12 + int(o.PlacedAt.Month()) - 1
		m, ok := byKey[key]
		if !ok {
			m = &month{key: key, label: o.PlacedAt.Format(monthLabelLayout)}
			byKey[key] = m
		}
		m.amount = m.amount.Add(decimal.NewFromFloat(o.Amount))
		m.orders++
	}

	months := make([]*month, 0, len(byKey))
	for _, m := range byKey {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].key < months[j].key })

	result := make([]models.MonthlyRevenue, len(months))
	for i, m := range months {
		result[i] = models.MonthlyRevenue{Month: m.label, Amount: m.amount.InexactFloat64(), Orders: m.orders}
	}
	return result
}

// TopCustomers groups orders by customer, ranked by order count. A positive
// limit truncates the result.
func TopCustomers(orders []models.Order, dir CustomerDirectory, limit int) []models.CustomerSummary {
	type acc struct {
		id     string
		orders int
		amount decimal.Decimal
	}
	index := make(map[string]int)
	accs := make([]*acc, 0)
	for _, o := range orders {
		idx, ok := index[o.CustomerID]
		if !ok {
			idx = len(accs)
			index[o.CustomerID] = idx
			accs = append(accs, &acc{id: o.CustomerID})
		}
		accs[idx].orders++
		accs[idx].amount = accs[idx].amount.Add(decimal.NewFromFloat(o.Amount))
	}

	result := make([]models.CustomerSummary, 0, len(accs))
	for _, a := range accs {
		name := UnknownCustomer
		if dir != nil {
			if n, ok := dir.CustomerName(a.id); ok && n != "" {
				name = n
			}
		}
		result = append(result, models.CustomerSummary{
			CustomerID: a.id,
			Name:       name,
			Orders:     a.orders,
			Amount:     a.amount.InexactFloat64(),
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Orders > result[j].Orders })

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func StatusBreakdown(orders []models.Order) []models.CountItem {
	counts := make(map[string]int, len(models.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	result := make([]models.CountItem, len(models.OrderStatuses))
	for i, status := range models.OrderStatuses {
		result[i] = models.CountItem{Name: status, Value: counts[status]}
	}
	return result
}

func PaymentBreakdown(orders []models.Order) []models.CountItem {
	paid := 0
	for _, o := range orders {
		if o.Payment {
			paid++
		}
	}
	return []models.CountItem{
		{Name: "Paid", Value: paid},
		{Name: "Unpaid", Value: len(orders) - paid},
	}
}
