package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/shopspring/decimal"
)

// Catalog resolves food items by id for line items that do not embed a name or price.
type Catalog map[string]models.FoodItem

func NewCatalog(items []models.FoodItem) Catalog {
	c := make(Catalog, len(items))
	for _, item := range items {
		c[item.ID] = item
	}
	return c
}

// resolve returns the display name and unit price of a line item.
func (c Catalog) resolve(item models.LineItem) (string, float64, error) {
	if item.FoodID == "" {
		return "", 0, fmt.Errorf("%w: missing item id", ErrMalformedLineItem)
	}
	food, known := c[item.FoodID]

	name := item.Name
	if name == "" && known {
		name = food.Name
	}
	if name == "" {
		name = item.FoodID
	}

	var price float64
	switch {
	case item.Price != nil:
		price = *item.Price
	case known:
		price = food.Price
	default:
		return "", 0, fmt.Errorf("%w: no price for item %s", ErrMalformedLineItem, item.FoodID)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return "", 0, fmt.Errorf("%w: invalid price %v for item %s", ErrMalformedLineItem, price, item.FoodID)
	}
	return name, price, nil
}

type bucket struct {
	id       string
	name     string
	quantity int
	revenue  decimal.Decimal
}

// Popularity folds the line items of orders into per-item rows ranked by
// quantity sold. A positive limit keeps only the first limit rows.
func Popularity(orders []models.Order, catalog Catalog, limit int) ([]models.SummaryRow, error) {
	index := make(map[string]int)
	buckets := make([]*bucket, 0)

	for _, o := range orders {
		for i, item := range o.Items {
			name, price, err := catalog.resolve(item)
			if err != nil {
				return nil, fmt.Errorf("order %s item %d: %w", o.ID, i, err)
			}
			qty := item.EffectiveQuantity()

			idx, ok := index[item.FoodID]
			if !ok {
				idx = len(buckets)
				index[item.FoodID] = idx
				buckets = append(buckets, &bucket{id: item.FoodID, name: name})
			}
			b := buckets[idx]
			b.quantity += qty
			b.revenue = b.revenue.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))))
		}
	}

	rows := make([]models.SummaryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, models.SummaryRow{
			ID:       b.id,
			Name:     b.name,
			Quantity: b.quantity,
			Revenue:  b.revenue.InexactFloat64(),
			AvgPrice: averagePrice(b.revenue, b.quantity),
		})
	}

	// stable: ties keep first-appearance order
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Quantity > rows[j].Quantity })

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func averagePrice(revenue decimal.Decimal, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return revenue.Div(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}
