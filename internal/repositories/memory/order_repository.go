package memory

import (
	"context"
	"sort"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type OrderRepository struct {
	orders *table[models.Order]
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: newTable[models.Order]()}
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.LineItem(nil), o.Items...)
	return o
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	for _, o := range orders {
		if err := r.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) Create(_ context.Context, order *models.Order) error {
	ensureID(&order.ID)
	return r.orders.insert(order.ID, cloneOrder(*order))
}

func (r *OrderRepository) Get(_ context.Context, id string) (*models.Order, error) {
	o, err := r.orders.get(id)
	if err != nil {
		return nil, err
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepository) List(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders.all() {
		if filter.Matches(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if filter.Newest {
			return out[i].PlacedAt.After(out[j].PlacedAt)
		}
		return out[i].PlacedAt.Before(out[j].PlacedAt)
	})
	return page(out, filter.Offset, filter.Limit), nil
}

func (r *OrderRepository) Update(_ context.Context, order *models.Order) error {
	return r.orders.update(order.ID, func(o *models.Order) error {
		*o = cloneOrder(*order)
		return nil
	})
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id, status string) error {
	return r.orders.update(id, func(o *models.Order) error {
		o.Status = status
		return nil
	})
}

func (r *OrderRepository) Delete(_ context.Context, id string) error {
	return r.orders.remove(id)
}

func (r *OrderRepository) Count(context.Context) (int, error) {
	return r.orders.count(), nil
}
