package memory

import (
	"context"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type CustomerRepository struct {
	customers *table[models.Customer]
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: newTable[models.Customer]()}
}

func (r *CustomerRepository) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	for _, c := range customers {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *CustomerRepository) Create(_ context.Context, customer *models.Customer) error {
	ensureID(&customer.ID)
	return r.customers.insert(customer.ID, *customer)
}

func (r *CustomerRepository) Get(_ context.Context, id string) (*models.Customer, error) {
	c, err := r.customers.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(_ context.Context, search string) ([]models.Customer, error) {
	all := r.customers.all()
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return all, nil
	}
	out := make([]models.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *models.Customer) error {
	return r.customers.update(customer.ID, func(c *models.Customer) error {
		createdAt := c.CreatedAt
		*c = *customer
		if c.CreatedAt.IsZero() {
			c.CreatedAt = createdAt
		}
		return nil
	})
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	return r.customers.remove(id)
}

func (r *CustomerRepository) Count(context.Context) (int, error) {
	return r.customers.count(), nil
}
