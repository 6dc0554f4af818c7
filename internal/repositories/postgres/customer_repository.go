package postgres

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func prepareCustomer(c *models.Customer) {
	if c.ID == "" {
		c.ID = cuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
}

func (r *CustomerRepository) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO customers (id, name, email, phone, address, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	for _, c := range customers {
		prepareCustomer(c)
		if _, err = tx.Exec(ctx, stmt, c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt); err != nil {
			return translate(err, c.ID)
		}
	}

	return tx.Commit(ctx)
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	prepareCustomer(c)
	_, err := r.pool.Exec(ctx, `
        INSERT INTO customers (id, name, email, phone, address, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt)
	return translate(err, c.ID)
}

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	return c, err
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx,
		"SELECT id, name, email, phone, address, created_at FROM customers WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, id)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	query := "SELECT id, name, email, phone, address, created_at FROM customers"
	var args []interface{}
	if search != "" {
		query += " WHERE name ILIKE $1 OR email ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	return affected(c.ID)(r.pool.Exec(ctx,
		"UPDATE customers SET name = $2, email = $3, phone = $4, address = $5 WHERE id = $1",
		c.ID, c.Name, c.Email, c.Phone, c.Address))
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM customers WHERE id = $1", id))
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	return count, err
}
