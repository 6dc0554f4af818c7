package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

// likeEscaper makes search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

const orderColumns = "id, customer_id, items, amount, payment, status, placed_at, address"

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func orderValues(o *models.Order) ([]interface{}, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}
	return []interface{}{o.ID, o.CustomerID, items, o.Amount, o.Payment, o.Status, o.PlacedAt, address}, nil
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var (
		o              models.Order
		items, address []byte
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &items, &o.Amount, &o.Payment, &o.Status, &o.PlacedAt, &address); err != nil {
		return o, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, fmt.Errorf("decode items of order %s: %w", o.ID, err)
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return o, fmt.Errorf("decode address of order %s: %w", o.ID, err)
	}
	return o, nil
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		strings.Split(strings.ReplaceAll(orderColumns, " ", ""), ","),
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			if orders[i].ID == "" {
				orders[i].ID = cuid.New()
			}
			return orderValues(orders[i])
		}),
	)
	return translate(err, "bulk")
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = cuid.New()
	}
	values, err := orderValues(order)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO orders (` + orderColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err = r.pool.Exec(ctx, query, values...)
	return translate(err, order.ID)
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, translate(err, id)
	}
	return &o, nil
}

// buildOrderQuery turns a filter into a SELECT with positional arguments.
func buildOrderQuery(filter models.OrderFilter) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Status) > 0 {
		where = append(where, "status = ANY("+arg(filter.Status)+")")
	}
	if filter.Payment != nil {
		where = append(where, "payment = "+arg(*filter.Payment))
	}
	if !filter.From.IsZero() {
		where = append(where, "placed_at >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "placed_at <= "+arg(filter.To))
	}
	if filter.Search != "" {
		p := arg("%" + likeEscaper.Replace(filter.Search) + "%")
		where = append(where, fmt.Sprintf(
			`(id ILIKE %[1]s ESCAPE '\' OR customer_id ILIKE %[1]s ESCAPE '\' OR address->>'firstName' ILIKE %[1]s ESCAPE '\' OR address->>'lastName' ILIKE %[1]s ESCAPE '\' OR address->>'city' ILIKE %[1]s ESCAPE '\' OR items::text ILIKE %[1]s ESCAPE '\')`, p))
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if filter.Newest {
		query += " ORDER BY placed_at DESC, id"
	} else {
		query += " ORDER BY placed_at ASC, id"
	}
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}
	return query, args
}

func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query, args := buildOrderQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	values, err := orderValues(order)
	if err != nil {
		return err
	}
	query := `
        UPDATE orders SET
            customer_id = $2, items = $3, amount = $4, payment = $5,
            status = $6, placed_at = $7, address = $8
        WHERE id = $1
    `
	return affected(order.ID)(r.pool.Exec(ctx, query, values...))
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return affected(id)(r.pool.Exec(ctx, "UPDATE orders SET status = $2 WHERE id = $1", id, status))
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id))
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}
