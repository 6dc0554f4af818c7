package postgres

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, m *models.CustomerMessage) error {
	if m.ID == "" {
		m.ID = cuid.New()
	}
	if m.Status == "" {
		m.Status = models.MessageStatusPending
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO customer_messages (id, customer_id, email, message, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.CustomerID, m.Email, m.Message, m.Status, m.CreatedAt)
	return translate(err, m.ID)
}

const messageColumns = "id, customer_id, email, message, status, created_at"

func scanMessage(row pgx.Row) (models.CustomerMessage, error) {
	var m models.CustomerMessage
	err := row.Scan(&m.ID, &m.CustomerID, &m.Email, &m.Message, &m.Status, &m.CreatedAt)
	return m, err
}

func (r *MessageRepository) Get(ctx context.Context, id string) (*models.CustomerMessage, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx, "SELECT "+messageColumns+" FROM customer_messages WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, id)
	}
	return &m, nil
}

func (r *MessageRepository) List(ctx context.Context) ([]models.CustomerMessage, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+messageColumns+" FROM customer_messages ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.CustomerMessage, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) Update(ctx context.Context, m *models.CustomerMessage) error {
	return affected(m.ID)(r.pool.Exec(ctx,
		"UPDATE customer_messages SET email = $2, message = $3, status = $4 WHERE id = $1",
		m.ID, m.Email, m.Message, m.Status))
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM customer_messages WHERE id = $1", id))
}
