package postgres

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = cuid.New()
	}
	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
        INSERT INTO reviews (id, customer_id, order_id, food_id, rating, body, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		review.ID, review.CustomerID, review.OrderID, review.FoodID, review.Rating, review.Text,
		review.CreatedAt, review.UpdatedAt)
	return translate(err, review.ID)
}

const reviewColumns = "id, customer_id, order_id, food_id, rating, body, created_at, updated_at"

func scanReview(row pgx.Row) (models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.CustomerID, &rv.OrderID, &rv.FoodID, &rv.Rating, &rv.Text,
		&rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *ReviewRepository) Get(ctx context.Context, id string) (*models.Review, error) {
	rv, err := scanReview(r.pool.QueryRow(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, id)
	}
	return &rv, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+reviewColumns+" FROM reviews ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now().UTC()
	return affected(review.ID)(r.pool.Exec(ctx, `
        UPDATE reviews SET rating = $2, body = $3, updated_at = $4 WHERE id = $1`,
		review.ID, review.Rating, review.Text, review.UpdatedAt))
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id))
}
