package memory

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type ReviewRepository struct {
	reviews *table[models.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: newTable[models.Review]()}
}

func (r *ReviewRepository) Create(_ context.Context, review *models.Review) error {
	ensureID(&review.ID)
	return r.reviews.insert(review.ID, *review)
}

func (r *ReviewRepository) Get(_ context.Context, id string) (*models.Review, error) {
	rv, err := r.reviews.get(id)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) List(context.Context) ([]models.Review, error) {
	return r.reviews.all(), nil
}

func (r *ReviewRepository) Update(_ context.Context, review *models.Review) error {
	return r.reviews.update(review.ID, func(existing *models.Review) error {
		createdAt := existing.CreatedAt
		*existing = *review
		if existing.CreatedAt.IsZero() {
			existing.CreatedAt = createdAt
		}
		return nil
	})
}

func (r *ReviewRepository) Delete(_ context.Context, id string) error {
	return r.reviews.remove(id)
}
