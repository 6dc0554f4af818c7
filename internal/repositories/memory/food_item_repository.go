package memory

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type FoodItemRepository struct {
	items *table[models.FoodItem]
}

func NewFoodItemRepository() *FoodItemRepository {
	return &FoodItemRepository{items: newTable[models.FoodItem]()}
}

func cloneFood(f models.FoodItem) models.FoodItem {
	f.Ingredients = append([]string(nil), f.Ingredients...)
	if f.Offer != nil {
		offer := *f.Offer
		f.Offer = &offer
	}
	return f
}

func (r *FoodItemRepository) BulkCreate(ctx context.Context, items []*models.FoodItem) error {
	for _, item := range items {
		if err := r.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *FoodItemRepository) Create(_ context.Context, item *models.FoodItem) error {
	ensureID(&item.ID)
	return r.items.insert(item.ID, cloneFood(*item))
}

func (r *FoodItemRepository) Get(_ context.Context, id string) (*models.FoodItem, error) {
	f, err := r.items.get(id)
	if err != nil {
		return nil, err
	}
	f = cloneFood(f)
	return &f, nil
}

func (r *FoodItemRepository) GetAll(context.Context) ([]models.FoodItem, error) {
	rows := r.items.all()
	for i := range rows {
		rows[i] = cloneFood(rows[i])
	}
	return rows, nil
}

func (r *FoodItemRepository) Update(_ context.Context, item *models.FoodItem) error {
	return r.items.update(item.ID, func(f *models.FoodItem) error {
		*f = cloneFood(*item)
		return nil
	})
}

func (r *FoodItemRepository) Delete(_ context.Context, id string) error {
	return r.items.remove(id)
}

func (r *FoodItemRepository) Count(context.Context) (int, error) {
	return r.items.count(), nil
}
