package postgres

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type FoodItemRepository struct {
	pool *pgxpool.Pool
}

func NewFoodItemRepository(pool *pgxpool.Pool) *FoodItemRepository {
	return &FoodItemRepository{pool: pool}
}

func foodValues(f *models.FoodItem) []interface{} {
	var (
		offerDescription *string
		discount         *float64
	)
	if f.Offer != nil {
		offerDescription = &f.Offer.Description
		discount = &f.Offer.DiscountPercentage
	}
	ingredients := f.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return []interface{}{
		f.ID,
		f.Name,
		f.Description,
		f.Category,
		f.Price,
		ingredients,
		f.Vegetarian,
		f.Vegan,
		f.GlutenFree,
		f.Image,
		offerDescription,
		discount,
	}
}

func scanFood(row pgx.Row) (models.FoodItem, error) {
	var (
		f                models.FoodItem
		offerDescription *string
		discount         *float64
	)
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Category,
		&f.Price,
		&f.Ingredients,
		&f.Vegetarian,
		&f.Vegan,
		&f.GlutenFree,
		&f.Image,
		&offerDescription,
		&discount,
	)
	if err != nil {
		return f, err
	}
	if offerDescription != nil || discount != nil {
		f.Offer = &models.SpecialOffer{}
		if offerDescription != nil {
			f.Offer.Description = *offerDescription
		}
		if discount != nil {
			f.Offer.DiscountPercentage = *discount
		}
	}
	return f, nil
}

const foodColumns = `id, name, description, category, price, ingredients,
            vegetarian, vegan, gluten_free, image, offer_description,
            discount_percentage`

func (r *FoodItemRepository) BulkCreate(ctx context.Context, items []*models.FoodItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"food_items"},
		[]string{
			"id", "name", "description", "category", "price", "ingredients",
			"vegetarian", "vegan", "gluten_free", "image", "offer_description",
			"discount_percentage",
		},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			if items[i].ID == "" {
				items[i].ID = cuid.New()
			}
			return foodValues(items[i]), nil
		}),
	)
	return translate(err, "bulk")
}

func (r *FoodItemRepository) Create(ctx context.Context, item *models.FoodItem) error {
	if item.ID == "" {
		item.ID = cuid.New()
	}
	query := `
        INSERT INTO food_items (` + foodColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := r.pool.Exec(ctx, query, foodValues(item)...)
	return translate(err, item.ID)
}

func (r *FoodItemRepository) Get(ctx context.Context, id string) (*models.FoodItem, error) {
	f, err := scanFood(r.pool.QueryRow(ctx, "SELECT "+foodColumns+" FROM food_items WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, id)
	}
	return &f, nil
}

func (r *FoodItemRepository) GetAll(ctx context.Context) ([]models.FoodItem, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+foodColumns+" FROM food_items ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *FoodItemRepository) Update(ctx context.Context, item *models.FoodItem) error {
	query := `
        UPDATE food_items SET
            name = $2, description = $3, category = $4, price = $5,
            ingredients = $6, vegetarian = $7, vegan = $8, gluten_free = $9,
            image = $10, offer_description = $11, discount_percentage = $12,
            updated_at = NOW()
        WHERE id = $1
    `
	return affected(item.ID)(r.pool.Exec(ctx, query, foodValues(item)...))
}

func (r *FoodItemRepository) Delete(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM food_items WHERE id = $1", id))
}

func (r *FoodItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM food_items").Scan(&count)
	return count, err
}
