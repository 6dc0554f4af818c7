package factories

import (
	"math"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
)

var menuByCategory = map[string][]string{
	"Salad":    {"Greek Salad", "Caesar Salad", "Cobb Salad", "Quinoa Salad", "Peri Peri Salad"},
	"Rolls":    {"Chicken Roll", "Veg Spring Roll", "Paneer Roll", "Lasagna Roll", "Falafel Wrap"},
	"Deserts":  {"Ripple Ice Cream", "Fruit Ice Cream", "Tiramisu", "Baklava", "Mango Sticky Rice"},
	"Sandwich": {"Chicken Sandwich", "Vegan Sandwich", "Grilled Sandwich", "Bread Sandwich", "Club Sandwich"},
	"Cake":     {"Cup Cake", "Vegan Cake", "Butterscotch Cake", "Sliced Cake", "Chocolate Fudge Cake"},
	"Pure Veg": {"Garlic Mushroom", "Fried Cauliflower", "Mix Veg Pulao", "Rice Zucchini", "Paneer Butter Masala"},
	"Pasta":    {"Cheese Pasta", "Tomato Pasta", "Creamy Pasta", "Chicken Pasta", "Spaghetti Carbonara"},
	"Noodles":  {"Butter Noodles", "Veg Noodles", "Somen Noodles", "Cooked Noodles", "Pad Thai"},
}

// FoodCategories keeps a stable order so seeded runs are reproducible.
var FoodCategories = []string{"Salad", "Rolls", "Deserts", "Sandwich", "Cake", "Pure Veg", "Pasta", "Noodles"}

var (
	meatIngredients  = []string{"Chicken", "Beef", "Pork", "Fish"}
	plainIngredients = []string{"Tofu", "Tomato", "Lettuce", "Onion", "Garlic", "Rice", "Pasta", "Mushroom", "Zucchini"}
	dairyIngredients = []string{"Cheese", "Egg", "Milk", "Butter", "Paneer"}
	glutenContaining = map[string]bool{"Pasta": true, "Bread": true}
)

type FoodItemFactory struct {
	*Source
}

func NewFoodItemFactory(src *Source) *FoodItemFactory {
	return &FoodItemFactory{Source: src}
}

func (ff *FoodItemFactory) CreateFoodItem() *models.FoodItem {
	category := ff.pick(FoodCategories)
	ingredients := ff.generateIngredients()

	item := &models.FoodItem{
		ID:          cuid.New(),
		Name:        ff.pick(menuByCategory[category]),
		Description: ff.fake.Lorem().Sentence(10),
		Category:    category,
		Price:       roundCents(ff.fake.Float64(2, 4, 30)),
		Ingredients: ingredients,
	}
	item.Vegetarian, item.Vegan, item.GlutenFree = dietaryFlags(ingredients)

	// roughly one in five dishes runs a promotion
	if ff.Float64() < 0.2 {
		item.Offer = &models.SpecialOffer{
			Description:        "Limited time offer",
			DiscountPercentage: float64(5 * (1 + ff.Intn(6))),
		}
	}
	return item
}

func (ff *FoodItemFactory) generateIngredients() []string {
	count := ff.Intn(4) + 2 // 2 to 5 ingredients
	seen := make(map[string]bool, count)
	ingredients := make([]string, 0, count)

	pool := plainIngredients
	if ff.Float64() < 0.5 {
		pool = append(append([]string{}, plainIngredients...), meatIngredients...)
	}
	if ff.Float64() < 0.5 {
		pool = append(append([]string{}, pool...), dairyIngredients...)
	}

	for len(ingredients) < count {
		ing := ff.pick(pool)
		if seen[ing] {
			continue
		}
		seen[ing] = true
		ingredients = append(ingredients, ing)
	}
	return ingredients
}

func dietaryFlags(ingredients []string) (vegetarian, vegan, glutenFree bool) {
	vegetarian, vegan, glutenFree = true, true, true
	for _, ing := range ingredients {
		if contains(meatIngredients, ing) {
			vegetarian, vegan = false, false
		}
		if contains(dairyIngredients, ing) {
			vegan = false
		}
		if glutenContaining[ing] {
			glutenFree = false
		}
	}
	return vegetarian, vegan, glutenFree
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
