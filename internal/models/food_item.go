package models

import (
	"errors"
	"math"
	"strings"
)

type SpecialOffer struct {
	Description        string  `json:"offerDescription"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

type FoodItem struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Ingredients []string      `json:"ingredients"`
	Vegetarian  bool          `json:"vegetarian"`
	Vegan       bool          `json:"vegan"`
	GlutenFree  bool          `json:"glutenFree"`
	Image       string        `json:"image,omitempty"`
	Offer       *SpecialOffer `json:"specialOffer,omitempty"`
}

// OfferPrice is the price after the special offer discount, if any.
func (f *FoodItem) OfferPrice() float64 {
	if f.Offer == nil || f.Offer.DiscountPercentage <= 0 {
		return f.Price
	}
	return math.Round(f.Price*(100-f.Offer.DiscountPercentage)) / 100
}

func (f *FoodItem) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		return errors.New("category is required")
	}
	if f.Price <= 0 || math.IsNaN(f.Price) || math.IsInf(f.Price, 0) {
		return errors.New("price must be a positive number")
	}
	if f.Offer != nil && (f.Offer.DiscountPercentage < 0 || f.Offer.DiscountPercentage > 100) {
		return errors.New("discount percentage must be between 0 and 100")
	}
	return nil
}
