package factories

import (
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
)

type OrderFactory struct {
	*Source
}

func NewOrderFactory(src *Source) *OrderFactory {
	return &OrderFactory{Source: src}
}

// CreateOrder builds an order of one to four distinct dishes with their
// offer-adjusted prices embedded, so Amount always equals the line subtotal.
// The status follows how long ago the order was placed relative to now.
func (of *OrderFactory) CreateOrder(customer *models.Customer, menu []*models.FoodItem, placedAt, now time.Time, paid bool) *models.Order {
	lines := of.Intn(4) + 1
	if lines > len(menu) {
		lines = len(menu)
	}

	items := make([]models.LineItem, 0, lines)
	var amount float64
	for _, idx := range of.rng.Perm(len(menu))[:lines] {
		food := menu[idx]
		price := food.OfferPrice()
		qty := of.orderQuantity()
		items = append(items, models.LineItem{
			FoodID:   food.ID,
			Name:     food.Name,
			Price:    &price,
			Quantity: qty,
		})
		amount += price * float64(qty)
	}

	return &models.Order{
		ID:         cuid.New(),
		CustomerID: customer.ID,
		Items:      items,
		Amount:     roundCents(amount),
		Payment:    paid,
		Status:     statusForAge(now.Sub(placedAt)),
		PlacedAt:   placedAt,
		Address:    of.address(customer),
	}
}

// orderQuantity is skewed towards single portions.
func (of *OrderFactory) orderQuantity() int {
	switch r := of.Float64(); {
	case r < 0.6:
		return 1
	case r < 0.9:
		return 2
	default:
		return 3
	}
}

func (of *OrderFactory) address(customer *models.Customer) models.Address {
	first, last, _ := strings.Cut(customer.Name, " ")
	return models.Address{
		FirstName: first,
		LastName:  last,
		Street:    of.fake.Address().StreetAddress(),
		City:      of.fake.Address().City(),
		State:     of.fake.Address().State(),
		Zipcode:   of.fake.Address().PostCode(),
		Country:   of.fake.Address().Country(),
		Phone:     customer.Phone,
	}
}

func statusForAge(age time.Duration) string {
	switch {
	case age >= 2*time.Hour:
		return models.OrderStatusDelivered
	case age >= 30*time.Minute:
		return models.OrderStatusOutForDel
	default:
		return models.OrderStatusProcessing
	}
}
