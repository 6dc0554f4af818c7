package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
)

var ratingWeights = []float64{0.05, 0.08, 0.17, 0.35, 0.35} // 1 to 5 stars

var reviewComments = map[int][]string{
	1: {"Cold on arrival.", "Order was wrong and support never replied."},
	2: {"Took far too long.", "Portion was smaller than expected."},
	3: {"Decent but nothing special.", "Food was fine, delivery was slow."},
	4: {"Tasty and arrived warm.", "Good value, will order again."},
	5: {"Absolutely delicious!", "Best delivery in town, super quick."},
}

type FeedbackFactory struct {
	*Source
}

func NewFeedbackFactory(src *Source) *FeedbackFactory {
	return &FeedbackFactory{Source: src}
}

// CreateReview rates the first dish of a delivered order shortly after it
// was placed.
func (ff *FeedbackFactory) CreateReview(order *models.Order) *models.Review {
	rating := ff.selectWeighted(ratingWeights) + 1
	created := order.PlacedAt.Add(time.Duration(2+ff.Intn(46)) * time.Hour)

	review := &models.Review{
		ID:         cuid.New(),
		CustomerID: order.CustomerID,
		OrderID:    order.ID,
		Rating:     rating,
		Text:       ff.pick(reviewComments[rating]),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	if len(order.Items) > 0 {
		review.FoodID = order.Items[0].FoodID
	}
	return review
}

func (ff *FeedbackFactory) CreateMessage(customer *models.Customer, at time.Time) *models.CustomerMessage {
	status := models.MessageStatusPending
	if ff.Float64() < 0.6 {
		status = models.MessageStatusResolved
	}
	return &models.CustomerMessage{
		ID:         cuid.New(),
		CustomerID: customer.ID,
		Email:      customer.Email,
		Message:    ff.fake.Lorem().Sentence(12),
		Status:     status,
		CreatedAt:  at,
	}
}
