package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
)

var vehicles = []string{"Bicycle", "Motorbike", "Scooter", "Car"}

type DeliveryPersonFactory struct {
	*Source
}

func NewDeliveryPersonFactory(src *Source) *DeliveryPersonFactory {
	return &DeliveryPersonFactory{Source: src}
}

func (df *DeliveryPersonFactory) CreateDeliveryPerson(cfg *models.SeedConfig) *models.DeliveryPerson {
	return &models.DeliveryPerson{
		ID:       cuid.New(),
		Name:     df.fake.Person().Name(),
		Phone:    df.fake.Phone().Number(),
		Vehicle:  df.pick(vehicles),
		Active:   df.Float64() < 0.85,
		JoinDate: df.fake.Time().TimeBetween(cfg.StartDate.AddDate(-1, 0, 0), cfg.StartDate).UTC().Truncate(time.Second),
	}
}

// CreateAssignment hands an order that has left the kitchen to a courier.
func (df *DeliveryPersonFactory) CreateAssignment(order *models.Order, person *models.DeliveryPerson) *models.DeliveryAssignment {
	status := models.AssignmentStatusInProgress
	if order.Status == models.OrderStatusDelivered {
		status = models.AssignmentStatusCompleted
	}
	return &models.DeliveryAssignment{
		ID:               cuid.New(),
		OrderID:          order.ID,
		DeliveryPersonID: person.ID,
		Status:           status,
		AssignedAt:       order.PlacedAt.Add(time.Duration(10+df.Intn(20)) * time.Minute),
	}
}
