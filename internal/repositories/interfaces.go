package repositories

import (
	"context"
	"errors"

	"github.com/chrisdamba/foodadmin/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type FoodItemRepository interface {
	BulkCreate(ctx context.Context, items []*models.FoodItem) error
	Create(ctx context.Context, item *models.FoodItem) error
	Get(ctx context.Context, id string) (*models.FoodItem, error)
	GetAll(ctx context.Context) ([]models.FoodItem, error)
	Update(ctx context.Context, item *models.FoodItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CustomerRepository interface {
	BulkCreate(ctx context.Context, customers []*models.Customer) error
	Create(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, search string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Get(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
}

type DeliveryRepository interface {
	BulkCreatePersons(ctx context.Context, persons []*models.DeliveryPerson) error
	CreatePerson(ctx context.Context, person *models.DeliveryPerson) error
	ListPersons(ctx context.Context) ([]models.DeliveryPerson, error)

	CreateAssignment(ctx context.Context, assignment *models.DeliveryAssignment) error
	GetAssignment(ctx context.Context, id string) (*models.DeliveryAssignment, error)
	ListAssignments(ctx context.Context) ([]models.DeliveryAssignment, error)
	UpdateAssignment(ctx context.Context, assignment *models.DeliveryAssignment) error
	DeleteAssignment(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.CustomerMessage) error
	Get(ctx context.Context, id string) (*models.CustomerMessage, error)
	List(ctx context.Context) ([]models.CustomerMessage, error)
	Update(ctx context.Context, msg *models.CustomerMessage) error
	Delete(ctx context.Context, id string) error
}

// Store bundles every repository the admin backend needs.
type Store struct {
	Orders    OrderRepository
	Foods     FoodItemRepository
	Customers CustomerRepository
	Reviews   ReviewRepository
	Delivery  DeliveryRepository
	Messages  MessageRepository
}
