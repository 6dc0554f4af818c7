package memory

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type DeliveryRepository struct {
	persons     *table[models.DeliveryPerson]
	assignments *table[models.DeliveryAssignment]
}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{
		persons:     newTable[models.DeliveryPerson](),
		assignments: newTable[models.DeliveryAssignment](),
	}
}

func (r *DeliveryRepository) BulkCreatePersons(ctx context.Context, persons []*models.DeliveryPerson) error {
	for _, p := range persons {
		if err := r.CreatePerson(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *DeliveryRepository) CreatePerson(_ context.Context, person *models.DeliveryPerson) error {
	ensureID(&person.ID)
	return r.persons.insert(person.ID, *person)
}

func (r *DeliveryRepository) ListPersons(context.Context) ([]models.DeliveryPerson, error) {
	return r.persons.all(), nil
}

func (r *DeliveryRepository) CreateAssignment(_ context.Context, assignment *models.DeliveryAssignment) error {
	ensureID(&assignment.ID)
	return r.assignments.insert(assignment.ID, *assignment)
}

func (r *DeliveryRepository) GetAssignment(_ context.Context, id string) (*models.DeliveryAssignment, error) {
	a, err := r.assignments.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DeliveryRepository) ListAssignments(context.Context) ([]models.DeliveryAssignment, error) {
	return r.assignments.all(), nil
}

func (r *DeliveryRepository) UpdateAssignment(_ context.Context, assignment *models.DeliveryAssignment) error {
	return r.assignments.update(assignment.ID, func(a *models.DeliveryAssignment) error {
		*a = *assignment
		return nil
	})
}

func (r *DeliveryRepository) DeleteAssignment(_ context.Context, id string) error {
	return r.assignments.remove(id)
}
