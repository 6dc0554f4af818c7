package postgres

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type DeliveryRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{pool: pool}
}

func (r *DeliveryRepository) BulkCreatePersons(ctx context.Context, persons []*models.DeliveryPerson) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"delivery_persons"},
		[]string{"id", "name", "phone", "vehicle", "active", "join_date"},
		pgx.CopyFromSlice(len(persons), func(i int) ([]interface{}, error) {
			p := persons[i]
			if p.ID == "" {
				p.ID = cuid.New()
			}
			return []interface{}{p.ID, p.Name, p.Phone, p.Vehicle, p.Active, p.JoinDate}, nil
		}),
	)
	return translate(err, "bulk")
}

func (r *DeliveryRepository) CreatePerson(ctx context.Context, p *models.DeliveryPerson) error {
	if p.ID == "" {
		p.ID = cuid.New()
	}
	if p.JoinDate.IsZero() {
		p.JoinDate = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO delivery_persons (id, name, phone, vehicle, active, join_date)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Phone, p.Vehicle, p.Active, p.JoinDate)
	return translate(err, p.ID)
}

func (r *DeliveryRepository) ListPersons(ctx context.Context) ([]models.DeliveryPerson, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, phone, vehicle, active, join_date FROM delivery_persons ORDER BY join_date, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]models.DeliveryPerson, 0)
	for rows.Next() {
		var p models.DeliveryPerson
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Vehicle, &p.Active, &p.JoinDate); err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

const assignmentColumns = "id, order_id, delivery_person_id, status, assigned_at, notes"

func scanAssignment(row pgx.Row) (models.DeliveryAssignment, error) {
	var a models.DeliveryAssignment
	err := row.Scan(&a.ID, &a.OrderID, &a.DeliveryPersonID, &a.Status, &a.AssignedAt, &a.Notes)
	return a, err
}

func (r *DeliveryRepository) CreateAssignment(ctx context.Context, a *models.DeliveryAssignment) error {
	if a.ID == "" {
		a.ID = cuid.New()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		"INSERT INTO delivery_assignments ("+assignmentColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		a.ID, a.OrderID, a.DeliveryPersonID, a.Status, a.AssignedAt, a.Notes)
	return translate(err, a.ID)
}

func (r *DeliveryRepository) GetAssignment(ctx context.Context, id string) (*models.DeliveryAssignment, error) {
	a, err := scanAssignment(r.pool.QueryRow(ctx,
		"SELECT "+assignmentColumns+" FROM delivery_assignments WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, id)
	}
	return &a, nil
}

func (r *DeliveryRepository) ListAssignments(ctx context.Context) ([]models.DeliveryAssignment, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+assignmentColumns+" FROM delivery_assignments ORDER BY assigned_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]models.DeliveryAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *DeliveryRepository) UpdateAssignment(ctx context.Context, a *models.DeliveryAssignment) error {
	return affected(a.ID)(r.pool.Exec(ctx, `
        UPDATE delivery_assignments
        SET order_id = $2, delivery_person_id = $3, status = $4, notes = $5
        WHERE id = $1`,
		a.ID, a.OrderID, a.DeliveryPersonID, a.Status, a.Notes))
}

func (r *DeliveryRepository) DeleteAssignment(ctx context.Context, id string) error {
	return affected(id)(r.pool.Exec(ctx, "DELETE FROM delivery_assignments WHERE id = $1", id))
}
