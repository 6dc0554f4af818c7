package postgres

import (
	"errors"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

func NewStore(pool *pgxpool.Pool) *repositories.Store {
	return &repositories.Store{
		Orders:    NewOrderRepository(pool),
		Foods:     NewFoodItemRepository(pool),
		Customers: NewCustomerRepository(pool),
		Reviews:   NewReviewRepository(pool),
		Delivery:  NewDeliveryRepository(pool),
		Messages:  NewMessageRepository(pool),
	}
}

// translate maps driver errors onto the repository sentinels.
func translate(err error, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repositories.ErrDuplicate, id)
	}
	return err
}

// affected turns a zero-row UPDATE/DELETE on id into ErrNotFound.
func affected(id string) func(pgconn.CommandTag, error) error {
	return func(tag pgconn.CommandTag, err error) error {
		if err != nil {
			return translate(err, id)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
		}
		return nil
	}
}
