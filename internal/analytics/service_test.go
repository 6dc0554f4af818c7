package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFoods struct {
	*memory.FoodItemRepository
}

var errCatalogDown = errors.New("catalog down")

func (failingFoods) GetAll(context.Context) ([]models.FoodItem, error) {
	return nil, errCatalogDown
}

func TestServicePopularityReport(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, o := range sampleOrders() {
		o := o
		require.NoError(t, store.Orders.Create(ctx, &o))
	}
	svc := NewService(store, NewEngine(WithClock(fixedClock)))

	report, err := svc.PopularityReport(ctx, Query{Window: WindowLast7Days, Limit: 2})

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "B", report.Rows[0].ID)
	assert.Equal(t, 4, report.Rows[0].Quantity)

	again, err := svc.PopularityReport(ctx, Query{Window: WindowLast7Days, Limit: 2})
	require.NoError(t, err)
	assert.NotEqual(t, report.ID, again.ID)
	assert.Equal(t, report.Rows, again.Rows)
}

func TestServiceOrderDashboard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, o := range sampleOrders() {
		o := o
		require.NoError(t, store.Orders.Create(ctx, &o))
	}
	require.NoError(t, store.Customers.Create(ctx, &models.Customer{ID: "c-o1", Name: "Ada", Email: "ada@example.com"}))
	svc := NewService(store, NewEngine(WithClock(fixedClock)))

	dash, err := svc.OrderDashboard(ctx, Query{Window: WindowAll})

	require.NoError(t, err)
	assert.Equal(t, 5, dash.TotalOrders)
	assert.Equal(t, 4, dash.PaidOrders)
	require.Len(t, dash.TopCustomers, 4)
	names := map[string]string{}
	for _, c := range dash.TopCustomers {
		names[c.CustomerID] = c.Name
	}
	assert.Equal(t, "Ada", names["c-o1"])
	assert.Equal(t, UnknownCustomer, names["c-o5"])
}

func TestServicePropagatesRepositoryErrors(t *testing.T) {
	store := memory.NewStore()
	store.Foods = failingFoods{memory.NewFoodItemRepository()}
	svc := NewService(store, nil)

	report, err := svc.PopularityReport(context.Background(), Query{Window: WindowAll})

	assert.ErrorIs(t, err, errCatalogDown)
	assert.Nil(t, report)
}
