package analytics

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Service fetches orders, food items and customers and hands the resolved
// data to the Engine.
type Service struct {
	orders    repositories.OrderRepository
	foods     repositories.FoodItemRepository
	customers repositories.CustomerRepository
	engine    *Engine
}

func NewService(store *repositories.Store, engine *Engine) *Service {
	if engine == nil {
		engine = NewEngine()
	}
	return &Service{
		orders:    store.Orders,
		foods:     store.Foods,
		customers: store.Customers,
		engine:    engine,
	}
}

func (s *Service) PopularityReport(ctx context.Context, q Query) (*models.PopularityReport, error) {
	var (
		orders []models.Order
		foods  []models.FoodItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.List(gctx, models.OrderFilter{})
		if err != nil {
			return fmt.Errorf("fetch orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		foods, err = s.foods.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch food items: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := s.engine.Popularity(q, orders, NewCatalog(foods))
	if err != nil {
		return nil, err
	}
	report.ID = uuid.NewString()

	log.WithFields(log.Fields{
		"report_id": report.ID,
		"window":    report.Window,
		"orders":    len(orders),
		"rows":      len(report.Rows),
	}).Debug("popularity report assembled")
	return report, nil
}

func (s *Service) OrderDashboard(ctx context.Context, q Query) (*models.OrderDashboard, error) {
	var (
		orders    []models.Order
		customers []models.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.List(gctx, models.OrderFilter{})
		if err != nil {
			return fmt.Errorf("fetch orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = s.customers.List(gctx, "")
		if err != nil {
			return fmt.Errorf("fetch customers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.engine.Dashboard(q, orders, NewDirectory(customers))
}
