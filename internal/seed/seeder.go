// Package seed fills a store with a believable history of customers, dishes,
// couriers and orders for demos and local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

const (
	orderBatchSize = 500
	reviewRatio    = 0.15
	messageRatio   = 0.1
)

// Result counts what a run wrote.
type Result struct {
	Customers       int `json:"customers"`
	FoodItems       int `json:"foodItems"`
	DeliveryPersons int `json:"deliveryPersons"`
	Orders          int `json:"orders"`
	PaidOrders      int `json:"paidOrders"`
	Assignments     int `json:"assignments"`
	Reviews         int `json:"reviews"`
	Messages        int `json:"messages"`
}

type Seeder struct {
	store    *repositories.Store
	cfg      models.SeedConfig
	progress io.Writer
}

type Option func(*Seeder)

// WithProgressOutput redirects the progress bar, which defaults to stderr.
func WithProgressOutput(w io.Writer) Option {
	return func(s *Seeder) { s.progress = w }
}

func NewSeeder(store *repositories.Store, cfg models.SeedConfig, opts ...Option) *Seeder {
	s := &Seeder{store: store, cfg: cfg, progress: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Seeder) validate() error {
	cfg := s.cfg
	if cfg.Customers < 0 || cfg.FoodItems < 0 || cfg.DeliveryPersons < 0 || cfg.Orders < 0 {
		return errors.New("seed counts must not be negative")
	}
	if cfg.Orders > 0 && (cfg.Customers == 0 || cfg.FoodItems == 0) {
		return errors.New("orders need at least one customer and one food item")
	}
	if !cfg.EndDate.After(cfg.StartDate) {
		return fmt.Errorf("end date %s must be after start date %s", cfg.EndDate.Format(time.RFC3339), cfg.StartDate.Format(time.RFC3339))
	}
	if cfg.PaidRatio < 0 || cfg.PaidRatio > 1 {
		return fmt.Errorf("paid ratio %.2f must be between 0 and 1", cfg.PaidRatio)
	}
	return nil
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	src := factories.NewSource(s.cfg.Seed)
	rng := rand.New(rand.NewSource(s.cfg.Seed + 2))
	res := &Result{}

	profiles := make([]factories.Profile, s.cfg.Customers)
	customers := make([]*models.Customer, s.cfg.Customers)
	cf := factories.NewCustomerFactory(src)
	for i := range customers {
		profiles[i] = cf.CreateCustomer(&s.cfg)
		customers[i] = profiles[i].Customer
	}
	if len(customers) > 0 {
		if err := s.store.Customers.BulkCreate(ctx, customers); err != nil {
			return nil, fmt.Errorf("error seeding customers: %w", err)
		}
	}
	res.Customers = len(customers)

	menu := make([]*models.FoodItem, s.cfg.FoodItems)
	ff := factories.NewFoodItemFactory(src)
	for i := range menu {
		menu[i] = ff.CreateFoodItem()
	}
	if len(menu) > 0 {
		if err := s.store.Foods.BulkCreate(ctx, menu); err != nil {
			return nil, fmt.Errorf("error seeding food items: %w", err)
		}
	}
	res.FoodItems = len(menu)

	persons := make([]*models.DeliveryPerson, s.cfg.DeliveryPersons)
	df := factories.NewDeliveryPersonFactory(src)
	for i := range persons {
		persons[i] = df.CreateDeliveryPerson(&s.cfg)
	}
	if len(persons) > 0 {
		if err := s.store.Delivery.BulkCreatePersons(ctx, persons); err != nil {
			return nil, fmt.Errorf("error seeding delivery persons: %w", err)
		}
	}
	res.DeliveryPersons = len(persons)

	orders, err := s.seedOrders(ctx, src, rng, profiles, menu, res)
	if err != nil {
		return nil, err
	}
	if err := s.seedFollowUps(ctx, src, rng, orders, customers, persons, res); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"customers":       res.Customers,
		"foodItems":       res.FoodItems,
		"deliveryPersons": res.DeliveryPersons,
		"orders":          res.Orders,
		"paidOrders":      res.PaidOrders,
		"assignments":     res.Assignments,
		"reviews":         res.Reviews,
		"messages":        res.Messages,
	}).Info("seeding complete")
	return res, nil
}

func (s *Seeder) seedOrders(ctx context.Context, src *factories.Source, rng *rand.Rand, profiles []factories.Profile, menu []*models.FoodItem, res *Result) ([]*models.Order, error) {
	if s.cfg.Orders == 0 {
		return nil, nil
	}

	times := newDemandCurve(&s.cfg).sample(rng, s.cfg.StartDate, s.cfg.EndDate, s.cfg.Orders)
	pick := newWeightedPicker(profiles)
	of := factories.NewOrderFactory(src)

	bar := progressbar.NewOptions(s.cfg.Orders,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("seeding orders"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	defer bar.Finish()

	all := make([]*models.Order, 0, s.cfg.Orders)
	batch := make([]*models.Order, 0, orderBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.store.Orders.BulkCreate(ctx, batch); err != nil {
			return fmt.Errorf("error seeding orders: %w", err)
		}
		_ = bar.Add(len(batch))
		batch = batch[:0]
		return nil
	}

	for _, placedAt := range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		customer := profiles[pick(rng.Float64())].Customer
		paid := rng.Float64() < s.cfg.PaidRatio
		order := of.CreateOrder(customer, menu, placedAt, s.cfg.EndDate, paid)
		if paid {
			res.PaidOrders++
		}
		batch = append(batch, order)
		all = append(all, order)
		if len(batch) == orderBatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	res.Orders = len(all)
	return all, nil
}

// seedFollowUps adds what happens after an order: courier assignments,
// reviews of delivered food and support messages.
func (s *Seeder) seedFollowUps(ctx context.Context, src *factories.Source, rng *rand.Rand, orders []*models.Order, customers []*models.Customer, persons []*models.DeliveryPerson, res *Result) error {
	couriers := activeCouriers(persons)
	df := factories.NewDeliveryPersonFactory(src)
	fb := factories.NewFeedbackFactory(src)

	for _, order := range orders {
		if order.Status == models.OrderStatusProcessing {
			continue
		}
		if len(couriers) > 0 {
			a := df.CreateAssignment(order, couriers[rng.Intn(len(couriers))])
			if err := s.store.Delivery.CreateAssignment(ctx, a); err != nil {
				return fmt.Errorf("error seeding assignment for order %s: %w", order.ID, err)
			}
			res.Assignments++
		}
		if order.Status == models.OrderStatusDelivered && rng.Float64() < reviewRatio {
			if err := s.store.Reviews.Create(ctx, fb.CreateReview(order)); err != nil {
				return fmt.Errorf("error seeding review for order %s: %w", order.ID, err)
			}
			res.Reviews++
		}
	}

	span := s.cfg.EndDate.Sub(s.cfg.StartDate)
	messages := int(float64(len(customers)) * messageRatio)
	for i := 0; i < messages; i++ {
		at := s.cfg.StartDate.Add(time.Duration(rng.Int63n(int64(span)))).Truncate(time.Second)
		msg := fb.CreateMessage(customers[rng.Intn(len(customers))], at)
		if err := s.store.Messages.Create(ctx, msg); err != nil {
			return fmt.Errorf("error seeding customer message: %w", err)
		}
		res.Messages++
	}
	return nil
}

func activeCouriers(persons []*models.DeliveryPerson) []*models.DeliveryPerson {
	active := make([]*models.DeliveryPerson, 0, len(persons))
	for _, p := range persons {
		if p.Active {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return persons
	}
	return active
}

// newWeightedPicker maps a uniform draw in [0, 1) to a profile index, with
// frequent customers proportionally more likely than occasional ones.
func newWeightedPicker(profiles []factories.Profile) func(r float64) int {
	cumulative := make([]float64, len(profiles))
	total := 0.0
	for i, p := range profiles {
		total += p.Segment.OrderWeight
		cumulative[i] = total
	}
	return func(r float64) int {
		i := sort.SearchFloat64s(cumulative, r*total)
		if i >= len(cumulative) {
			i = len(cumulative) - 1
		}
		return i
	}
}
