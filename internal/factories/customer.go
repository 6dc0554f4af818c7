package factories

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
)

type CustomerSegment struct {
	Name  string
	Ratio float64
	// OrderWeight scales how often customers of the segment order.
	OrderWeight float64
}

var DefaultCustomerSegments = []CustomerSegment{
	{Name: "frequent", Ratio: 0.2, OrderWeight: 3.0},
	{Name: "regular", Ratio: 0.5, OrderWeight: 1.5},
	{Name: "occasional", Ratio: 0.3, OrderWeight: 0.5},
}

// Profile is a generated customer plus the segment that drives its ordering.
type Profile struct {
	Customer *models.Customer
	Segment  CustomerSegment
}

type CustomerFactory struct {
	*Source
}

func NewCustomerFactory(src *Source) *CustomerFactory {
	return &CustomerFactory{Source: src}
}

func (cf *CustomerFactory) assignSegment() CustomerSegment {
	weights := make([]float64, len(DefaultCustomerSegments))
	for i, seg := range DefaultCustomerSegments {
		weights[i] = seg.Ratio
	}
	return DefaultCustomerSegments[cf.selectWeighted(weights)]
}

// CreateCustomer returns a customer who joined during the year before the
// seeding window opens.
func (cf *CustomerFactory) CreateCustomer(cfg *models.SeedConfig) Profile {
	first := cf.fake.Person().FirstName()
	last := cf.fake.Person().LastName()

	customer := &models.Customer{
		ID:        cuid.New(),
		Name:      first + " " + last,
		Email:     cf.email(first, last),
		Phone:     cf.fake.Phone().Number(),
		Address:   fmt.Sprintf("%s, %s", cf.fake.Address().StreetAddress(), cf.fake.Address().City()),
		CreatedAt: cf.fake.Time().TimeBetween(cfg.StartDate.AddDate(-1, 0, 0), cfg.StartDate).UTC().Truncate(time.Second),
	}
	return Profile{Customer: customer, Segment: cf.assignSegment()}
}

// email stays unique across a run because customers.email is a unique column.
func (cf *CustomerFactory) email(first, last string) string {
	local := strings.ToLower(fmt.Sprintf("%s.%s.%s", first, last, cuid.Slug()))
	local = strings.NewReplacer(" ", "", "'", "").Replace(local)
	return local + "@" + cf.fake.Internet().Domain()
}
