// Package factories builds realistic demo records for the admin backend.
package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
)

// Source is the shared randomness behind every factory. A fixed seed yields
// the same names, prices and shapes on every run.
type Source struct {
	fake faker.Faker
	rng  *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed + 1)),
	}
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *Source) pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

// selectWeighted returns the index chosen with probability weights[i]/total.
func (s *Source) selectWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if len(weights) == 0 || total <= 0 {
		return -1
	}

	r := s.rng.Float64() * total
	currentSum := 0.0
	for i, w := range weights {
		currentSum += w
		if r < currentSum {
			return i
		}
	}
	return len(weights) - 1
}
