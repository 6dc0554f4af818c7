package seed

import (
	"math/rand"
	"sort"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// rushHours holds the hour-of-day multipliers of the breakfast, lunch,
// dinner and late night rushes.
var rushHours = map[int]float64{
	7: 1.5, 8: 2.0, 9: 1.8, 10: 1.2,
	11: 1.3, 12: 2.0, 13: 2.0, 14: 1.5,
	17: 1.2, 18: 1.8, 19: 2.0, 20: 1.7, 21: 1.3,
	22: 1.4, 23: 1.6, 0: 1.3, 1: 1.0, 2: 0.8,
}

const quietHourWeight = 0.2 // 3am to 6am

// demandCurve weights an instant by how busy the kitchen usually is then.
type demandCurve struct {
	hourly  [24]float64
	weekday [7]float64
	max     float64
}

func newDemandCurve(cfg *models.SeedConfig) demandCurve {
	peak := cfg.PeakHourFactor
	if peak <= 0 {
		peak = 1
	}
	weekend := cfg.WeekendFactor
	if weekend <= 0 {
		weekend = 1
	}

	var c demandCurve
	for h := 0; h < 24; h++ {
		w := 1.0
		if h >= 3 && h <= 6 {
			w = quietHourWeight
		}
		if m, ok := rushHours[h]; ok {
			w = 1 + (m-1)*peak
		}
		c.hourly[h] = w
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		c.weekday[d] = 1
	}
	c.weekday[time.Friday] = 1 + (weekend-1)/2
	c.weekday[time.Saturday] = weekend
	c.weekday[time.Sunday] = weekend

	for _, h := range c.hourly {
		for _, d := range c.weekday {
			if h*d > c.max {
				c.max = h * d
			}
		}
	}
	return c
}

func (c demandCurve) weight(t time.Time) float64 {
	return c.hourly[t.Hour()] * c.weekday[t.Weekday()]
}

// sample draws n instants in [start, end] by rejection against the curve and
// returns them in chronological order.
func (c demandCurve) sample(rng *rand.Rand, start, end time.Time, n int) []time.Time {
	span := end.Sub(start)
	times := make([]time.Time, 0, n)
	for len(times) < n {
		t := start.Add(time.Duration(rng.Int63n(int64(span) + 1))).Truncate(time.Second)
		if t.Before(start) {
			t = start
		}
		if rng.Float64()*c.max <= c.weight(t) {
			times = append(times, t)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}
