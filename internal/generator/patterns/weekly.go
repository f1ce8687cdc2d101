package patterns

import (
	"time"

	"github.com/mchandra/offergen/internal/utils"
)

// ActivityDamping scales the per-day spend probability so even heavy
// spenders skip some days
const ActivityDamping = 0.8

// Weekend amount boost range applied on Fridays and Saturdays
const (
	WeekendBoostMin = 1.1
	WeekendBoostMax = 1.4
)

// WeeklyPattern decides which days a customer transacts on and how many
// transactions each active day carries
type WeeklyPattern struct {
	weekdayWeight float64
	weekendWeight float64
	maxPerDay     int
}

// NewWeeklyPattern creates a pattern from the profile's day-type weights.
// maxPerDay caps the transactions on an active day (minimum 1).
func NewWeeklyPattern(weekdayWeight, weekendWeight float64, maxPerDay int) *WeeklyPattern {
	if maxPerDay < 1 {
		maxPerDay = 1
	}
	return &WeeklyPattern{
		weekdayWeight: weekdayWeight,
		weekendWeight: weekendWeight,
		maxPerDay:     maxPerDay,
	}
}

// IsActiveDay reports whether the customer transacts on the given day.
// The day-type weight is damped so activity stays sparse.
func (p *WeeklyPattern) IsActiveDay(rng *utils.Random, day time.Time) bool {
	weight := p.weekdayWeight
	if IsWeekend(day) {
		weight = p.weekendWeight
	}
	return rng.Probability(weight * ActivityDamping)
}

// DailyCount returns how many transactions an active day carries
func (p *WeeklyPattern) DailyCount(rng *utils.Random) int {
	return rng.IntRange(1, p.maxPerDay)
}

// AmountBoost returns the spend multiplier for the given day. Fridays
// and Saturdays run hotter; other days return 1.
func AmountBoost(rng *utils.Random, day time.Time) float64 {
	wd := day.Weekday()
	if wd == time.Friday || wd == time.Saturday {
		return rng.Float64Range(WeekendBoostMin, WeekendBoostMax)
	}
	return 1.0
}
