// Package patterns provides the temporal and monetary distributions that
// shape synthetic transaction streams: time-of-day placement, weekly
// activity rhythms, and category-sensitive amount draws.
package patterns

import (
	"time"

	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Day period hour windows (inclusive)
const (
	MorningStartHour   = 6
	MorningEndHour     = 11
	AfternoonStartHour = 12
	AfternoonEndHour   = 16
	EveningStartHour   = 17
	EveningEndHour     = 20
	NightStartHour     = 21
	NightEndHour       = 23
)

// Weekend multipliers shift activity away from mornings toward
// evenings and nights before re-normalizing.
var weekendTimeMultipliers = [4]float64{0.7, 1.2, 1.3, 1.5}

var periodWindows = [4][2]int{
	{MorningStartHour, MorningEndHour},
	{AfternoonStartHour, AfternoonEndHour},
	{EveningStartHour, EveningEndHour},
	{NightStartHour, NightEndHour},
}

// TimeOfDayPattern places transactions within a day according to a
// customer's period preferences
type TimeOfDayPattern struct {
	weights models.TimeWeights
}

// NewTimeOfDayPattern creates a pattern from normalized period weights
func NewTimeOfDayPattern(weights models.TimeWeights) *TimeOfDayPattern {
	return &TimeOfDayPattern{weights: weights}
}

// PickTime returns a clock time on the given day drawn from the
// customer's period preferences. Saturdays and Sundays get re-weighted
// toward later periods.
func (p *TimeOfDayPattern) PickTime(rng *utils.Random, day time.Time) time.Time {
	weights := []float64{
		p.weights.Morning,
		p.weights.Afternoon,
		p.weights.Evening,
		p.weights.Night,
	}

	if IsWeekend(day) {
		var total float64
		for i := range weights {
			weights[i] *= weekendTimeMultipliers[i]
			total += weights[i]
		}
		if total > 0 {
			for i := range weights {
				weights[i] /= total
			}
		}
	}

	period := rng.WeightedPickFloat(weights)
	window := periodWindows[period]

	hour := rng.IntRange(window[0], window[1])
	minute := rng.IntRange(0, 59)
	second := rng.IntRange(0, 59)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, day.Location())
}

// IsWeekend reports whether the day is a Saturday or Sunday
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
