package generator

import (
	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Profile shape constants
const (
	PrimaryCategoriesMin   = 3
	PrimaryCategoriesMax   = 5
	SecondaryCategoriesMin = 5
	SecondaryCategoriesMax = 10

	RecurringProbability = 0.8
	RecurringChargesMin  = 1
	RecurringChargesMax  = 5
	RecurringAmountMin   = 5.0
	RecurringAmountMax   = 100.0
	RecurringDayMax      = 28
)

// ProfileBuilder constructs randomized spending profiles. Each customer
// gets a handful of primary categories carrying most of the weight, a
// secondary tier, and a long tail of occasional categories.
type ProfileBuilder struct {
	catalog *data.Catalog
}

// NewProfileBuilder creates a profile builder backed by the reference catalog
func NewProfileBuilder(catalog *data.Catalog) *ProfileBuilder {
	return &ProfileBuilder{catalog: catalog}
}

// Build generates a spending profile from the given RNG. Two calls with
// RNGs in the same state produce identical profiles.
func (b *ProfileBuilder) Build(rng *utils.Random) *models.SpendingProfile {
	codes := b.catalog.MCCCodes()
	weights := b.categoryWeights(rng, len(codes))

	profile := &models.SpendingProfile{
		CategoryCodes:   codes,
		CategoryWeights: weights,
	}

	// Weekday vs weekend split
	profile.WeekdayWeight = rng.Float64Range(0.5, 0.7)
	profile.WeekendWeight = 1 - profile.WeekdayWeight

	profile.TimeOfDay = b.timeWeights(rng)

	// Typical amounts
	profile.Amounts = models.AmountProfile{
		Min:    rng.Float64Range(1, 10),
		Max:    rng.Float64Range(500, 2000),
		Mean:   rng.Float64Range(20, 100),
		StdDev: rng.Float64Range(10, 50),
	}

	// Most customers carry a few monthly subscriptions
	if rng.Probability(RecurringProbability) {
		count := rng.IntRange(RecurringChargesMin, RecurringChargesMax)
		profile.Recurring = make([]models.RecurringCharge, 0, count)
		for i := 0; i < count; i++ {
			merchant := rng.PickString(b.catalog.SubscriptionMerchants())
			profile.Recurring = append(profile.Recurring, models.RecurringCharge{
				Merchant:   merchant,
				MCC:        b.catalog.AssignMCC(merchant),
				Amount:     utils.FromFloat(rng.Float64Range(RecurringAmountMin, RecurringAmountMax)),
				DayOfMonth: rng.IntRange(1, RecurringDayMax),
			})
		}
	}

	return profile
}

// categoryWeights assigns a weight to every category: a few primaries
// dominate, a secondary tier follows, the rest are a thin tail. Weights
// are normalized to sum to 1.
func (b *ProfileBuilder) categoryWeights(rng *utils.Random, n int) []float64 {
	weights := make([]float64, n)

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	shuffleInts(rng, indexes)

	primary := rng.IntRange(PrimaryCategoriesMin, PrimaryCategoriesMax)
	secondary := rng.IntRange(SecondaryCategoriesMin, SecondaryCategoriesMax)
	if primary > n {
		primary = n
	}
	if primary+secondary > n {
		secondary = n - primary
	}

	for i, idx := range indexes {
		switch {
		case i < primary:
			weights[idx] = rng.Float64Range(0.1, 0.25)
		case i < primary+secondary:
			weights[idx] = rng.Float64Range(0.01, 0.09)
		default:
			weights[idx] = rng.Float64Range(0, 0.01)
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}

	return weights
}

// timeWeights draws part-of-day preferences and normalizes them
func (b *ProfileBuilder) timeWeights(rng *utils.Random) models.TimeWeights {
	morning := rng.Float64Range(0, 0.3)
	afternoon := rng.Float64Range(0.2, 0.5)
	evening := rng.Float64Range(0.2, 0.5)
	night := rng.Float64Range(0, 0.2)

	total := morning + afternoon + evening + night
	return models.TimeWeights{
		Morning:   morning / total,
		Afternoon: afternoon / total,
		Evening:   evening / total,
		Night:     night / total,
	}
}

func shuffleInts(rng *utils.Random, s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
