package patterns

import (
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Category multiplier ranges. Hotels and electronics run several times
// the customer's baseline; fast food runs well under it.
var categoryMultipliers = map[string][2]float64{
	"5411": {0.8, 1.5}, // Grocery
	"5542": {0.5, 1.2}, // Gas
	"5812": {1.0, 2.0}, // Restaurants
	"5814": {0.3, 0.8}, // Fast food
	"5912": {0.6, 1.2}, // Drug stores
	"5311": {1.0, 3.0}, // Department stores
	"7011": {2.0, 5.0}, // Hotels
	"5732": {1.5, 4.0}, // Electronics
	"4111": {1.5, 4.0}, // Transportation
}

var defaultMultiplier = [2]float64{0.7, 1.5}

// AmountPattern draws transaction amounts from a customer's spending
// distribution adjusted for merchant category
type AmountPattern struct {
	profile models.AmountProfile
}

// NewAmountPattern creates a pattern from the customer's amount profile
func NewAmountPattern(profile models.AmountProfile) *AmountPattern {
	return &AmountPattern{profile: profile}
}

// Base draws from the normal distribution around the customer's mean,
// clamped into [Min, Max]
func (p *AmountPattern) Base(rng *utils.Random) float64 {
	amount := rng.NormalFloat64Range(p.profile.Mean, p.profile.StdDev)
	if amount > p.profile.Max {
		amount = p.profile.Max
	}
	if amount < p.profile.Min {
		amount = p.profile.Min
	}
	return amount
}

// CategoryMultiplier draws the multiplier for a merchant category code
func CategoryMultiplier(rng *utils.Random, mcc string) float64 {
	r, ok := categoryMultipliers[mcc]
	if !ok {
		r = defaultMultiplier
	}
	return rng.Float64Range(r[0], r[1])
}

// Draw produces the final amount for a transaction: clamped base,
// category multiplier, then the day's boost
func (p *AmountPattern) Draw(rng *utils.Random, mcc string, boost float64) utils.Money {
	amount := p.Base(rng) * CategoryMultiplier(rng, mcc) * boost
	return utils.FromFloat(amount)
}
