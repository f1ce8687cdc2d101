package generator

import (
	"math"
	"testing"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/utils"
)

func TestProfileWeights(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	builder := NewProfileBuilder(catalog)
	rng := utils.NewRandom(42)

	for i := 0; i < 100; i++ {
		profile := builder.Build(rng)

		t.Run("category weights normalized", func(t *testing.T) {
			if len(profile.CategoryCodes) != len(profile.CategoryWeights) {
				t.Fatalf("Codes and weights out of sync: %d vs %d",
					len(profile.CategoryCodes), len(profile.CategoryWeights))
			}
			var sum float64
			for _, w := range profile.CategoryWeights {
				if w < 0 {
					t.Fatalf("Negative weight %f", w)
				}
				sum += w
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("Weights sum to %f, expected 1", sum)
			}
		})

		t.Run("day split", func(t *testing.T) {
			if profile.WeekdayWeight < 0.5 || profile.WeekdayWeight >= 0.7 {
				t.Errorf("Weekday weight %f outside [0.5, 0.7)", profile.WeekdayWeight)
			}
			if math.Abs(profile.WeekdayWeight+profile.WeekendWeight-1) > 1e-9 {
				t.Errorf("Day weights sum to %f", profile.WeekdayWeight+profile.WeekendWeight)
			}
		})

		t.Run("time weights normalized", func(t *testing.T) {
			tw := profile.TimeOfDay
			sum := tw.Morning + tw.Afternoon + tw.Evening + tw.Night
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("Time weights sum to %f", sum)
			}
		})

		t.Run("amount profile", func(t *testing.T) {
			a := profile.Amounts
			if a.Min < 1 || a.Min >= 10 {
				t.Errorf("Min %f outside [1, 10)", a.Min)
			}
			if a.Max < 500 || a.Max >= 2000 {
				t.Errorf("Max %f outside [500, 2000)", a.Max)
			}
			if a.Mean < 20 || a.Mean >= 100 {
				t.Errorf("Mean %f outside [20, 100)", a.Mean)
			}
			if a.StdDev < 10 || a.StdDev >= 50 {
				t.Errorf("StdDev %f outside [10, 50)", a.StdDev)
			}
		})

		t.Run("recurring charges", func(t *testing.T) {
			if len(profile.Recurring) > RecurringChargesMax {
				t.Fatalf("Too many recurring charges: %d", len(profile.Recurring))
			}
			for _, charge := range profile.Recurring {
				if charge.DayOfMonth < 1 || charge.DayOfMonth > 28 {
					t.Errorf("Day of month %d outside [1, 28]", charge.DayOfMonth)
				}
				if charge.Amount < utils.Dollars(5) || charge.Amount > utils.Dollars(100) {
					t.Errorf("Recurring amount %v outside [5, 100]", charge.Amount)
				}
				if charge.MCC != catalog.AssignMCC(charge.Merchant) {
					t.Errorf("Recurring MCC %s doesn't match merchant %s", charge.MCC, charge.Merchant)
				}
			}
		})
	}
}

func TestProfileRecurringShare(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	builder := NewProfileBuilder(catalog)
	rng := utils.NewRandom(42)

	withRecurring := 0
	iterations := 2000
	for i := 0; i < iterations; i++ {
		if len(builder.Build(rng).Recurring) > 0 {
			withRecurring++
		}
	}

	ratio := float64(withRecurring) / float64(iterations)
	if ratio < 0.75 || ratio > 0.85 {
		t.Errorf("Expected ~80%% of profiles with recurring charges, got %.1f%%", ratio*100)
	}
}

func TestProfileDeterminism(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	builder := NewProfileBuilder(catalog)
	p1 := builder.Build(utils.NewRandom(7))
	p2 := builder.Build(utils.NewRandom(7))

	if p1.WeekdayWeight != p2.WeekdayWeight {
		t.Error("Weekday weights differ under the same seed")
	}
	if p1.Amounts != p2.Amounts {
		t.Error("Amount profiles differ under the same seed")
	}
	if len(p1.Recurring) != len(p2.Recurring) {
		t.Fatal("Recurring counts differ under the same seed")
	}
	for i := range p1.Recurring {
		if p1.Recurring[i] != p2.Recurring[i] {
			t.Errorf("Recurring charge %d differs under the same seed", i)
		}
	}
	for i := range p1.CategoryWeights {
		if p1.CategoryWeights[i] != p2.CategoryWeights[i] {
			t.Fatalf("Category weight %d differs under the same seed", i)
		}
	}
}
