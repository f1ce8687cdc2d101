package patterns

import (
	"testing"
	"time"

	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

func TestPickTimeWindows(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewTimeOfDayPattern(models.TimeWeights{
		Morning:   0.25,
		Afternoon: 0.25,
		Evening:   0.25,
		Night:     0.25,
	})

	// A Wednesday and a Saturday
	days := []time.Time{
		time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	}

	for _, day := range days {
		for i := 0; i < 1000; i++ {
			ts := pattern.PickTime(rng, day)
			if ts.Year() != day.Year() || ts.Month() != day.Month() || ts.Day() != day.Day() {
				t.Fatalf("PickTime moved off the day: %v", ts)
			}
			h := ts.Hour()
			if h < MorningStartHour || h > NightEndHour {
				t.Fatalf("Hour %d outside all period windows", h)
			}
			// Hours between windows don't exist; every draw must land
			// inside one of the four ranges
			inWindow := (h >= MorningStartHour && h <= MorningEndHour) ||
				(h >= AfternoonStartHour && h <= AfternoonEndHour) ||
				(h >= EveningStartHour && h <= EveningEndHour) ||
				(h >= NightStartHour && h <= NightEndHour)
			if !inWindow {
				t.Fatalf("Hour %d not in any period window", h)
			}
		}
	}
}

func TestPickTimeSingleWindow(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewTimeOfDayPattern(models.TimeWeights{Morning: 1})

	day := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC) // Wednesday
	for i := 0; i < 500; i++ {
		ts := pattern.PickTime(rng, day)
		if ts.Hour() < MorningStartHour || ts.Hour() > MorningEndHour {
			t.Fatalf("Expected morning hour, got %d", ts.Hour())
		}
	}
}

func TestWeekendShiftsLater(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewTimeOfDayPattern(models.TimeWeights{
		Morning:   0.25,
		Afternoon: 0.25,
		Evening:   0.25,
		Night:     0.25,
	})

	weekday := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)  // Wednesday
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC) // Saturday

	countMorning := func(day time.Time) int {
		n := 0
		for i := 0; i < 5000; i++ {
			ts := pattern.PickTime(rng, day)
			if ts.Hour() <= MorningEndHour {
				n++
			}
		}
		return n
	}

	weekdayMornings := countMorning(weekday)
	saturdayMornings := countMorning(saturday)

	// Morning weight is multiplied by 0.7 on weekends while evening and
	// night rise, so Saturday mornings should clearly trail Wednesday's
	if saturdayMornings >= weekdayMornings {
		t.Errorf("Expected fewer weekend mornings: weekday=%d saturday=%d", weekdayMornings, saturdayMornings)
	}
}

func TestIsWeekend(t *testing.T) {
	if IsWeekend(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)) {
		t.Error("Wednesday flagged as weekend")
	}
	if !IsWeekend(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)) {
		t.Error("Saturday not flagged as weekend")
	}
	if !IsWeekend(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Error("Sunday not flagged as weekend")
	}
}

func TestWeeklyActiveDays(t *testing.T) {
	rng := utils.NewRandom(42)

	t.Run("zero weight never active", func(t *testing.T) {
		pattern := NewWeeklyPattern(0, 0, 5)
		day := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 100; i++ {
			if pattern.IsActiveDay(rng, day) {
				t.Fatal("Zero-weight day was active")
			}
		}
	})

	t.Run("damping keeps full weight below certainty", func(t *testing.T) {
		pattern := NewWeeklyPattern(1.0, 1.0, 5)
		day := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
		active := 0
		for i := 0; i < 10000; i++ {
			if pattern.IsActiveDay(rng, day) {
				active++
			}
		}
		ratio := float64(active) / 10000
		if ratio < 0.75 || ratio > 0.85 {
			t.Errorf("Expected ~80%% active days at full weight, got %.1f%%", ratio*100)
		}
	})
}

func TestWeeklyDailyCount(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewWeeklyPattern(0.6, 0.4, 5)

	for i := 0; i < 1000; i++ {
		n := pattern.DailyCount(rng)
		if n < 1 || n > 5 {
			t.Fatalf("DailyCount returned %d, expected 1-5", n)
		}
	}
}

func TestAmountBoost(t *testing.T) {
	rng := utils.NewRandom(42)

	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		for _, day := range []time.Time{friday, saturday} {
			boost := AmountBoost(rng, day)
			if boost < WeekendBoostMin || boost >= WeekendBoostMax {
				t.Fatalf("Boost %f outside [%f, %f)", boost, WeekendBoostMin, WeekendBoostMax)
			}
		}
		for _, day := range []time.Time{monday, sunday} {
			if boost := AmountBoost(rng, day); boost != 1.0 {
				t.Fatalf("Expected no boost on %s, got %f", day.Weekday(), boost)
			}
		}
	}
}

func TestAmountPatternBase(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewAmountPattern(models.AmountProfile{
		Min:    5,
		Max:    1000,
		Mean:   50,
		StdDev: 30,
	})

	for i := 0; i < 10000; i++ {
		amount := pattern.Base(rng)
		if amount < 5 || amount > 1000 {
			t.Fatalf("Base amount %f outside [5, 1000]", amount)
		}
	}
}

func TestCategoryMultiplier(t *testing.T) {
	rng := utils.NewRandom(42)

	t.Run("hotels run high", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			m := CategoryMultiplier(rng, "7011")
			if m < 2.0 || m >= 5.0 {
				t.Fatalf("Hotel multiplier %f outside [2.0, 5.0)", m)
			}
		}
	})

	t.Run("fast food runs low", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			m := CategoryMultiplier(rng, "5814")
			if m < 0.3 || m >= 0.8 {
				t.Fatalf("Fast food multiplier %f outside [0.3, 0.8)", m)
			}
		}
	})

	t.Run("unknown category uses default", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			m := CategoryMultiplier(rng, "9999")
			if m < 0.7 || m >= 1.5 {
				t.Fatalf("Default multiplier %f outside [0.7, 1.5)", m)
			}
		}
	})
}

func TestAmountPatternDraw(t *testing.T) {
	rng := utils.NewRandom(42)
	pattern := NewAmountPattern(models.AmountProfile{
		Min:    10,
		Max:    100,
		Mean:   40,
		StdDev: 20,
	})

	for i := 0; i < 1000; i++ {
		amount := pattern.Draw(rng, "5814", 1.0)
		// Base clamps to [10, 100]; fast food multiplier is [0.3, 0.8)
		min := utils.FromFloat(10 * 0.3)
		max := utils.FromFloat(100 * 0.8)
		if amount < min || amount > max {
			t.Fatalf("Draw %v outside [%v, %v]", amount, min, max)
		}
	}
}
