package models

import "github.com/mchandra/offergen/internal/utils"

// TimeWeights holds a customer's preference for each part of the day.
// Weights are normalized to sum to 1.
type TimeWeights struct {
	Morning   float64
	Afternoon float64
	Evening   float64
	Night     float64
}

// AmountProfile describes a customer's typical transaction amounts.
// Draws come from a normal distribution around Mean, clamped to [Min, Max].
type AmountProfile struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// RecurringCharge is a monthly subscription anchored to a day of month.
// The amount is fixed: every occurrence bills exactly Amount.
type RecurringCharge struct {
	Merchant   string
	MCC        string
	Amount     utils.Money
	DayOfMonth int
}

// SpendingProfile captures a customer's spending habits. CategoryCodes and
// CategoryWeights are parallel slices: CategoryWeights[i] is the preference
// weight for CategoryCodes[i]. WeekdayWeight + WeekendWeight == 1.
type SpendingProfile struct {
	CategoryCodes   []string
	CategoryWeights []float64
	WeekdayWeight   float64
	WeekendWeight   float64
	TimeOfDay       TimeWeights
	Amounts         AmountProfile
	Recurring       []RecurringCharge
}
