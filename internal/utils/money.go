package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Money represents a monetary value in the smallest currency unit (cents/paise).
// Using int64 keeps fee and net-amount arithmetic exact; float rounding only
// happens once, at the conversion boundary.
type Money int64

// Currency represents a currency with its formatting rules
type Currency struct {
	Code          string // ISO 4217 code (e.g., "USD")
	Symbol        string // Display symbol (e.g., "$")
	SymbolFirst   bool   // True if symbol comes before amount
	DecimalPlaces int    // Usually 2
	ThousandsSep  string // Thousands separator
	DecimalSep    string // Decimal separator
}

// Currencies covers the codes the generators emit
var Currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"EUR": {Code: "EUR", Symbol: "€", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ","},
	"GBP": {Code: "GBP", Symbol: "£", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"INR": {Code: "INR", Symbol: "₹", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"CAD": {Code: "CAD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"AUD": {Code: "AUD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"SGD": {Code: "SGD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"AED": {Code: "AED", Symbol: "AED", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
}

// DefaultCurrency is used when a currency code is not found
var DefaultCurrency = Currency{Code: "USD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."}

// Cents creates a Money value from cents/minor units only
func Cents(cents int64) Money {
	return Money(cents)
}

// Dollars creates a Money value from whole dollars/major units
func Dollars(dollars int64) Money {
	return Money(dollars * 100)
}

// FromFloat creates a Money value from a float64 (use with caution)
// This rounds to the nearest cent
func FromFloat(amount float64) Money {
	if amount >= 0 {
		return Money(amount*100 + 0.5)
	}
	return Money(amount*100 - 0.5)
}

// ToCents returns the value in cents (the underlying representation)
func (m Money) ToCents() int64 {
	return int64(m)
}

// ToDollars returns the value as a float64 (for display purposes only)
func (m Money) ToDollars() float64 {
	return float64(m) / 100
}

// Add returns the sum of two Money values
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two Money values
func (m Money) Sub(other Money) Money {
	return m - other
}

// MulFloat multiplies by a float and rounds to nearest cent
func (m Money) MulFloat(f float64) Money {
	result := float64(m) * f
	if result >= 0 {
		return Money(result + 0.5)
	}
	return Money(result - 0.5)
}

// Abs returns the absolute value
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Neg returns the negated value
func (m Money) Neg() Money {
	return -m
}

// IsZero returns true if the value is zero
func (m Money) IsZero() bool {
	return m == 0
}

// String returns a simple string representation (e.g., "123.45")
func (m Money) String() string {
	negative := m < 0
	if negative {
		m = -m
	}
	dollars := int64(m) / 100
	cents := int64(m) % 100

	result := fmt.Sprintf("%d.%02d", dollars, cents)
	if negative {
		result = "-" + result
	}
	return result
}

// Format formats the money value with the given currency
func (m Money) Format(currencyCode string) string {
	currency, ok := Currencies[currencyCode]
	if !ok {
		currency = DefaultCurrency
	}

	negative := m < 0
	if negative {
		m = -m
	}

	multiplier := int64(1)
	for i := 0; i < currency.DecimalPlaces; i++ {
		multiplier *= 10
	}

	whole := int64(m) / multiplier
	frac := int64(m) % multiplier

	wholeStr := formatWithSeparator(whole, currency.ThousandsSep)

	var result string
	if currency.DecimalPlaces > 0 {
		fracStr := fmt.Sprintf("%0*d", currency.DecimalPlaces, frac)
		result = wholeStr + currency.DecimalSep + fracStr
	} else {
		result = wholeStr
	}

	if currency.SymbolFirst {
		result = currency.Symbol + result
	} else {
		result = result + " " + currency.Symbol
	}

	if negative {
		result = "-" + result
	}

	return result
}

// formatWithSeparator adds thousands separators to a number
func formatWithSeparator(n int64, sep string) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 || sep == "" {
		return str
	}

	var result strings.Builder
	startOffset := len(str) % 3
	if startOffset == 0 {
		startOffset = 3
	}

	result.WriteString(str[:startOffset])
	for i := startOffset; i < len(str); i += 3 {
		result.WriteString(sep)
		result.WriteString(str[i : i+3])
	}

	return result.String()
}

// Percentage calculates a percentage of the money value
// e.g., m.Percentage(15) returns 15% of m
func (m Money) Percentage(percent float64) Money {
	return m.MulFloat(percent / 100)
}

// RandomAmount generates a random money amount in the given range using the provided RNG
func RandomAmount(rng *Random, min, max Money) Money {
	if min >= max {
		return min
	}
	return Money(rng.Int64Range(int64(min), int64(max)))
}
