package utils

import (
	"testing"
)

func TestMoneyCreation(t *testing.T) {
	t.Run("Cents", func(t *testing.T) {
		m := Cents(1234)
		if m.ToCents() != 1234 {
			t.Errorf("Expected 1234 cents, got %d", m.ToCents())
		}
	})

	t.Run("Dollars", func(t *testing.T) {
		m := Dollars(100)
		if m.ToCents() != 10000 {
			t.Errorf("Expected 10000 cents, got %d", m.ToCents())
		}
	})

	t.Run("FromFloat", func(t *testing.T) {
		m := FromFloat(19.99)
		if m.ToCents() != 1999 {
			t.Errorf("Expected 1999 cents, got %d", m.ToCents())
		}

		m = FromFloat(-5.75)
		if m.ToCents() != -575 {
			t.Errorf("Expected -575 cents, got %d", m.ToCents())
		}
	})

	t.Run("FromFloat rounds half up", func(t *testing.T) {
		// 29.955 * 100 = 2995.5, should round to 2996
		m := FromFloat(29.955)
		if m.ToCents() != 2996 {
			t.Errorf("Expected 2996 cents, got %d", m.ToCents())
		}
	})
}

func TestMoneyArithmetic(t *testing.T) {
	m1 := Cents(1050)
	m2 := Cents(525)

	t.Run("Add", func(t *testing.T) {
		result := m1.Add(m2)
		if result.ToCents() != 1575 {
			t.Errorf("Expected 1575 cents, got %d", result.ToCents())
		}
	})

	t.Run("Sub", func(t *testing.T) {
		result := m1.Sub(m2)
		if result.ToCents() != 525 {
			t.Errorf("Expected 525 cents, got %d", result.ToCents())
		}
	})

	t.Run("MulFloat", func(t *testing.T) {
		m := Dollars(100)
		result := m.MulFloat(0.15) // 15%
		if result.ToCents() != 1500 {
			t.Errorf("Expected 1500 cents, got %d", result.ToCents())
		}
	})

	t.Run("Percentage", func(t *testing.T) {
		m := Dollars(200)
		result := m.Percentage(10) // 10%
		if result.ToCents() != 2000 {
			t.Errorf("Expected 2000 cents, got %d", result.ToCents())
		}
	})

	t.Run("Fee and net stay exact", func(t *testing.T) {
		// gross - fee must always equal net with no float drift
		gross := Cents(8742)
		fee := gross.MulFloat(0.025)
		net := gross.Sub(fee)
		if fee.Add(net) != gross {
			t.Errorf("Fee %d + net %d != gross %d", fee.ToCents(), net.ToCents(), gross.ToCents())
		}
	})
}

func TestMoneyAbsNeg(t *testing.T) {
	m := Cents(-5000)
	if m.Abs().ToCents() != 5000 {
		t.Errorf("Expected 5000 cents, got %d", m.Abs().ToCents())
	}

	p := Cents(2999)
	if p.Neg().ToCents() != -2999 {
		t.Errorf("Expected -2999 cents, got %d", p.Neg().ToCents())
	}
	if !Cents(0).IsZero() {
		t.Error("Expected zero to be zero")
	}
}

func TestMoneyString(t *testing.T) {
	m := Cents(123456)
	str := m.String()
	if str != "1234.56" {
		t.Errorf("Expected '1234.56', got '%s'", str)
	}

	m = Cents(-5075)
	str = m.String()
	if str != "-50.75" {
		t.Errorf("Expected '-50.75', got '%s'", str)
	}
}

func TestMoneyFormat(t *testing.T) {
	m := Cents(123456789)

	t.Run("USD", func(t *testing.T) {
		str := m.Format("USD")
		if str != "$1,234,567.89" {
			t.Errorf("Expected '$1,234,567.89', got '%s'", str)
		}
	})

	t.Run("EUR", func(t *testing.T) {
		str := m.Format("EUR")
		// EUR uses . as thousands sep and , as decimal sep
		if str != "€1.234.567,89" {
			t.Errorf("Expected '€1.234.567,89', got '%s'", str)
		}
	})

	t.Run("INR", func(t *testing.T) {
		str := Cents(99900).Format("INR")
		if str != "₹999.00" {
			t.Errorf("Expected '₹999.00', got '%s'", str)
		}
	})

	t.Run("Unknown code falls back to USD", func(t *testing.T) {
		str := Cents(1000).Format("XXX")
		if str != "$10.00" {
			t.Errorf("Expected '$10.00', got '%s'", str)
		}
	})
}

func TestRandomAmount(t *testing.T) {
	rng := NewRandom(42)

	min := Dollars(10)
	max := Dollars(100)

	for i := 0; i < 1000; i++ {
		m := RandomAmount(rng, min, max)
		if m < min || m > max {
			t.Errorf("RandomAmount returned %d, expected between %d and %d", m.ToCents(), min.ToCents(), max.ToCents())
		}
	}
}
