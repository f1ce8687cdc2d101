package generator

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

func TestRosterGenerate(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gen := NewRosterGenerator(catalog)
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	customers := gen.Generate(utils.NewRandom(42), 500, now)

	if len(customers) != 500 {
		t.Fatalf("Expected 500 customers, got %d", len(customers))
	}

	emailPattern := regexp.MustCompile(`^[a-z0-9.]+[0-9]{1,2}@[a-z.]+$`)
	mobilePattern := regexp.MustCompile(`^\+1\d{10}$`)

	iosCount := 0
	for i, c := range customers {
		expectedID := fmt.Sprintf("CUST%06d", i+1)
		if c.ID != expectedID {
			t.Fatalf("Customer %d has ID %q, expected %q", i, c.ID, expectedID)
		}
		if c.Name == "" || c.Name[0] == ' ' {
			t.Fatalf("Bad customer name %q", c.Name)
		}
		if !emailPattern.MatchString(c.Email) {
			t.Errorf("Bad email %q", c.Email)
		}
		if !mobilePattern.MatchString(c.MobileNumber) {
			t.Errorf("Bad mobile number %q", c.MobileNumber)
		}
		if c.MobileType != models.MobileTypeIOS && c.MobileType != models.MobileTypeAndroid {
			t.Errorf("Unknown mobile type %q", c.MobileType)
		}
		if !c.CreatedAt.Equal(now) {
			t.Errorf("CreatedAt %v, expected %v", c.CreatedAt, now)
		}
		if c.MobileType == models.MobileTypeIOS {
			iosCount++
		}
	}

	ratio := float64(iosCount) / float64(len(customers))
	if ratio < 0.35 || ratio > 0.55 {
		t.Errorf("iOS share %.2f far from 0.45", ratio)
	}
}

func TestRosterDeterminism(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gen := NewRosterGenerator(catalog)
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	a := gen.Generate(utils.NewRandom(7), 50, now)
	b := gen.Generate(utils.NewRandom(7), 50, now)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Customer %d differs under the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}
