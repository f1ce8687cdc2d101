package data

import (
	"testing"
)

func TestCatalogLoad(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	t.Run("MCC codes", func(t *testing.T) {
		if len(catalog.MCC.Codes) != 27 {
			t.Errorf("Expected 27 MCC codes, got %d", len(catalog.MCC.Codes))
		}
		label, ok := catalog.MCCLabel("5411")
		if !ok || label != "Grocery Stores" {
			t.Errorf("Expected 5411 = Grocery Stores, got %q (ok=%v)", label, ok)
		}
		if _, ok := catalog.MCCLabel("0000"); ok {
			t.Error("Expected unknown code to miss")
		}
	})

	t.Run("Merchants", func(t *testing.T) {
		if len(catalog.MerchantNames()) < 80 {
			t.Errorf("Expected at least 80 merchants, got %d", len(catalog.MerchantNames()))
		}
		pool, ok := catalog.MerchantPool("5542")
		if !ok || len(pool) == 0 {
			t.Fatal("Expected a gas station pool for 5542")
		}
		for _, m := range pool {
			if catalog.AssignMCC(m) != "5542" {
				t.Errorf("Pool merchant %q does not resolve to 5542", m)
			}
		}
	})

	t.Run("Subscriptions", func(t *testing.T) {
		if len(catalog.SubscriptionMerchants()) != 10 {
			t.Errorf("Expected 10 subscription merchants, got %d", len(catalog.SubscriptionMerchants()))
		}
	})

	t.Run("Offer categories", func(t *testing.T) {
		categories := catalog.OfferCategories()
		if len(categories) != 10 {
			t.Fatalf("Expected 10 offer categories, got %d", len(categories))
		}
		for _, category := range categories {
			merchants, ok := catalog.OfferMerchants(category)
			if !ok {
				t.Errorf("Category %q has no merchants", category)
				continue
			}
			if len(merchants) != 10 {
				t.Errorf("Category %q has %d merchants, expected 10", category, len(merchants))
			}
		}
		if len(catalog.OfferTypes()) != 10 {
			t.Errorf("Expected 10 offer types, got %d", len(catalog.OfferTypes()))
		}
	})

	t.Run("People", func(t *testing.T) {
		if len(catalog.FirstNames()) == 0 || len(catalog.LastNames()) == 0 {
			t.Error("Expected non-empty name pools")
		}
		if len(catalog.EmailDomains()) != 10 {
			t.Errorf("Expected 10 email domains, got %d", len(catalog.EmailDomains()))
		}
	})
}

func TestAssignMCC(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cases := []struct {
		merchant string
		want     string
	}{
		{"Walmart", "5311"},
		{"Target", "5311"},
		{"Shell", "5542"},
		{"Chevron", "5542"},
		{"McDonald's", "5814"},
		{"Starbucks", "5814"},
		{"Olive Garden", "5812"},
		{"CVS", "5912"},
		{"Netflix", "4816"},
		{"Planet Fitness", "7999"},
		{"Uber", "4121"},
		{"Hilton", "7011"},
		{"Delta Airlines", "4111"},
		{"Whole Foods", "5411"},
		{"AT&T", "4899"},
		{"Ulta Beauty", "7230"},
		{"Insurance", "6300"},
		{"Unknown Store XYZ", "5999"},
		{"", "5999"},
	}

	for _, tc := range cases {
		t.Run(tc.merchant, func(t *testing.T) {
			got := catalog.AssignMCC(tc.merchant)
			if got != tc.want {
				t.Errorf("AssignMCC(%q) = %q, want %q", tc.merchant, got, tc.want)
			}
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		if catalog.AssignMCC("WALMART SUPERCENTER") != "5311" {
			t.Error("Expected uppercase merchant to match")
		}
	})

	t.Run("first keyword wins", func(t *testing.T) {
		// "Whole Foods Market" matches both "food" and "market"; the
		// earlier table entry decides (both map to 5411 here, but the
		// scan must stop at the first hit)
		if catalog.AssignMCC("Whole Foods Market") != "5411" {
			t.Error("Expected grocery assignment")
		}
	})
}
