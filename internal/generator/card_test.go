package generator

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

func TestGenerateCard(t *testing.T) {
	rng := utils.NewRandom(42)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	maskPattern := regexp.MustCompile(`^\d{4} XXXX XXXX \d{4}$`)
	expiryPattern := regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

	seen := make(map[models.CardBrand]bool)
	for i := 0; i < 1000; i++ {
		card := GenerateCard(rng, now)
		seen[card.Brand] = true

		if !maskPattern.MatchString(card.MaskedNumber) {
			t.Fatalf("Bad mask format: %q", card.MaskedNumber)
		}
		if !expiryPattern.MatchString(card.Expiration) {
			t.Fatalf("Bad expiration format: %q", card.Expiration)
		}

		// Brand determines the leading digits
		switch card.Brand {
		case models.CardBrandVisa:
			if card.MaskedNumber[0] != '4' {
				t.Fatalf("Visa number starts with %c", card.MaskedNumber[0])
			}
		case models.CardBrandMasterCard:
			if card.MaskedNumber[0] != '5' || card.MaskedNumber[1] < '1' || card.MaskedNumber[1] > '5' {
				t.Fatalf("Bad MasterCard prefix: %s", card.MaskedNumber[:2])
			}
		case models.CardBrandAmex:
			if card.MaskedNumber[0] != '3' || (card.MaskedNumber[1] != '4' && card.MaskedNumber[1] != '7') {
				t.Fatalf("Bad Amex prefix: %s", card.MaskedNumber[:2])
			}
		case models.CardBrandDiscover:
			if card.MaskedNumber[0] != '6' {
				t.Fatalf("Discover number starts with %c", card.MaskedNumber[0])
			}
		}
	}

	if len(seen) != 4 {
		t.Errorf("Expected all 4 brands over 1000 draws, saw %d", len(seen))
	}
}

func TestCardExpiryInFuture(t *testing.T) {
	rng := utils.NewRandom(42)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		card := GenerateCard(rng, now)
		parts := strings.Split(card.Expiration, "/")
		if len(parts) != 2 {
			t.Fatalf("Bad expiration: %q", card.Expiration)
		}
		expiry, err := time.Parse("01/06", card.Expiration)
		if err != nil {
			t.Fatalf("Unparseable expiration %q: %v", card.Expiration, err)
		}
		// At least ~30 days out, at most 5 years
		if expiry.Before(now.AddDate(0, 0, 28)) {
			t.Fatalf("Expiration %q too soon", card.Expiration)
		}
		if expiry.After(now.AddDate(5, 1, 0)) {
			t.Fatalf("Expiration %q too far out", card.Expiration)
		}
	}
}
