package generator

import (
	"time"

	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Card expiration window in days from now
const (
	cardExpiryMinDays = 30
	cardExpiryMaxDays = 1825
)

var cardBrands = []models.CardBrand{
	models.CardBrandVisa,
	models.CardBrandMasterCard,
	models.CardBrandAmex,
	models.CardBrandDiscover,
}

// GenerateCard produces a card with a brand-correct number prefix, a
// masked PAN, and an expiration one month to five years out.
func GenerateCard(rng *utils.Random, now time.Time) models.Card {
	brand := cardBrands[rng.IntN(len(cardBrands))]

	var number string
	switch brand {
	case models.CardBrandVisa:
		number = "4" + rng.NumericString(15)
	case models.CardBrandMasterCard:
		number = "5" + string(rune('0'+rng.IntRange(1, 5))) + rng.NumericString(14)
	case models.CardBrandAmex:
		number = "3" + rng.PickString([]string{"4", "7"}) + rng.NumericString(13)
	default: // Discover
		number = "6" + rng.NumericString(15)
	}

	masked := number[0:4] + " XXXX XXXX " + number[len(number)-4:]

	expiry := now.AddDate(0, 0, rng.IntRange(cardExpiryMinDays, cardExpiryMaxDays))

	return models.Card{
		Brand:        brand,
		MaskedNumber: masked,
		Expiration:   expiry.Format("01/06"),
	}
}
