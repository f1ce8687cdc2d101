package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// CouponCodeProbability is the share of offers that carry a coupon code
const CouponCodeProbability = 0.7

// OfferGenerator produces merchant promotions across the offer catalog's
// categories. Discount shape depends on the offer type: percentage
// offers, fixed-value cashbacks, minimum-purchase gates, or none at all
// for BOGO and reward-point offers.
type OfferGenerator struct {
	catalog *data.Catalog
}

// NewOfferGenerator creates an offer generator backed by the reference catalog
func NewOfferGenerator(catalog *data.Catalog) *OfferGenerator {
	return &OfferGenerator{catalog: catalog}
}

// Generate produces count offers valid around the given day
func (g *OfferGenerator) Generate(rng *utils.Random, count int, today time.Time) []models.Offer {
	offers := make([]models.Offer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, g.generateOne(rng, today))
	}
	return offers
}

func (g *OfferGenerator) generateOne(rng *utils.Random, today time.Time) models.Offer {
	category := rng.PickString(g.catalog.OfferCategories())
	merchants, _ := g.catalog.OfferMerchants(category)
	merchant := rng.PickString(merchants)

	// Some offers started in the past, some start in the future
	daysToAdd := rng.IntRange(-15, 90)
	fromOffset := daysToAdd - rng.IntRange(5, 30)
	if fromOffset < -30 {
		fromOffset = -30
	}
	validFrom := today.AddDate(0, 0, fromOffset)
	validUntil := today.AddDate(0, 0, daysToAdd+rng.IntRange(15, 120))

	shortID := strings.ToUpper(randomUUID(rng)[:8])
	offerType := models.OfferType(rng.PickString(g.catalog.OfferTypes()))

	discountPercent, discountValue, minPurchase := g.discountShape(rng, offerType)

	var couponCode *string
	if rng.Probability(CouponCodeProbability) {
		code := g.couponCode(rng, today)
		couponCode = &code
	}

	prefix := merchant
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	offerID := strings.ToUpper(prefix) + shortID

	return models.Offer{
		ID:              offerID,
		Merchant:        merchant,
		Category:        category,
		Type:            offerType,
		DiscountPercent: discountPercent,
		DiscountValue:   discountValue,
		MinimumPurchase: minPurchase,
		CouponCode:      couponCode,
		Description:     g.description(rng, merchant, category, offerType, discountPercent, discountValue, minPurchase),
		TermsConditions: g.terms(rng, offerType, minPurchase, validUntil),
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		AffiliateLink:   affiliateLink(merchant, offerID),
	}
}

// discountShape draws the discount fields appropriate to the offer type.
// BOGO and reward-point offers carry none.
func (g *OfferGenerator) discountShape(rng *utils.Random, offerType models.OfferType) (percent, value, minPurchase *int) {
	switch offerType {
	case models.OfferTypeDiscount, models.OfferTypeFlashSale, models.OfferTypeClearanceSale:
		percent = pickIntPtr(rng, []int{10, 15, 20, 25, 30, 40, 50, 60, 70})
		if rng.Probability(0.7) {
			minPurchase = pickIntPtr(rng, []int{499, 999, 1499, 1999, 2499, 2999, 4999})
		}

	case models.OfferTypeCashback:
		if rng.Probability(0.6) {
			percent = pickIntPtr(rng, []int{5, 10, 15, 20, 25})
		} else {
			value = pickIntPtr(rng, []int{50, 100, 150, 200, 250, 300, 500})
		}
		minPurchase = pickIntPtr(rng, []int{499, 999, 1499, 1999, 2499})

	case models.OfferTypeFreeDelivery, models.OfferTypeFirstPurchase:
		if rng.Probability(0.8) {
			minPurchase = pickIntPtr(rng, []int{299, 499, 699, 999, 1499})
		}
		if offerType == models.OfferTypeFirstPurchase {
			if rng.Probability(0.5) {
				percent = pickIntPtr(rng, []int{10, 15, 20, 25, 30})
			} else {
				value = pickIntPtr(rng, []int{100, 150, 200, 250, 300})
			}
		}

	case models.OfferTypeBundleOffer:
		if rng.Probability(0.6) {
			percent = pickIntPtr(rng, []int{5, 10, 15, 20, 25, 30})
		}
		minPurchase = pickIntPtr(rng, []int{999, 1499, 1999, 2499, 2999})
	}

	return percent, value, minPurchase
}

func pickIntPtr(rng *utils.Random, choices []int) *int {
	v := choices[rng.IntN(len(choices))]
	return &v
}

// couponCode generates codes in three shapes: merchant-style words with
// a round number, discount-indicating codes, or season-and-year codes
func (g *OfferGenerator) couponCode(rng *utils.Random, today time.Time) string {
	prefix := rng.PickString(g.catalog.Offers.CouponPrefixes)

	if rng.Probability(0.3) {
		word := rng.PickString(g.catalog.Offers.CouponWords)
		number := rng.IntRange(10, 50) * 5
		return fmt.Sprintf("%s%s%d", prefix, word, number)
	}
	if rng.Probability(0.7) {
		discount := rng.PickInt([]int{10, 15, 20, 25, 30, 40, 50})
		if rng.Probability(0.5) {
			return fmt.Sprintf("%s%d", prefix, discount)
		}
		return fmt.Sprintf("%s%dOFF", prefix, discount)
	}

	season := rng.PickString(g.catalog.Offers.CouponSeasons)
	year := rng.IntRange(today.Year()-1, today.Year()+1)
	return fmt.Sprintf("%s%d", season, year)
}

// description builds offer copy matching the promotional mechanic
func (g *OfferGenerator) description(rng *utils.Random, merchant, category string, offerType models.OfferType, percent, value, minPurchase *int) string {
	switch offerType {
	case models.OfferTypeDiscount:
		desc := fmt.Sprintf("Get %d%% off on %s at %s", deref(percent), category, merchant)
		if minPurchase != nil {
			desc += fmt.Sprintf(" on minimum purchase of ₹%d", *minPurchase)
		}
		return desc

	case models.OfferTypeCashback:
		var desc string
		if value != nil {
			desc = fmt.Sprintf("Get ₹%d cashback on your purchase at %s", *value, merchant)
		} else {
			desc = fmt.Sprintf("Get %d%% cashback on your purchase at %s", deref(percent), merchant)
		}
		if minPurchase != nil {
			desc += fmt.Sprintf(" with minimum spend of ₹%d", *minPurchase)
		}
		return desc

	case models.OfferTypeBuyOneGetOne:
		return fmt.Sprintf("Buy 1 Get 1 Free on select %s at %s", category, merchant)

	case models.OfferTypeRewardPoints:
		return fmt.Sprintf("Earn %dX reward points on your %s purchase", rng.IntRange(2, 10), merchant)

	case models.OfferTypeFreeDelivery:
		desc := "Free delivery on all orders"
		if minPurchase != nil {
			desc += fmt.Sprintf(" above ₹%d", *minPurchase)
		}
		return desc + fmt.Sprintf(" at %s", merchant)

	case models.OfferTypeFlashSale:
		return fmt.Sprintf("%d Hour Flash Sale! Up to %d%% off on %s at %s",
			rng.IntRange(2, 12), rng.IntRange(30, 80), category, merchant)

	case models.OfferTypeBundleOffer:
		return fmt.Sprintf("Special bundle offer on %s at %s. Buy more save more!", category, merchant)

	case models.OfferTypeFirstPurchase:
		var desc string
		if percent != nil {
			desc = fmt.Sprintf("%d%% off on your first purchase at %s", *percent, merchant)
		} else {
			desc = fmt.Sprintf("₹%d off on your first purchase at %s", deref(value), merchant)
		}
		if minPurchase != nil {
			desc += fmt.Sprintf(" (Min. order: ₹%d)", *minPurchase)
		}
		return desc

	case models.OfferTypeLimitedTime:
		return fmt.Sprintf("Limited time offer! Save big on %s at %s", category, merchant)

	case models.OfferTypeClearanceSale:
		return fmt.Sprintf("Clearance Sale! Up to %d%% off on %s at %s",
			rng.IntRange(40, 90), category, merchant)
	}

	return fmt.Sprintf("Special offer at %s", merchant)
}

// terms builds the conditions block: common clauses, offer-specific
// clauses, then a few randomized extras
func (g *OfferGenerator) terms(rng *utils.Random, offerType models.OfferType, minPurchase *int, validUntil time.Time) string {
	terms := []string{"Offer cannot be combined with any other offer or promotion."}

	terms = append(terms, fmt.Sprintf("Valid until %s.", validUntil.Format("02 Jan 2006")))

	if minPurchase != nil {
		terms = append(terms, fmt.Sprintf("Minimum purchase of ₹%d required.", *minPurchase))
	}

	switch offerType {
	case models.OfferTypeDiscount:
		terms = append(terms, "Discount applicable on selected items only.")
		if rng.Probability(0.3) {
			terms = append(terms, "Maximum discount of ₹2000 per order.")
		}
	case models.OfferTypeCashback:
		terms = append(terms, fmt.Sprintf("Cashback will be credited within %d days of purchase.", rng.IntRange(1, 7)))
		terms = append(terms, fmt.Sprintf("Maximum cashback of ₹%d per transaction.", rng.PickInt([]int{500, 1000, 1500, 2000})))
	case models.OfferTypeBuyOneGetOne:
		terms = append(terms, "Offer valid on selected items only.")
		terms = append(terms, "Free item must be of equal or lesser value than the purchased item.")
	case models.OfferTypeRewardPoints:
		terms = append(terms, fmt.Sprintf("Points validity: %d days from date of credit.", rng.IntRange(30, 90)))
		terms = append(terms, "Points cannot be transferred or exchanged for cash.")
	case models.OfferTypeFreeDelivery:
		terms = append(terms, "Valid for standard delivery only.")
		terms = append(terms, "Not applicable for express or same-day delivery.")
	}

	if rng.Probability(0.3) {
		terms = append(terms, "Not valid on already discounted items.")
	}
	if rng.Probability(0.2) {
		terms = append(terms, "Limited to one use per customer.")
	}
	if rng.Probability(0.15) {
		terms = append(terms, "Valid for online purchases only.")
	}

	return strings.Join(terms, "\n")
}

// affiliateLink builds the tracking URL from the merchant slug
func affiliateLink(merchant, offerID string) string {
	slug := strings.ToLower(merchant)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "'", "")
	return fmt.Sprintf("https://%s.affiliate.com/offers/%s", slug, offerID)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
