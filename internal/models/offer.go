package models

import "time"

// OfferType represents the promotional mechanic of an offer
type OfferType string

const (
	OfferTypeDiscount      OfferType = "discount"
	OfferTypeCashback      OfferType = "cashback"
	OfferTypeBuyOneGetOne  OfferType = "buy_one_get_one"
	OfferTypeRewardPoints  OfferType = "reward_points"
	OfferTypeFreeDelivery  OfferType = "free_delivery"
	OfferTypeFlashSale     OfferType = "flash_sale"
	OfferTypeBundleOffer   OfferType = "bundle_offer"
	OfferTypeFirstPurchase OfferType = "first_purchase"
	OfferTypeLimitedTime   OfferType = "limited_time"
	OfferTypeClearanceSale OfferType = "clearance_sale"
)

// Offer represents a merchant promotion stored in the offers database.
// Discount fields are nil when the offer type doesn't carry them
// (BOGO and reward-point offers have neither).
type Offer struct {
	ID              string    `db:"offer_id" json:"offer_id"`
	Merchant        string    `db:"merchant" json:"merchant"`
	Category        string    `db:"category" json:"category"`
	Type            OfferType `db:"type" json:"type"`
	DiscountPercent *int      `db:"discount_percent" json:"discount_percent,omitempty"`
	DiscountValue   *int      `db:"discount_value" json:"discount_value,omitempty"`
	MinimumPurchase *int      `db:"minimum_purchase" json:"minimum_purchase,omitempty"`
	CouponCode      *string   `db:"coupon_code" json:"coupon_code,omitempty"`
	Description     string    `db:"description" json:"description"`
	TermsConditions string    `db:"terms_conditions" json:"terms_conditions"`
	ValidFrom       time.Time `db:"valid_from" json:"valid_from"`
	ValidUntil      time.Time `db:"valid_until" json:"valid_until"`
	AffiliateLink   string    `db:"affiliate_link" json:"affiliate_link"`
}

// IsActive returns true when the offer window covers the given day
func (o *Offer) IsActive(day time.Time) bool {
	return !day.Before(o.ValidFrom) && !day.After(o.ValidUntil)
}
