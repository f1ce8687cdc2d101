// Package database provides storage for offers, customers, and targeting.
//
// FILE: scanners.go
// PURPOSE: Row scanning helper functions for converting database rows to
// model structs.
//
// KEY FUNCTIONS:
// - scanOffer: Scans an offer from sql.Rows
// - scanOfferRow: Scans an offer from sql.Row
// - scanCustomerRow: Scans a customer row
//
// RELATED FILES:
// - queries_offer.go: Uses scanOffer, scanOfferRow
// - queries_customer.go: Uses scanCustomerRow
// - queries_targeting.go: Uses scanOffer
package database

import (
	"database/sql"

	"github.com/mchandra/offergen/internal/models"
)

func scanOffer(rows *sql.Rows) (*models.Offer, error) {
	o := &models.Offer{}

	// Nullable fields need sql.Null* types for scanning
	var (
		percent     sql.NullInt64
		value       sql.NullInt64
		minPurchase sql.NullInt64
		couponCode  sql.NullString
		offerType   string
	)

	err := rows.Scan(
		&o.ID, &o.Merchant, &o.Category, &offerType,
		&percent, &value, &minPurchase, &couponCode,
		&o.Description, &o.TermsConditions, &o.ValidFrom, &o.ValidUntil, &o.AffiliateLink,
	)
	if err != nil {
		return nil, err
	}

	o.Type = models.OfferType(offerType)
	o.DiscountPercent = nullableInt(percent)
	o.DiscountValue = nullableInt(value)
	o.MinimumPurchase = nullableInt(minPurchase)
	if couponCode.Valid {
		o.CouponCode = &couponCode.String
	}

	return o, nil
}

func scanOfferRow(row *sql.Row) (*models.Offer, error) {
	o := &models.Offer{}

	var (
		percent     sql.NullInt64
		value       sql.NullInt64
		minPurchase sql.NullInt64
		couponCode  sql.NullString
		offerType   string
	)

	err := row.Scan(
		&o.ID, &o.Merchant, &o.Category, &offerType,
		&percent, &value, &minPurchase, &couponCode,
		&o.Description, &o.TermsConditions, &o.ValidFrom, &o.ValidUntil, &o.AffiliateLink,
	)
	if err != nil {
		return nil, err
	}

	o.Type = models.OfferType(offerType)
	o.DiscountPercent = nullableInt(percent)
	o.DiscountValue = nullableInt(value)
	o.MinimumPurchase = nullableInt(minPurchase)
	if couponCode.Valid {
		o.CouponCode = &couponCode.String
	}

	return o, nil
}

func scanCustomerRow(row *sql.Row) (*models.Customer, error) {
	c := &models.Customer{}

	var mobileType string
	err := row.Scan(&c.ID, &c.Name, &c.MobileNumber, &c.Email, &mobileType, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.MobileType = models.MobileType(mobileType)

	return c, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
