// Package database provides storage for offers, customers, and targeting.
//
// FILE: queries_offer.go
// PURPOSE: Offer bulk load and lookup queries.
//
// KEY FUNCTIONS:
// - ReplaceOffers: Replaces the offer table contents in one transaction
// - GetOffer: Retrieves an offer by ID
// - ListOffers: Retrieves offers ordered by merchant
// - OfferIDs / ActiveOfferIDs: ID listings for targeting
// - CountOffers: Row count
//
// RELATED FILES:
// - queries.go: Base Queries struct and NewQueries constructor
// - scanners.go: Row scanning utilities
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mchandra/offergen/internal/models"
)

const offerColumns = `offer_id, merchant_name, category, offer_type,
	discount_percentage, discount_value, minimum_purchase, coupon_code,
	description, terms_conditions, valid_from, valid_until, affiliate_link`

// ReplaceOffers clears the offer table and inserts the given offers in a
// single transaction. Existing targeting rows are removed first since
// they reference offers.
func (q *Queries) ReplaceOffers(ctx context.Context, offers []models.Offer) error {
	tx, err := q.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM targeting`); err != nil {
		return fmt.Errorf("failed to clear targeting: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM offers`); err != nil {
		return fmt.Errorf("failed to clear offers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO offers (`+offerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare offer insert: %w", err)
	}
	defer stmt.Close()

	for i := range offers {
		o := &offers[i]
		_, err := stmt.ExecContext(ctx,
			o.ID, o.Merchant, o.Category, string(o.Type),
			o.DiscountPercent, o.DiscountValue, o.MinimumPurchase, o.CouponCode,
			o.Description, o.TermsConditions, o.ValidFrom, o.ValidUntil, o.AffiliateLink,
		)
		if err != nil {
			return fmt.Errorf("failed to insert offer %s: %w", o.ID, err)
		}
	}

	return tx.Commit()
}

// GetOffer retrieves an offer by its ID
func (q *Queries) GetOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE offer_id = ?`
	return scanOfferRow(q.pool.QueryRowContext(ctx, query, offerID))
}

// ListOffers retrieves up to limit offers ordered by merchant name.
// A limit of 0 returns everything.
func (q *Queries) ListOffers(ctx context.Context, limit int) ([]models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers ORDER BY merchant_name, offer_id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := q.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

// OfferIDs retrieves all offer IDs
func (q *Queries) OfferIDs(ctx context.Context) ([]string, error) {
	return q.stringColumn(ctx, `SELECT offer_id FROM offers ORDER BY offer_id`)
}

// ActiveOfferIDs retrieves IDs of offers whose validity window contains
// the given day
func (q *Queries) ActiveOfferIDs(ctx context.Context, day time.Time) ([]string, error) {
	query := `
		SELECT offer_id FROM offers
		WHERE valid_from <= ? AND valid_until >= ?
		ORDER BY offer_id`

	rows, err := q.pool.QueryContext(ctx, query, day, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountOffers returns the offer row count
func (q *Queries) CountOffers(ctx context.Context) (int64, error) {
	var count int64
	err := q.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers`).Scan(&count)
	return count, err
}

// stringColumn runs a single-column string query
func (q *Queries) stringColumn(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := q.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
