// Package database provides storage for offers, customers, and targeting.
//
// FILE: queries_targeting.go
// PURPOSE: Customer-offer assignment bulk load and lookup queries.
//
// KEY FUNCTIONS:
// - ReplaceTargeting: Replaces the targeting table contents in one transaction
// - OffersForCustomer: Retrieves the offers assigned to a customer
// - CountTargeting: Row count
//
// RELATED FILES:
// - queries.go: Base Queries struct and NewQueries constructor
// - queries_offer.go: Offer lookups joined here
package database

import (
	"context"
	"fmt"

	"github.com/mchandra/offergen/internal/models"
)

// ReplaceTargeting clears the targeting table and inserts the given
// assignments in a single transaction
func (q *Queries) ReplaceTargeting(ctx context.Context, assignments []models.Targeting) error {
	tx, err := q.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM targeting`); err != nil {
		return fmt.Errorf("failed to clear targeting: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO targeting (customer_id, offer_id, assigned_at)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare targeting insert: %w", err)
	}
	defer stmt.Close()

	for i := range assignments {
		a := &assignments[i]
		if _, err := stmt.ExecContext(ctx, a.CustomerID, a.OfferID, a.AssignedAt); err != nil {
			return fmt.Errorf("failed to insert targeting %s -> %s: %w", a.CustomerID, a.OfferID, err)
		}
	}

	return tx.Commit()
}

// OffersForCustomer retrieves the offers assigned to a customer,
// ordered by offer ID
func (q *Queries) OffersForCustomer(ctx context.Context, customerID string) ([]models.Offer, error) {
	query := `
		SELECT o.offer_id, o.merchant_name, o.category, o.offer_type,
			o.discount_percentage, o.discount_value, o.minimum_purchase, o.coupon_code,
			o.description, o.terms_conditions, o.valid_from, o.valid_until, o.affiliate_link
		FROM targeting t
		JOIN offers o ON o.offer_id = t.offer_id
		WHERE t.customer_id = ?
		ORDER BY o.offer_id`

	rows, err := q.pool.QueryContext(ctx, query, customerID)
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

// CountTargeting returns the targeting row count
func (q *Queries) CountTargeting(ctx context.Context) (int64, error) {
	var count int64
	err := q.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM targeting`).Scan(&count)
	return count, err
}
