// Package database provides storage for offers, customers, and targeting.
//
// FILE: queries_customer.go
// PURPOSE: Customer roster bulk load and lookup queries.
//
// KEY FUNCTIONS:
// - ReplaceCustomers: Replaces the customer table contents in one transaction
// - GetCustomerByID: Retrieves customer by ID
// - CustomerIDs: ID listing for targeting
// - CountCustomers: Row count
//
// RELATED FILES:
// - queries.go: Base Queries struct and NewQueries constructor
// - scanners.go: Row scanning utilities
package database

import (
	"context"
	"fmt"

	"github.com/mchandra/offergen/internal/models"
)

const customerColumns = `customer_id, name, mobile_number, email, mobile_type, created_at`

// ReplaceCustomers clears the customer table and inserts the given roster
// in a single transaction. Existing targeting rows are removed first
// since they reference customers.
func (q *Queries) ReplaceCustomers(ctx context.Context, customers []models.Customer) error {
	tx, err := q.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM targeting`); err != nil {
		return fmt.Errorf("failed to clear targeting: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (`+customerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare customer insert: %w", err)
	}
	defer stmt.Close()

	for i := range customers {
		c := &customers[i]
		_, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.MobileNumber, c.Email, string(c.MobileType), c.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// GetCustomerByID retrieves a customer by their ID
func (q *Queries) GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = ?`
	return scanCustomerRow(q.pool.QueryRowContext(ctx, query, customerID))
}

// CustomerIDs retrieves all customer IDs
func (q *Queries) CustomerIDs(ctx context.Context) ([]string, error) {
	return q.stringColumn(ctx, `SELECT customer_id FROM customers ORDER BY customer_id`)
}

// CountCustomers returns the customer row count
func (q *Queries) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := q.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	return count, err
}
