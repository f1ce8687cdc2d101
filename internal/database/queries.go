// Package database provides storage for offers, customers, and targeting.
//
// FILE: queries.go
// PURPOSE: Base Queries struct, constructor, and schema setup. This is the
// entry point for all database operations.
//
// KEY TYPES:
// - Queries: Main struct holding database pool connection
//
// RELATED FILES:
// - queries_offer.go: Offer load and lookup
// - queries_customer.go: Customer roster load and lookup
// - queries_targeting.go: Customer-offer assignment load and lookup
// - scanners.go: Row scanning helper functions
package database

import (
	"context"
	"fmt"
	"strings"
)

// Queries provides database operations for the offer store
type Queries struct {
	pool *Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *Pool) *Queries {
	return &Queries{pool: pool}
}

// EnsureSchema creates the tables and indexes if they don't exist
func (q *Queries) EnsureSchema(ctx context.Context) error {
	schema, err := Schema(SchemaFull)
	if err != nil {
		return err
	}

	// Execute statement by statement; the MySQL driver rejects
	// multi-statement strings unless multiStatements is enabled
	for _, stmt := range splitStatements(schema) {
		if _, err := q.pool.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// splitStatements breaks a schema file into individual statements.
// The schema contains no string literals with semicolons, so a plain
// split is safe.
func splitStatements(schema string) []string {
	var statements []string
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
