// Package config contains compile-time defaults for the offer data
// generator. Edit these values and recompile to tune behavior.
package config

import "time"

// Transaction batch generation
const (
	// BatchCustomers is the default customer count for a transaction batch
	BatchCustomers = 1003

	// BatchDays is the default length of generated history in days
	BatchDays = 180

	// BatchFilename is the default output filename (without extension)
	BatchFilename = "customer_transaction_history"

	// BatchCurrency is the currency stamped on generated transactions
	BatchCurrency = "USD"
)

// Offer and targeting generation
const (
	// OfferCount is the default number of offers to generate
	OfferCount = 500

	// MaxOffersPerCustomer caps the offers targeted at a single customer
	MaxOffersPerCustomer = 3
)

// =============================================================================
// DATABASE DEFAULTS
// =============================================================================

const (
	// DBDriver is the database driver to use (sqlite or mysql)
	DBDriver = "sqlite"

	// DBDSN is the default SQLite database file
	DBDSN = "offers.db"

	// DBMaxOpenConns is maximum open connections in the pool
	DBMaxOpenConns = 10

	// DBMaxIdleConns is maximum idle connections in the pool
	DBMaxIdleConns = 5

	// DBConnMaxLifetime is how long a connection can be reused
	DBConnMaxLifetime = 5 * time.Minute

	// DBConnMaxIdleTime is how long an idle connection is kept
	DBConnMaxIdleTime = 1 * time.Minute
)
