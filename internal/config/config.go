package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the offer data generator
type Config struct {
	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Transaction batch generation
	Generate GenerateConfig `mapstructure:"generate"`

	// Offer generation
	Offers OffersConfig `mapstructure:"offers"`

	// Customer roster generation
	Customers CustomersConfig `mapstructure:"customers"`

	// Offer targeting
	Target TargetConfig `mapstructure:"target"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	// Connection string. A bare file path for sqlite, or
	// user:password@tcp(host:port)/database for mysql.
	DSN string `mapstructure:"dsn"`

	// Driver (sqlite or mysql)
	Driver string `mapstructure:"driver"`

	// Connection pool settings
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// GenerateConfig holds transaction batch settings
type GenerateConfig struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Output directory for generated files
	OutputDir string `mapstructure:"output_dir"`

	// Output filename without extension
	Filename string `mapstructure:"filename"`

	// Volume settings
	NumCustomers int `mapstructure:"num_customers"`
	Days         int `mapstructure:"days"`

	// Export format (csv or xlsx)
	Format string `mapstructure:"format"`

	// Compress CSV output through xz
	Compress bool `mapstructure:"compress"`
	XZPreset int  `mapstructure:"xz_preset"`

	// Merchant selection policy (merchant_derived or filter_pool)
	CategoryPolicy string `mapstructure:"category_policy"`

	// Currency code stamped on transactions
	Currency string `mapstructure:"currency"`
}

// OffersConfig holds offer generation settings
type OffersConfig struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Number of offers to generate
	Count int `mapstructure:"count"`
}

// CustomersConfig holds customer roster settings
type CustomersConfig struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Number of customers to generate
	Count int `mapstructure:"count"`
}

// TargetConfig holds offer targeting settings
type TargetConfig struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Maximum offers assigned to a single customer
	MaxPerCustomer int `mapstructure:"max_per_customer"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             DBDSN,
			Driver:          DBDriver,
			MaxOpenConns:    DBMaxOpenConns,
			MaxIdleConns:    DBMaxIdleConns,
			ConnMaxLifetime: DBConnMaxLifetime,
			ConnMaxIdleTime: DBConnMaxIdleTime,
		},
		Generate: GenerateConfig{
			Seed:         0,
			OutputDir:    ".",
			Filename:     BatchFilename,
			NumCustomers: BatchCustomers,
			Days:         BatchDays,
			Format:       "csv",
			XZPreset:     6,
			Currency:     BatchCurrency,
		},
		Offers: OffersConfig{
			Seed:  0,
			Count: OfferCount,
		},
		Customers: CustomersConfig{
			Seed:  0,
			Count: BatchCustomers,
		},
		Target: TargetConfig{
			Seed:           0,
			MaxPerCustomer: MaxOffersPerCustomer,
		},
		Verbose: false,
	}
}

// Load reads configuration from viper into a Config struct
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	if c.Generate.NumCustomers <= 0 {
		errs = append(errs, "generate.num_customers must be positive")
	}
	if c.Generate.Days <= 0 {
		errs = append(errs, "generate.days must be positive")
	}
	if c.Generate.Format != "csv" && c.Generate.Format != "xlsx" {
		errs = append(errs, fmt.Sprintf("generate.format must be csv or xlsx (got %q)", c.Generate.Format))
	}
	if c.Generate.XZPreset < 0 || c.Generate.XZPreset > 9 {
		errs = append(errs, "generate.xz_preset must be between 0 and 9")
	}
	if c.Generate.CategoryPolicy != "" &&
		c.Generate.CategoryPolicy != "merchant_derived" &&
		c.Generate.CategoryPolicy != "filter_pool" {
		errs = append(errs, fmt.Sprintf("generate.category_policy must be merchant_derived or filter_pool (got %q)", c.Generate.CategoryPolicy))
	}

	if c.Offers.Count <= 0 {
		errs = append(errs, "offers.count must be positive")
	}
	if c.Customers.Count <= 0 {
		errs = append(errs, "customers.count must be positive")
	}
	if c.Target.MaxPerCustomer <= 0 {
		errs = append(errs, "target.max_per_customer must be positive")
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "mysql" {
		errs = append(errs, fmt.Sprintf("database.driver must be sqlite or mysql (got %q)", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required")
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, "database.max_open_conns must be >= 1")
	}
	if c.Database.MaxIdleConns < 0 {
		errs = append(errs, "database.max_idle_conns must be >= 0")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, "database.max_idle_conns should not exceed max_open_conns")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
