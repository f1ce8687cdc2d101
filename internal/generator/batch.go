package generator

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Defaults for the transaction batch
const (
	DefaultCustomers = 1003
	DefaultDays      = 180
	DefaultFilename  = "customer_transaction_history"
)

// TransactionHeaders is the CSV column order for transaction exports
var TransactionHeaders = []string{
	"transaction_id",
	"customer_id",
	"transaction_date",
	"transaction_time",
	"settlement_date",
	"card_type",
	"payment_method",
	"transaction_type",
	"transaction_status",
	"authorization_code",
	"merchant_category_code",
	"transaction_amount",
	"currency",
	"fees",
	"net_amount",
	"batch_id",
	"card_number",
	"expiration_date",
	"cardholder_name",
	"merchant_id",
	"merchant_name",
	"terminal_id",
	"user_account",
	"customer_name",
	"billing_address",
	"zip_code",
	"invoice_number",
	"order_id",
	"transaction_source",
	"entry_method",
	"settlement_status",
	"settlement_batch_number",
	"processor_name",
	"accounting_date",
	"revenue_account",
	"account_set",
	"comments",
	"special_instructions",
	"transaction_flexfield",
}

// OutputFormat selects the transaction export format
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatXLSX OutputFormat = "xlsx"
)

// rowWriter is the streaming sink shared by the CSV and XLSX writers
type rowWriter interface {
	WriteRow(row []string) error
	Close() error
	RowCount() int64
	Path() string
}

// BatchConfig holds settings for a transaction batch run
type BatchConfig struct {
	// Number of customers in the batch (default 1003)
	Customers int
	// Days of history ending at End (default 180)
	Days int
	// RNG seed; 0 picks a random seed
	Seed int64
	// Output directory (default ".")
	OutputDir string
	// Output filename without extension
	Filename string
	// Export format (default csv)
	Format OutputFormat
	// Compress CSV output through xz (ignored for xlsx)
	Compress bool
	// XZ compression preset 0-9
	XZPreset int
	// Merchant selection policy
	Policy CategoryPolicy
	// Currency stamped on transactions
	Currency string
	// End of the history window; zero value means now
	End time.Time
	// Progress is called after each customer completes (may be nil)
	Progress func(done, total int64)
}

// BatchResult summarizes a completed batch run
type BatchResult struct {
	Customers    int
	Transactions int64
	TotalVolume  utils.Money
	Path         string
	Seed         uint64
	Elapsed      time.Duration
}

// RunBatch generates the full transaction history batch: one spending
// profile and card per customer, recurring charges plus organic daily
// spend, streamed to the output file. Customers are processed one at a
// time with an RNG derived from the seed and the customer ID, so a
// customer's history doesn't depend on batch size or position.
func RunBatch(cfg BatchConfig) (*BatchResult, error) {
	start := time.Now()

	catalog, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if cfg.Customers <= 0 {
		cfg.Customers = DefaultCustomers
	}
	if cfg.Days <= 0 {
		cfg.Days = DefaultDays
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Filename == "" {
		cfg.Filename = DefaultFilename
	}
	if cfg.Format == "" {
		cfg.Format = FormatCSV
	}

	end := cfg.End
	if end.IsZero() {
		end = time.Now()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	windowStart := end.AddDate(0, 0, -(cfg.Days - 1))

	if cfg.Compress && cfg.Format == FormatCSV {
		if err := CheckXZAvailable(); err != nil {
			return nil, err
		}
	}

	writer, err := newBatchWriter(cfg)
	if err != nil {
		return nil, err
	}

	baseRng := utils.NewRandom(cfg.Seed)
	baseSeed := baseRng.Seed()

	roster := NewRosterGenerator(catalog).Generate(baseRng.Fork(), cfg.Customers, end)

	profiles := NewProfileBuilder(catalog)
	synthesizer := NewSynthesizer(catalog, SynthesizerConfig{
		Currency: cfg.Currency,
		Policy:   cfg.Policy,
	})

	var totalVolume utils.Money
	for i, customer := range roster {
		rng := utils.NewRandom(customerSeed(baseSeed, customer.ID))

		profile := profiles.Build(rng)
		card := GenerateCard(rng, end)

		for _, txn := range synthesizer.Synthesize(rng, customer, profile, card, windowStart, end) {
			if err := writer.WriteRow(transactionRow(&txn)); err != nil {
				writer.Close()
				return nil, fmt.Errorf("failed to write transaction for %s: %w", customer.ID, err)
			}
			totalVolume = totalVolume.Add(txn.Amount.Abs())
		}

		if cfg.Progress != nil {
			cfg.Progress(int64(i+1), int64(len(roster)))
		}
	}

	rowCount := writer.RowCount()
	path := writer.Path()
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output: %w", err)
	}

	return &BatchResult{
		Customers:    len(roster),
		Transactions: rowCount,
		TotalVolume:  totalVolume,
		Path:         path,
		Seed:         baseSeed,
		Elapsed:      time.Since(start),
	}, nil
}

// newBatchWriter opens the streaming sink for the configured format
func newBatchWriter(cfg BatchConfig) (rowWriter, error) {
	if cfg.Format == FormatXLSX {
		return NewXLSXWriter(XLSXWriterConfig{
			OutputDir: cfg.OutputDir,
			Filename:  cfg.Filename,
			Headers:   TransactionHeaders,
		})
	}

	return NewCSVWriter(CSVWriterConfig{
		OutputDir: cfg.OutputDir,
		Filename:  cfg.Filename,
		Headers:   TransactionHeaders,
		Compress:  cfg.Compress,
		XZPreset:  cfg.XZPreset,
	})
}

// customerSeed derives a per-customer RNG seed from the batch seed and
// the customer ID
func customerSeed(base uint64, customerID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(customerID))
	seed := h.Sum64() ^ base
	if seed == 0 {
		seed = 1
	}
	return int64(seed)
}

// transactionRow flattens a transaction into CSV column order
func transactionRow(t *models.Transaction) []string {
	return []string{
		t.ID,
		t.CustomerID,
		FormatDate(t.Timestamp),
		FormatClock(t.Timestamp),
		FormatDatePtr(t.SettlementDate),
		string(t.CardBrand),
		t.PaymentMethod,
		string(t.Type),
		string(t.Status),
		t.AuthCode,
		t.MCC,
		FormatMoney(t.Amount),
		t.Currency,
		FormatMoney(t.Fees),
		FormatMoney(t.NetAmount),
		t.BatchID,
		t.CardNumber,
		t.CardExpiration,
		t.CardholderName,
		t.MerchantID,
		t.MerchantName,
		t.TerminalID,
		t.UserAccount,
		t.CustomerName,
		t.BillingAddress,
		t.ZipCode,
		t.InvoiceNumber,
		t.OrderID,
		t.Source,
		t.EntryMethod,
		string(t.SettlementStatus),
		FormatStringPtr(t.SettlementBatch),
		t.ProcessorName,
		FormatDatePtr(t.AccountingDate),
		t.RevenueAccount,
		FormatStringPtr(t.AccountSet),
		FormatStringPtr(t.Comments),
		"", // special_instructions (always empty)
		"", // transaction_flexfield (always empty)
	}
}
