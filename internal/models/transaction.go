package models

import (
	"time"

	"github.com/mchandra/offergen/internal/utils"
)

// TransactionType represents the type of a card transaction
type TransactionType string

const (
	TransactionTypeSale   TransactionType = "Sale"
	TransactionTypeRefund TransactionType = "Refund"
)

// TransactionStatus represents the authorization outcome
type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "Approved"
	TransactionStatusDeclined TransactionStatus = "Declined"
	TransactionStatusPending  TransactionStatus = "Pending"
)

// SettlementStatus represents the settlement state derived from the
// authorization outcome
type SettlementStatus string

const (
	SettlementStatusSettled       SettlementStatus = "Settled"
	SettlementStatusPending       SettlementStatus = "Pending"
	SettlementStatusNotApplicable SettlementStatus = "N/A"
)

// CardBrand represents a card network
type CardBrand string

const (
	CardBrandVisa       CardBrand = "Visa"
	CardBrandMasterCard CardBrand = "MasterCard"
	CardBrandAmex       CardBrand = "American Express"
	CardBrandDiscover   CardBrand = "Discover"
)

// Card holds the masked card data shared by all of a customer's transactions
type Card struct {
	Brand        CardBrand
	MaskedNumber string // e.g. "4123 XXXX XXXX 7890"
	Expiration   string // MM/YY
}

// Transaction represents a single card transaction record.
// Field order mirrors the CSV column order.
type Transaction struct {
	ID               string            `json:"transaction_id"`
	CustomerID       string            `json:"customer_id"`
	Timestamp        time.Time         `json:"-"`
	SettlementDate   *time.Time        `json:"settlement_date,omitempty"`
	CardBrand        CardBrand         `json:"card_type"`
	PaymentMethod    string            `json:"payment_method"`
	Type             TransactionType   `json:"transaction_type"`
	Status           TransactionStatus `json:"transaction_status"`
	AuthCode         string            `json:"authorization_code"`
	MCC              string            `json:"merchant_category_code"`
	Amount           utils.Money       `json:"transaction_amount"`
	Currency         string            `json:"currency"`
	Fees             utils.Money       `json:"fees"`
	NetAmount        utils.Money       `json:"net_amount"`
	BatchID          string            `json:"batch_id"`
	CardNumber       string            `json:"card_number"`
	CardExpiration   string            `json:"expiration_date"`
	CardholderName   string            `json:"cardholder_name"`
	MerchantID       string            `json:"merchant_id"`
	MerchantName     string            `json:"merchant_name"`
	TerminalID       string            `json:"terminal_id"`
	UserAccount      string            `json:"user_account"`
	CustomerName     string            `json:"customer_name"`
	BillingAddress   string            `json:"billing_address"`
	ZipCode          string            `json:"zip_code"`
	InvoiceNumber    string            `json:"invoice_number"`
	OrderID          string            `json:"order_id"`
	Source           string            `json:"transaction_source"`
	EntryMethod      string            `json:"entry_method"`
	SettlementStatus SettlementStatus  `json:"settlement_status"`
	SettlementBatch  *string           `json:"settlement_batch_number,omitempty"`
	ProcessorName    string            `json:"processor_name"`
	AccountingDate   *time.Time        `json:"accounting_date,omitempty"`
	RevenueAccount   string            `json:"revenue_account"`
	AccountSet       *string           `json:"account_set,omitempty"`
	Comments         *string           `json:"comments,omitempty"`
}

// IsRefund returns true for refund transactions
func (t *Transaction) IsRefund() bool {
	return t.Type == TransactionTypeRefund
}

// IsApproved returns true for approved transactions
func (t *Transaction) IsApproved() bool {
	return t.Status == TransactionStatusApproved
}
