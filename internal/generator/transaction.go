package generator

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/generator/patterns"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// CategoryPolicy controls how merchants are matched to the sampled
// spending category
type CategoryPolicy string

const (
	// CategoryPolicyMerchantDerived picks a merchant from the full pool,
	// prefers the category's merchant pool when one exists, and derives
	// the final MCC from the merchant name
	CategoryPolicyMerchantDerived CategoryPolicy = "merchant_derived"
	// CategoryPolicyFilterPool restricts the pick to the sampled
	// category's merchant pool whenever the category has one
	CategoryPolicyFilterPool CategoryPolicy = "filter_pool"
)

// Outcome and fee rates
const (
	RefundRate  = 0.05
	DeclineRate = 0.03
	PendingRate = 0.01

	FeeRateMin = 0.015
	FeeRateMax = 0.035

	MaxTransactionsPerDay = 5
)

var (
	transactionSources = []string{"POS", "Online", "Mobile App", "Recurring", "Virtual Terminal"}
	entryMethods       = []string{"Swiped", "Chip", "Contactless", "Keyed", "Online"}
	processorNames     = []string{"FirstData", "Square", "Stripe", "PayPal", "Adyen"}
	accountSets        = []string{"Default", "Premium", "Business"}
	commentPool        = []string{"Customer satisfaction guaranteed", "Loyalty program", "Special order"}
)

// SynthesizerConfig holds tunables for transaction synthesis
type SynthesizerConfig struct {
	// Currency code stamped on every transaction (default "USD")
	Currency string
	// Merchant selection policy (default merchant_derived)
	Policy CategoryPolicy
	// Cap on organic transactions per active day (default 5)
	MaxPerDay int
}

// Synthesizer produces a customer's transaction history from their
// spending profile: monthly recurring charges plus organic daily spend.
type Synthesizer struct {
	catalog *data.Catalog
	config  SynthesizerConfig
}

// NewSynthesizer creates a transaction synthesizer
func NewSynthesizer(catalog *data.Catalog, config SynthesizerConfig) *Synthesizer {
	if config.Currency == "" {
		config.Currency = "USD"
	}
	if config.Policy == "" {
		config.Policy = CategoryPolicyMerchantDerived
	}
	if config.MaxPerDay <= 0 {
		config.MaxPerDay = MaxTransactionsPerDay
	}
	return &Synthesizer{catalog: catalog, config: config}
}

// Synthesize generates the full transaction history for one customer
// over [start, end], sorted chronologically. All draws come from rng,
// so identical RNG state yields an identical history.
func (s *Synthesizer) Synthesize(rng *utils.Random, customer models.Customer, profile *models.SpendingProfile, card models.Card, start, end time.Time) []models.Transaction {
	timeOfDay := patterns.NewTimeOfDayPattern(profile.TimeOfDay)
	weekly := patterns.NewWeeklyPattern(profile.WeekdayWeight, profile.WeekendWeight, s.config.MaxPerDay)
	amounts := patterns.NewAmountPattern(profile.Amounts)

	transactions := s.recurring(rng, customer, profile, card, timeOfDay, start, end)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !weekly.IsActiveDay(rng, day) {
			continue
		}

		count := weekly.DailyCount(rng)
		for i := 0; i < count; i++ {
			merchant, mcc := s.pickMerchant(rng, profile)
			ts := timeOfDay.PickTime(rng, day)
			amount := amounts.Draw(rng, mcc, patterns.AmountBoost(rng, day))
			transactions = append(transactions, s.build(rng, customer, card, merchant, mcc, ts, amount))
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})

	return transactions
}

// recurring emits each subscription monthly on its anchor day. The
// billed amount is the charge's fixed amount; no category multipliers
// or boosts apply.
func (s *Synthesizer) recurring(rng *utils.Random, customer models.Customer, profile *models.SpendingProfile, card models.Card, timeOfDay *patterns.TimeOfDayPattern, start, end time.Time) []models.Transaction {
	var transactions []models.Transaction

	for _, charge := range profile.Recurring {
		occurrence := time.Date(start.Year(), start.Month(), charge.DayOfMonth, 0, 0, 0, 0, start.Location())
		if occurrence.Before(start) {
			occurrence = occurrence.AddDate(0, 1, 0)
		}

		for !occurrence.After(end) {
			ts := timeOfDay.PickTime(rng, occurrence)
			transactions = append(transactions, s.build(rng, customer, card, charge.Merchant, charge.MCC, ts, charge.Amount))
			occurrence = occurrence.AddDate(0, 1, 0)
		}
	}

	return transactions
}

// pickMerchant samples a spending category from the profile weights and
// resolves a merchant for it. The final MCC always re-derives from the
// merchant name so merchant and code never disagree.
func (s *Synthesizer) pickMerchant(rng *utils.Random, profile *models.SpendingProfile) (string, string) {
	idx := rng.WeightedPickFloat(profile.CategoryWeights)
	sampled := profile.CategoryCodes[idx]

	var merchant string
	pool, hasPool := s.catalog.MerchantPool(sampled)

	switch s.config.Policy {
	case CategoryPolicyFilterPool:
		if hasPool {
			merchant = rng.PickString(pool)
		} else {
			merchant = rng.PickString(s.catalog.MerchantNames())
		}
	default: // merchant_derived
		merchant = rng.PickString(s.catalog.MerchantNames())
		if hasPool {
			merchant = rng.PickString(pool)
		}
	}

	return merchant, s.catalog.AssignMCC(merchant)
}

// build assembles one transaction record around a positive gross amount
func (s *Synthesizer) build(rng *utils.Random, customer models.Customer, card models.Card, merchant, mcc string, ts time.Time, amount utils.Money) models.Transaction {
	txnType := models.TransactionTypeSale
	if rng.Probability(RefundRate) {
		txnType = models.TransactionTypeRefund
	}

	status := models.TransactionStatusApproved
	if rng.Probability(DeclineRate) {
		status = models.TransactionStatusDeclined
	} else if rng.Probability(PendingRate) {
		status = models.TransactionStatusPending
	}

	var settlementDate *time.Time
	settlementStatus := models.SettlementStatusNotApplicable
	switch status {
	case models.TransactionStatusApproved:
		d := ts.AddDate(0, 0, rng.IntRange(1, 3))
		settlementDate = &d
		settlementStatus = models.SettlementStatusSettled
	case models.TransactionStatusPending:
		d := ts.AddDate(0, 0, rng.IntRange(3, 7))
		settlementDate = &d
		settlementStatus = models.SettlementStatusPending
	}

	// Fees and net apply to approved transactions only
	var fees, net utils.Money
	feeRate := rng.Float64Range(FeeRateMin, FeeRateMax)
	if status == models.TransactionStatusApproved {
		fees = amount.MulFloat(feeRate)
		net = amount.Sub(fees)
	}

	signedAmount := amount
	if txnType == models.TransactionTypeRefund {
		signedAmount = amount.Neg()
	}

	var settlementBatch *string
	if settlementDate != nil {
		sb := fmt.Sprintf("SB%d", rng.IntRange(100000, 999999))
		settlementBatch = &sb
	}

	var accountSet *string
	if v := rng.IntN(len(accountSets) + 1); v < len(accountSets) {
		accountSet = &accountSets[v]
	}

	var comments *string
	if v := rng.IntN(len(commentPool) + 1); v < len(commentPool) {
		comments = &commentPool[v]
	}

	return models.Transaction{
		ID:               randomUUID(rng),
		CustomerID:       customer.ID,
		Timestamp:        ts,
		SettlementDate:   settlementDate,
		CardBrand:        card.Brand,
		PaymentMethod:    "Credit",
		Type:             txnType,
		Status:           status,
		AuthCode:         rng.HexString(6),
		MCC:              mcc,
		Amount:           signedAmount,
		Currency:         s.config.Currency,
		Fees:             fees,
		NetAmount:        net,
		BatchID:          fmt.Sprintf("BATCH%d", rng.IntRange(100000, 999999)),
		CardNumber:       card.MaskedNumber,
		CardExpiration:   card.Expiration,
		CardholderName:   customer.Name,
		MerchantID:       fmt.Sprintf("M%d", rng.IntRange(10000, 99999)),
		MerchantName:     merchant,
		TerminalID:       fmt.Sprintf("T%d", rng.IntRange(1000, 9999)),
		UserAccount:      fmt.Sprintf("UA%d", rng.IntRange(10000, 99999)),
		CustomerName:     customer.Name,
		BillingAddress:   fmt.Sprintf("%d %s", rng.IntRange(1, 9999), rng.PickString(s.catalog.StreetNames())),
		ZipCode:          rng.NumericString(5),
		InvoiceNumber:    fmt.Sprintf("INV%d", rng.IntRange(100000, 999999)),
		OrderID:          fmt.Sprintf("ORD%d", rng.IntRange(100000, 999999)),
		Source:           rng.PickString(transactionSources),
		EntryMethod:      rng.PickString(entryMethods),
		SettlementStatus: settlementStatus,
		SettlementBatch:  settlementBatch,
		ProcessorName:    rng.PickString(processorNames),
		AccountingDate:   settlementDate,
		RevenueAccount:   fmt.Sprintf("RA%d", rng.IntRange(1000, 9999)),
		AccountSet:       accountSet,
		Comments:         comments,
	}
}

// randomUUID builds a version-4 UUID from the deterministic RNG so
// transaction IDs reproduce under a fixed seed
func randomUUID(rng *utils.Random) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10

	id, err := uuid.FromBytes(b[:])
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}
