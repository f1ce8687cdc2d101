package generator

import (
	"testing"
	"time"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

func testCustomer() models.Customer {
	return models.Customer{
		ID:           "CUST000001",
		Name:         "James Smith",
		MobileNumber: "+15551234567",
		Email:        "james.smith42@gmail.com",
		MobileType:   models.MobileTypeIOS,
	}
}

func synthesizeHistory(t *testing.T, seed int64, days int) []models.Transaction {
	t.Helper()

	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rng := utils.NewRandom(seed)
	builder := NewProfileBuilder(catalog)
	synthesizer := NewSynthesizer(catalog, SynthesizerConfig{})

	customer := testCustomer()
	profile := builder.Build(rng)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))
	card := GenerateCard(rng, end)

	return synthesizer.Synthesize(rng, customer, profile, card, start, end)
}

func TestSynthesizeInvariants(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	transactions := synthesizeHistory(t, 42, 180)
	if len(transactions) == 0 {
		t.Fatal("Expected transactions over 180 days")
	}

	for i := range transactions {
		txn := &transactions[i]

		if i > 0 && txn.Timestamp.Before(transactions[i-1].Timestamp) {
			t.Fatalf("Transaction %d out of order", i)
		}

		if txn.MCC != catalog.AssignMCC(txn.MerchantName) {
			t.Fatalf("MCC %s disagrees with merchant %q", txn.MCC, txn.MerchantName)
		}

		// Refunds carry negative amounts, sales positive
		if txn.Type == models.TransactionTypeRefund && txn.Amount > 0 {
			t.Fatalf("Refund with positive amount %v", txn.Amount)
		}
		if txn.Type == models.TransactionTypeSale && txn.Amount < 0 {
			t.Fatalf("Sale with negative amount %v", txn.Amount)
		}

		// Fees and net only for approved transactions, and they must
		// reconcile exactly against the gross amount
		gross := txn.Amount.Abs()
		switch txn.Status {
		case models.TransactionStatusApproved:
			if txn.Fees < gross.MulFloat(0.014) || txn.Fees > gross.MulFloat(0.036) {
				t.Fatalf("Fee %v outside rate bounds for gross %v", txn.Fees, gross)
			}
			if txn.Fees.Add(txn.NetAmount) != gross {
				t.Fatalf("Fee %v + net %v != gross %v", txn.Fees, txn.NetAmount, gross)
			}
		default:
			if !txn.Fees.IsZero() || !txn.NetAmount.IsZero() {
				t.Fatalf("Non-approved transaction carries fees %v / net %v", txn.Fees, txn.NetAmount)
			}
		}

		// Settlement rules follow status
		switch txn.Status {
		case models.TransactionStatusApproved:
			if txn.SettlementDate == nil || txn.SettlementStatus != models.SettlementStatusSettled {
				t.Fatal("Approved transaction without settlement")
			}
			lag := int(txn.SettlementDate.Sub(txn.Timestamp).Hours() / 24)
			if lag < 0 || lag > 3 {
				t.Fatalf("Approved settlement lag %d days", lag)
			}
			if txn.SettlementBatch == nil {
				t.Fatal("Settled transaction without settlement batch")
			}
		case models.TransactionStatusPending:
			if txn.SettlementDate == nil || txn.SettlementStatus != models.SettlementStatusPending {
				t.Fatal("Pending transaction without future settlement")
			}
		case models.TransactionStatusDeclined:
			if txn.SettlementDate != nil || txn.SettlementStatus != models.SettlementStatusNotApplicable {
				t.Fatal("Declined transaction with settlement data")
			}
			if txn.SettlementBatch != nil {
				t.Fatal("Declined transaction with settlement batch")
			}
		}

		if len(txn.AuthCode) != 6 {
			t.Fatalf("Auth code %q not 6 characters", txn.AuthCode)
		}
		if txn.Currency != "USD" {
			t.Fatalf("Unexpected currency %q", txn.Currency)
		}
		if txn.CustomerID != "CUST000001" {
			t.Fatalf("Wrong customer ID %q", txn.CustomerID)
		}
	}
}

func TestSynthesizeOutcomeRates(t *testing.T) {
	transactions := synthesizeHistory(t, 42, 180)
	// Pull more history for stable rates
	transactions = append(transactions, synthesizeHistory(t, 43, 180)...)
	transactions = append(transactions, synthesizeHistory(t, 44, 180)...)

	var refunds, declined int
	for i := range transactions {
		if transactions[i].Type == models.TransactionTypeRefund {
			refunds++
		}
		if transactions[i].Status == models.TransactionStatusDeclined {
			declined++
		}
	}

	n := float64(len(transactions))
	if n < 200 {
		t.Fatalf("Sample too small: %d transactions", len(transactions))
	}

	refundRatio := float64(refunds) / n
	if refundRatio < 0.02 || refundRatio > 0.09 {
		t.Errorf("Refund ratio %.3f far from 0.05", refundRatio)
	}

	declineRatio := float64(declined) / n
	if declineRatio < 0.01 || declineRatio > 0.06 {
		t.Errorf("Decline ratio %.3f far from 0.03", declineRatio)
	}
}

func TestRecurringChargesExactAndMonthly(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	synthesizer := NewSynthesizer(catalog, SynthesizerConfig{})
	customer := testCustomer()
	card := GenerateCard(utils.NewRandom(1), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))

	profile := &models.SpendingProfile{
		CategoryCodes:   catalog.MCCCodes(),
		CategoryWeights: make([]float64, len(catalog.MCCCodes())),
		WeekdayWeight:   0, // no organic spend; recurring only
		WeekendWeight:   0,
		TimeOfDay:       models.TimeWeights{Evening: 1},
		Amounts:         models.AmountProfile{Min: 1, Max: 100, Mean: 50, StdDev: 10},
		Recurring: []models.RecurringCharge{
			{
				Merchant:   "Netflix",
				MCC:        catalog.AssignMCC("Netflix"),
				Amount:     utils.Cents(1599),
				DayOfMonth: 15,
			},
		},
	}

	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -179)

	transactions := synthesizer.Synthesize(utils.NewRandom(1), customer, profile, card, start, end)

	// 180 days ending June 30 span Jan 2 through Jun 30: the 15th
	// occurs in Jan, Feb, Mar, Apr, May, Jun
	if len(transactions) != 6 {
		t.Fatalf("Expected 6 recurring occurrences, got %d", len(transactions))
	}

	for i := range transactions {
		txn := &transactions[i]
		if txn.MerchantName != "Netflix" {
			t.Fatalf("Unexpected merchant %q", txn.MerchantName)
		}
		if txn.Timestamp.Day() != 15 {
			t.Fatalf("Occurrence on day %d, expected 15", txn.Timestamp.Day())
		}
		// Every occurrence bills the exact subscription amount
		if txn.Amount.Abs() != utils.Cents(1599) {
			t.Fatalf("Recurring amount %v, expected 15.99", txn.Amount.Abs())
		}
		if txn.MCC != "4816" {
			t.Fatalf("Netflix MCC %s, expected 4816", txn.MCC)
		}
	}
}

func TestSynthesizeDeterminism(t *testing.T) {
	a := synthesizeHistory(t, 99, 60)
	b := synthesizeHistory(t, 99, 60)

	if len(a) != len(b) {
		t.Fatalf("Histories differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		rowA := transactionRow(&a[i])
		rowB := transactionRow(&b[i])
		for j := range rowA {
			if rowA[j] != rowB[j] {
				t.Fatalf("Transaction %d column %d differs under the same seed: %q vs %q",
					i, j, rowA[j], rowB[j])
			}
		}
	}

	c := synthesizeHistory(t, 100, 60)
	if len(a) == len(c) {
		same := true
		for i := range a {
			if a[i].ID != c[i].ID {
				same = false
				break
			}
		}
		if same {
			t.Error("Different seeds produced identical histories")
		}
	}
}

func TestFilterPoolPolicy(t *testing.T) {
	catalog, err := data.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	synthesizer := NewSynthesizer(catalog, SynthesizerConfig{Policy: CategoryPolicyFilterPool})
	rng := utils.NewRandom(42)

	// Weight everything onto gas stations; every pick should come from
	// the gas pool
	codes := catalog.MCCCodes()
	weights := make([]float64, len(codes))
	for i, code := range codes {
		if code == "5542" {
			weights[i] = 1
		}
	}
	profile := &models.SpendingProfile{CategoryCodes: codes, CategoryWeights: weights}

	pool, _ := catalog.MerchantPool("5542")
	poolSet := make(map[string]bool)
	for _, m := range pool {
		poolSet[m] = true
	}

	for i := 0; i < 500; i++ {
		merchant, mcc := synthesizer.pickMerchant(rng, profile)
		if !poolSet[merchant] {
			t.Fatalf("Merchant %q not in the 5542 pool", merchant)
		}
		if mcc != catalog.AssignMCC(merchant) {
			t.Fatalf("MCC %s disagrees with merchant %q", mcc, merchant)
		}
	}
}

func TestRandomUUIDShape(t *testing.T) {
	rng := utils.NewRandom(42)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := randomUUID(rng)
		if len(id) != 36 {
			t.Fatalf("UUID %q has length %d", id, len(id))
		}
		if id[14] != '4' {
			t.Fatalf("UUID %q not version 4", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate UUID %q", id)
		}
		seen[id] = true
	}

	// Same RNG state, same IDs
	a := randomUUID(utils.NewRandom(7))
	b := randomUUID(utils.NewRandom(7))
	if a != b {
		t.Error("UUIDs differ under the same seed")
	}
}
