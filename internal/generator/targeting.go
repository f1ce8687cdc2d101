package generator

import (
	"time"

	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// MaxOffersPerCustomer is the default cap on offers assigned to one customer
const MaxOffersPerCustomer = 3

// BuildTargeting assigns each customer a small random selection of
// offers. Every customer gets between 1 and maxPerCustomer distinct
// offers; customers with no offers don't appear in the result.
func BuildTargeting(rng *utils.Random, customerIDs, offerIDs []string, maxPerCustomer int, now time.Time) []models.Targeting {
	if maxPerCustomer <= 0 {
		maxPerCustomer = MaxOffersPerCustomer
	}
	if len(offerIDs) == 0 {
		return nil
	}

	assignments := make([]models.Targeting, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		count := rng.IntRange(1, maxPerCustomer)
		for _, offerID := range rng.SampleStrings(offerIDs, count) {
			assignments = append(assignments, models.Targeting{
				CustomerID: customerID,
				OfferID:    offerID,
				AssignedAt: now,
			})
		}
	}

	return assignments
}
