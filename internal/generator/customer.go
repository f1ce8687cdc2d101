package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/models"
	"github.com/mchandra/offergen/internal/utils"
)

// Share of customers on iOS; the rest run Android
const IOSShare = 0.45

// RosterGenerator produces customer records with sequential IDs and
// name-derived contact details
type RosterGenerator struct {
	catalog *data.Catalog
}

// NewRosterGenerator creates a roster generator backed by the reference catalog
func NewRosterGenerator(catalog *data.Catalog) *RosterGenerator {
	return &RosterGenerator{catalog: catalog}
}

// Generate produces count customers with IDs CUST000001 onward
func (g *RosterGenerator) Generate(rng *utils.Random, count int, now time.Time) []models.Customer {
	customers := make([]models.Customer, 0, count)
	for i := 1; i <= count; i++ {
		customers = append(customers, g.generateOne(rng, i, now))
	}
	return customers
}

func (g *RosterGenerator) generateOne(rng *utils.Random, seq int, now time.Time) models.Customer {
	firstName := rng.PickString(g.catalog.FirstNames())
	lastName := rng.PickString(g.catalog.LastNames())

	mobileType := models.MobileTypeAndroid
	if rng.Probability(IOSShare) {
		mobileType = models.MobileTypeIOS
	}

	return models.Customer{
		ID:           fmt.Sprintf("CUST%06d", seq),
		Name:         firstName + " " + lastName,
		MobileNumber: "+1" + rng.NumericString(10),
		Email:        g.email(rng, firstName, lastName),
		MobileType:   mobileType,
		CreatedAt:    now,
	}
}

// email builds first.last<n>@domain, stripping anything that isn't
// alphanumeric or a dot
func (g *RosterGenerator) email(rng *utils.Random, firstName, lastName string) string {
	prefix := strings.ToLower(firstName) + "." + strings.ToLower(lastName)

	var clean strings.Builder
	for _, c := range prefix {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '.' {
			clean.WriteRune(c)
		}
	}

	return fmt.Sprintf("%s%d@%s", clean.String(), rng.IntRange(1, 99), rng.PickString(g.catalog.EmailDomains()))
}
