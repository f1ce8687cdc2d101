package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed catalog/*.json
var catalogFiles embed.FS

// Catalog holds all loaded reference data for the generators
type Catalog struct {
	MCC       MCCData
	Merchants MerchantsData
	Offers    OffersData
	People    PeopleData

	// Lookup maps for efficient access
	labelByCode  map[string]string
	poolByCode   map[string][]string
	categoryList []string
}

// MCCData represents the structure of mcc.json
type MCCData struct {
	DefaultCode string       `json:"default_code"`
	Codes       []MCCCode    `json:"codes"`
	Keywords    []MCCKeyword `json:"keywords"`
}

// MCCCode pairs a merchant category code with its description
type MCCCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// MCCKeyword maps a merchant-name substring to a category code.
// Order matters: the first matching keyword wins.
type MCCKeyword struct {
	Keyword string `json:"keyword"`
	Code    string `json:"code"`
}

// MerchantsData represents the structure of merchants.json
type MerchantsData struct {
	Names         []string            `json:"names"`
	CategoryPools map[string][]string `json:"category_pools"`
	Subscriptions []string            `json:"subscriptions"`
}

// OffersData represents the structure of offers.json
type OffersData struct {
	Categories     map[string][]string `json:"categories"`
	OfferTypes     []string            `json:"offer_types"`
	CouponPrefixes []string            `json:"coupon_prefixes"`
	CouponWords    []string            `json:"coupon_words"`
	CouponSeasons  []string            `json:"coupon_seasons"`
}

// PeopleData represents the structure of people.json
type PeopleData struct {
	FirstNames   []string `json:"first_names"`
	LastNames    []string `json:"last_names"`
	EmailDomains []string `json:"email_domains"`
	StreetNames  []string `json:"street_names"`
}

var (
	instance *Catalog
	once     sync.Once
	loadErr  error
)

// Load loads all reference data from embedded files
// This is thread-safe and will only load data once
func Load() (*Catalog, error) {
	once.Do(func() {
		instance = &Catalog{}
		loadErr = instance.loadAll()
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

// loadAll loads all data files
func (c *Catalog) loadAll() error {
	data, err := catalogFiles.ReadFile("catalog/mcc.json")
	if err != nil {
		return fmt.Errorf("failed to read mcc.json: %w", err)
	}
	if err := json.Unmarshal(data, &c.MCC); err != nil {
		return fmt.Errorf("failed to parse mcc.json: %w", err)
	}

	data, err = catalogFiles.ReadFile("catalog/merchants.json")
	if err != nil {
		return fmt.Errorf("failed to read merchants.json: %w", err)
	}
	if err := json.Unmarshal(data, &c.Merchants); err != nil {
		return fmt.Errorf("failed to parse merchants.json: %w", err)
	}

	data, err = catalogFiles.ReadFile("catalog/offers.json")
	if err != nil {
		return fmt.Errorf("failed to read offers.json: %w", err)
	}
	if err := json.Unmarshal(data, &c.Offers); err != nil {
		return fmt.Errorf("failed to parse offers.json: %w", err)
	}

	data, err = catalogFiles.ReadFile("catalog/people.json")
	if err != nil {
		return fmt.Errorf("failed to read people.json: %w", err)
	}
	if err := json.Unmarshal(data, &c.People); err != nil {
		return fmt.Errorf("failed to parse people.json: %w", err)
	}

	c.buildLookups()

	return nil
}

// buildLookups creates efficient lookup structures
func (c *Catalog) buildLookups() {
	c.labelByCode = make(map[string]string, len(c.MCC.Codes))
	for _, mc := range c.MCC.Codes {
		c.labelByCode[mc.Code] = mc.Label
	}

	c.poolByCode = make(map[string][]string, len(c.Merchants.CategoryPools))
	for code, pool := range c.Merchants.CategoryPools {
		c.poolByCode[code] = pool
	}

	// Stable category order for deterministic iteration
	c.categoryList = make([]string, 0, len(c.Offers.Categories))
	for category := range c.Offers.Categories {
		c.categoryList = append(c.categoryList, category)
	}
	sort.Strings(c.categoryList)
}

// AssignMCC resolves the category code for a merchant name by scanning the
// ordered keyword table. Matching is case-insensitive on substrings; the
// first hit wins. Unknown merchants fall back to miscellaneous retail.
func (c *Catalog) AssignMCC(merchantName string) string {
	lower := strings.ToLower(merchantName)
	for _, kw := range c.MCC.Keywords {
		if strings.Contains(lower, kw.Keyword) {
			return kw.Code
		}
	}
	return c.MCC.DefaultCode
}

// MCCLabel returns the description for a category code
func (c *Catalog) MCCLabel(code string) (string, bool) {
	label, ok := c.labelByCode[code]
	return label, ok
}

// MCCCodes returns all category codes in file order
func (c *Catalog) MCCCodes() []string {
	codes := make([]string, len(c.MCC.Codes))
	for i, mc := range c.MCC.Codes {
		codes[i] = mc.Code
	}
	return codes
}

// MerchantNames returns the full merchant name pool
func (c *Catalog) MerchantNames() []string {
	return c.Merchants.Names
}

// MerchantPool returns the preferred merchants for a category code, if any
func (c *Catalog) MerchantPool(code string) ([]string, bool) {
	pool, ok := c.poolByCode[code]
	return pool, ok
}

// SubscriptionMerchants returns the recurring-charge merchant pool
func (c *Catalog) SubscriptionMerchants() []string {
	return c.Merchants.Subscriptions
}

// OfferCategories returns all offer categories in sorted order
func (c *Catalog) OfferCategories() []string {
	return c.categoryList
}

// OfferMerchants returns the merchants for an offer category
func (c *Catalog) OfferMerchants(category string) ([]string, bool) {
	merchants, ok := c.Offers.Categories[category]
	return merchants, ok
}

// OfferTypes returns all offer type names
func (c *Catalog) OfferTypes() []string {
	return c.Offers.OfferTypes
}

// FirstNames returns the first-name pool
func (c *Catalog) FirstNames() []string {
	return c.People.FirstNames
}

// LastNames returns the last-name pool
func (c *Catalog) LastNames() []string {
	return c.People.LastNames
}

// EmailDomains returns the email domain pool
func (c *Catalog) EmailDomains() []string {
	return c.People.EmailDomains
}

// StreetNames returns the street name pool for billing addresses
func (c *Catalog) StreetNames() []string {
	return c.People.StreetNames
}
