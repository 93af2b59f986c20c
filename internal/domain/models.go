package domain

import "github.com/shopspring/decimal"

// Vendor identifies a brand-monitoring vendor in the catalog.
type Vendor string

// Supported vendors.
const (
	VendorOtterly     Vendor = "otterly"
	VendorProfound    Vendor = "profound"
	VendorUbersuggest Vendor = "ubersuggest"
	VendorConductor   Vendor = "conductor"
)

// String returns the vendor identifier.
func (v Vendor) String() string {
	return string(v)
}

// Usage holds the counts a caller wants priced.
// Prompts is the primary metric; the other counts are only read by
// vendors whose tiers depend on them.
type Usage struct {
	Prompts     int `json:"prompts"`
	Competitors int `json:"competitors"`
	Companies   int `json:"companies"`
	Domains     int `json:"domains"`
	Pages       int `json:"pages"`
}

// DefaultUsage sets the vendor-specific counts to their minimum of 1, so
// callers that omit them are priced instead of rejected.
func DefaultUsage() Usage {
	return Usage{Companies: 1, Domains: 1, Pages: 1}
}

// Plan is a single pricing tier of a vendor.
type Plan struct {
	Name         string
	PriceMonthly int64 // whole currency units
	Included     int   // allowance, measured in the vendor's unit
	Features     []string
	SuitedFor    string
}

// Price returns the monthly base price.
func (p Plan) Price() decimal.Decimal {
	return decimal.NewFromInt(p.PriceMonthly)
}

// VendorProfile is the read-only catalog entry of a vendor.
type VendorProfile struct {
	ID         Vendor
	Name       string
	Currency   string // display symbol, fixed per vendor
	PricingURL string
	Unit       string // unit of Plan.Included, e.g. "prompts"
	Plans      []Plan
}

// Plan returns the plan with the given name.
func (p VendorProfile) Plan(name string) (Plan, bool) {
	for _, plan := range p.Plans {
		if plan.Name == name {
			return plan, true
		}
	}
	return Plan{}, false
}

func (p VendorProfile) clone() VendorProfile {
	plans := make([]Plan, len(p.Plans))
	for i, plan := range p.Plans {
		plan.Features = append([]string(nil), plan.Features...)
		plans[i] = plan
	}
	p.Plans = plans
	return p
}

// Quote is the result of pricing a usage against one vendor.
type Quote struct {
	Vendor     Vendor
	VendorName string
	Currency   string
	PricingURL string

	Tier     string
	Included int
	Unit     string

	Cycle   BillingCycle
	Usage   Usage
	Metrics []Metric // metrics the vendor prices

	Monthly     decimal.Decimal
	Yearly      decimal.Decimal
	Savings     decimal.Decimal     // undiscounted year minus Yearly
	CostPerUnit decimal.NullDecimal // monthly cost per prompt, invalid when undefined
	FlatPrompts bool                // price does not depend on the prompt count

	Advice string
}

// Comparison is one vendor's entry in a cross-vendor comparison.
// Err is set when the vendor rejected the usage.
type Comparison struct {
	Vendor Vendor
	Quote  Quote
	Err    error
}
