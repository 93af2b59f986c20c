package domain

import "github.com/shopspring/decimal"

// Selection is the tier a rule picked and the surcharge on top of its base price.
type Selection struct {
	Tier    string
	Overage decimal.Decimal
}

// TierRule encodes one vendor's tier thresholds and overage formula.
type TierRule interface {
	// Vendor returns the vendor this rule prices.
	Vendor() Vendor

	// Tiers lists every tier name Select can return.
	Tiers() []string

	// Limits returns the accepted range of each metric the vendor reads.
	Limits() []Limit

	// Select picks the tier for a usage that already passed Limits.
	Select(usage Usage) Selection
}

// PriceDriver is implemented by rules that name the metrics their price
// depends on. Rules without it are assumed to price by prompts.
type PriceDriver interface {
	PriceDrivers() []Metric
}

// Advisor is implemented by rules that can recommend a plan in prose.
type Advisor interface {
	Advise(usage Usage) string
}
