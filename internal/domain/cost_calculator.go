package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/davidbz/brandcost/internal/observability"
)

// Engine prices usage against the vendor catalog.
// It holds no mutable state; every call is an independent computation.
type Engine struct {
	catalog Catalog
	rules   map[Vendor]TierRule
}

// NewEngine pairs every catalog vendor with its tier rule.
// It fails when a vendor has no rule, a rule has no catalog entry, or a rule
// can select a tier the catalog does not define.
func NewEngine(catalog Catalog, rules []TierRule) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	e := &Engine{
		catalog: catalog,
		rules:   make(map[Vendor]TierRule, len(rules)),
	}

	for _, rule := range rules {
		if rule == nil {
			return nil, errors.New("rule cannot be nil")
		}
		vendor := rule.Vendor()
		if _, exists := e.rules[vendor]; exists {
			return nil, fmt.Errorf("rule for vendor %s already registered", vendor)
		}

		profile, err := catalog.Profile(vendor)
		if err != nil {
			return nil, fmt.Errorf("rule without catalog entry: %w", err)
		}
		for _, tier := range rule.Tiers() {
			if _, ok := profile.Plan(tier); !ok {
				return nil, fmt.Errorf("vendor %s: tier %s missing from catalog", vendor, tier)
			}
		}
		if err := checkPrimaryLimit(rule.Limits()); err != nil {
			return nil, fmt.Errorf("vendor %s: %w", vendor, err)
		}

		e.rules[vendor] = rule
	}

	for _, profile := range catalog.Profiles() {
		if _, exists := e.rules[profile.ID]; !exists {
			return nil, fmt.Errorf("vendor %s has no pricing rule", profile.ID)
		}
	}

	return e, nil
}

// The primary count is the per-unit divisor, so zero must never validate.
func checkPrimaryLimit(limits []Limit) error {
	for _, limit := range limits {
		if limit.Metric == MetricPrompts {
			if limit.Min < 1 {
				return errors.New("prompts minimum must be at least 1")
			}
			return nil
		}
	}
	return errors.New("prompts limit is required")
}

// Quote validates usage and prices it against one vendor.
func (e *Engine) Quote(
	ctx context.Context,
	vendor Vendor,
	usage Usage,
	cycle BillingCycle,
) (Quote, error) {
	rule, exists := e.rules[vendor]
	if !exists {
		return Quote{}, fmt.Errorf("%w: %s", ErrVendorNotFound, vendor)
	}

	if err := cycle.Validate(); err != nil {
		return Quote{}, err
	}

	if err := ValidateCounts(usage); err != nil {
		return Quote{}, fmt.Errorf("vendor %s: %w", vendor, err)
	}

	limits := rule.Limits()
	if err := ValidateUsage(usage, limits); err != nil {
		return Quote{}, fmt.Errorf("vendor %s: %w", vendor, err)
	}

	profile, err := e.catalog.Profile(vendor)
	if err != nil {
		return Quote{}, err
	}

	selection := rule.Select(usage)
	plan, ok := profile.Plan(selection.Tier)
	if !ok {
		return Quote{}, fmt.Errorf("vendor %s: tier %s missing from catalog", vendor, selection.Tier)
	}

	monthly := plan.Price().Add(selection.Overage)
	yearly := Annualize(monthly, cycle)

	quote := Quote{
		Vendor:     vendor,
		VendorName: profile.Name,
		Currency:   profile.Currency,
		PricingURL: profile.PricingURL,
		Tier:       plan.Name,
		Included:   plan.Included,
		Unit:       profile.Unit,
		Cycle:      cycle,
		Usage:      usage,
		Metrics:    metricsOf(limits),
		Monthly:    monthly,
		Yearly:     yearly,
		Savings:    Annualize(monthly, BillingMonthly).Sub(yearly),
	}

	if perUnit, unitErr := CostPerUnit(monthly, usage.Prompts); unitErr == nil {
		quote.CostPerUnit = decimal.NewNullDecimal(perUnit)
	}

	if driver, isDriver := rule.(PriceDriver); isDriver {
		quote.FlatPrompts = !slices.Contains(driver.PriceDrivers(), MetricPrompts)
	}

	if advisor, isAdvisor := rule.(Advisor); isAdvisor {
		quote.Advice = advisor.Advise(usage)
	}

	observability.FromContext(ctx).Debug("quote computed",
		observability.String("vendor", vendor.String()),
		observability.String("tier", quote.Tier),
		observability.String("monthly", monthly.String()),
		observability.String("yearly", yearly.String()),
	)

	return quote, nil
}

// Compare quotes every catalog vendor. A vendor that rejects the usage is
// reported with its error rather than failing the comparison. Priced entries
// come first, cheapest monthly cost first; rejected entries follow.
func (e *Engine) Compare(
	ctx context.Context,
	usage Usage,
	cycle BillingCycle,
) ([]Comparison, error) {
	if err := cycle.Validate(); err != nil {
		return nil, err
	}

	profiles := e.catalog.Profiles()
	results := make([]Comparison, 0, len(profiles))
	for _, profile := range profiles {
		quote, err := e.Quote(ctx, profile.ID, usage, cycle)
		results = append(results, Comparison{Vendor: profile.ID, Quote: quote, Err: err})
	}

	slices.SortStableFunc(results, compareEntries)

	return results, nil
}

func compareEntries(a, b Comparison) int {
	switch {
	case a.Err == nil && b.Err != nil:
		return -1
	case a.Err != nil && b.Err == nil:
		return 1
	case a.Err == nil:
		if c := a.Quote.Monthly.Cmp(b.Quote.Monthly); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Vendor, b.Vendor)
}

// Vendors returns the catalog profiles.
func (e *Engine) Vendors(_ context.Context) []VendorProfile {
	return e.catalog.Profiles()
}
