// Package api holds the JSON views shared by the HTTP server and the CLI.
package api

import (
	"github.com/davidbz/brandcost/internal/domain"
)

// Quote is the wire form of domain.Quote.
type Quote struct {
	Vendor       string       `json:"vendor"`
	VendorName   string       `json:"vendor_name"`
	Currency     string       `json:"currency"`
	Plan         string       `json:"plan"`
	Included     int          `json:"included"`
	Unit         string       `json:"unit"`
	BillingCycle string       `json:"billing_cycle"`
	Usage        domain.Usage `json:"usage"`
	MonthlyCost  float64      `json:"monthly_cost"`
	YearlyCost   float64      `json:"yearly_cost"`
	Savings      float64      `json:"yearly_savings"`
	CostPerUnit  *float64     `json:"cost_per_prompt,omitempty"`
	FlatPrompts  bool         `json:"flat_prompt_pricing"`
	Advice       string       `json:"advice,omitempty"`
	PricingURL   string       `json:"pricing_url,omitempty"`
}

// Comparison is one vendor's entry of a comparison.
type Comparison struct {
	Vendor string `json:"vendor"`
	Quote  *Quote `json:"quote,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Plan is the wire form of domain.Plan.
type Plan struct {
	Name         string   `json:"name"`
	PriceMonthly int64    `json:"price_monthly"`
	Included     int      `json:"included"`
	Features     []string `json:"features"`
	SuitedFor    string   `json:"suited_for"`
}

// Vendor is the wire form of domain.VendorProfile.
type Vendor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	PricingURL string `json:"pricing_url"`
	Unit       string `json:"unit"`
	Plans      []Plan `json:"plans"`
}

// NewQuote converts a quote. Per-prompt cost is rounded to cents and
// omitted when undefined.
func NewQuote(q domain.Quote) *Quote {
	resp := &Quote{
		Vendor:       q.Vendor.String(),
		VendorName:   q.VendorName,
		Currency:     q.Currency,
		Plan:         q.Tier,
		Included:     q.Included,
		Unit:         q.Unit,
		BillingCycle: string(q.Cycle),
		Usage:        q.Usage,
		MonthlyCost:  q.Monthly.InexactFloat64(),
		YearlyCost:   q.Yearly.InexactFloat64(),
		Savings:      q.Savings.InexactFloat64(),
		FlatPrompts:  q.FlatPrompts,
		Advice:       q.Advice,
		PricingURL:   q.PricingURL,
	}

	if q.CostPerUnit.Valid {
		perUnit := q.CostPerUnit.Decimal.Round(2).InexactFloat64()
		resp.CostPerUnit = &perUnit
	}

	return resp
}

// NewComparisons converts comparison results, keeping their order.
func NewComparisons(results []domain.Comparison) []Comparison {
	entries := make([]Comparison, 0, len(results))
	for _, res := range results {
		entry := Comparison{Vendor: res.Vendor.String()}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			entry.Quote = NewQuote(res.Quote)
		}
		entries = append(entries, entry)
	}
	return entries
}

// NewVendors converts catalog profiles.
func NewVendors(profiles []domain.VendorProfile) []Vendor {
	out := make([]Vendor, 0, len(profiles))
	for _, p := range profiles {
		plans := make([]Plan, 0, len(p.Plans))
		for _, plan := range p.Plans {
			plans = append(plans, Plan{
				Name:         plan.Name,
				PriceMonthly: plan.PriceMonthly,
				Included:     plan.Included,
				Features:     plan.Features,
				SuitedFor:    plan.SuitedFor,
			})
		}
		out = append(out, Vendor{
			ID:         p.ID.String(),
			Name:       p.Name,
			Currency:   p.Currency,
			PricingURL: p.PricingURL,
			Unit:       p.Unit,
			Plans:      plans,
		})
	}
	return out
}
