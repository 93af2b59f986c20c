// Package ubersuggest prices Ubersuggest plans. Tiers depend on the number of
// tracked competitors and domains, not on prompts.
package ubersuggest

import (
	"github.com/davidbz/brandcost/internal/domain"
)

// Plan names as they appear in the catalog.
const (
	PlanIndividual = "Individual"
	PlanBusiness   = "Business"
)

const (
	individualMaxCompetitors = 10
	individualMaxDomains     = 1

	// Extra domains on Business; unofficial estimate.
	businessIncludedDomains = 7
	domainPrice             = 10

	maxDomains = 100
)

// Rule implements domain.TierRule for Ubersuggest.
type Rule struct{}

// NewRule creates the Ubersuggest tier rule.
func NewRule() *Rule {
	return &Rule{}
}

// Vendor returns the vendor identifier.
func (r *Rule) Vendor() domain.Vendor {
	return domain.VendorUbersuggest
}

// Tiers lists the selectable plans.
func (r *Rule) Tiers() []string {
	return []string{PlanIndividual, PlanBusiness}
}

// Limits returns the accepted inputs.
func (r *Rule) Limits() []domain.Limit {
	return []domain.Limit{
		domain.PromptsLimit(),
		domain.CompetitorsLimit(),
		{Metric: domain.MetricDomains, Min: 1, Max: maxDomains},
	}
}

// PriceDrivers names the metrics the price depends on.
func (r *Rule) PriceDrivers() []domain.Metric {
	return []domain.Metric{domain.MetricCompetitors, domain.MetricDomains}
}

// Select picks Individual for a single domain with few competitors.
func (r *Rule) Select(usage domain.Usage) domain.Selection {
	if usage.Competitors <= individualMaxCompetitors && usage.Domains <= individualMaxDomains {
		return domain.Selection{Tier: PlanIndividual}
	}

	return domain.Selection{
		Tier:    PlanBusiness,
		Overage: domain.StepOverage(usage.Domains, businessIncludedDomains, 1, domainPrice),
	}
}
