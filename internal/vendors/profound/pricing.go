// Package profound prices the Profound subscription.
package profound

import (
	"github.com/davidbz/brandcost/internal/domain"
)

// PlanLite is the single Profound plan.
const PlanLite = "Lite"

// Unofficial overage estimates.
const (
	includedPrompts  = 200
	promptStep       = 100
	promptStepPrice  = 200
	includedCompany  = 1
	companyStepPrice = 300

	maxCompanies = 100
)

// Rule implements domain.TierRule for Profound.
type Rule struct{}

// NewRule creates the Profound tier rule.
func NewRule() *Rule {
	return &Rule{}
}

// Vendor returns the vendor identifier.
func (r *Rule) Vendor() domain.Vendor {
	return domain.VendorProfound
}

// Tiers lists the selectable plans.
func (r *Rule) Tiers() []string {
	return []string{PlanLite}
}

// Limits returns the accepted inputs.
func (r *Rule) Limits() []domain.Limit {
	return []domain.Limit{
		domain.PromptsLimit(),
		domain.CompetitorsLimit(),
		{Metric: domain.MetricCompanies, Min: 1, Max: maxCompanies},
	}
}

// Select adds prompt and company surcharges to the single plan.
func (r *Rule) Select(usage domain.Usage) domain.Selection {
	prompts := domain.StepOverage(usage.Prompts, includedPrompts, promptStep, promptStepPrice)
	companies := domain.StepOverage(usage.Companies, includedCompany, 1, companyStepPrice)

	return domain.Selection{
		Tier:    PlanLite,
		Overage: prompts.Add(companies),
	}
}
