// Package conductor prices Conductor plans by tracked prompts and monitored pages.
package conductor

import (
	"github.com/davidbz/brandcost/internal/domain"
)

// Plan names as they appear in the catalog.
const (
	PlanProfessional = "Professional"
	PlanEnterprise   = "Enterprise"
)

const (
	professionalMaxPrompts = 500
	professionalMaxPages   = 1000

	// Overage thresholds and step prices are unofficial estimates.
	includedPrompts = 1000
	promptStep      = 500
	promptStepPrice = 400
	includedPages   = 5000
	pageStep        = 1000
	pageStepPrice   = 100

	maxPages = 100000
)

// Rule implements domain.TierRule for Conductor.
type Rule struct{}

// NewRule creates the Conductor tier rule.
func NewRule() *Rule {
	return &Rule{}
}

// Vendor returns the vendor identifier.
func (r *Rule) Vendor() domain.Vendor {
	return domain.VendorConductor
}

// Tiers lists the selectable plans.
func (r *Rule) Tiers() []string {
	return []string{PlanProfessional, PlanEnterprise}
}

// Limits returns the accepted inputs.
func (r *Rule) Limits() []domain.Limit {
	return []domain.Limit{
		domain.PromptsLimit(),
		domain.CompetitorsLimit(),
		{Metric: domain.MetricPages, Min: 1, Max: maxPages},
	}
}

// Select picks Professional while both prompts and pages fit it, and stacks
// prompt and page overages on top of the selected plan.
func (r *Rule) Select(usage domain.Usage) domain.Selection {
	tier := PlanEnterprise
	if usage.Prompts <= professionalMaxPrompts && usage.Pages <= professionalMaxPages {
		tier = PlanProfessional
	}

	prompts := domain.StepOverage(usage.Prompts, includedPrompts, promptStep, promptStepPrice)
	pages := domain.StepOverage(usage.Pages, includedPages, pageStep, pageStepPrice)

	return domain.Selection{
		Tier:    tier,
		Overage: prompts.Add(pages),
	}
}
