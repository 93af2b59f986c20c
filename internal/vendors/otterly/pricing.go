// Package otterly prices Otterly.ai plans.
//
// Tiers are chosen by tracked prompts. Premium usage beyond its 400 included
// prompts is charged per full block of 100 prompts; this overage is an
// unofficial estimate, not published vendor pricing.
package otterly

import (
	"github.com/davidbz/brandcost/internal/domain"
)

// Plan names as they appear in the catalog.
const (
	PlanLite     = "Lite"
	PlanStandard = "Standard"
	PlanPremium  = "Premium"
)

const (
	liteMaxPrompts     = 15
	standardMaxPrompts = 100

	premiumIncludedPrompts = 400
	overageStep            = 100
	overageStepPrice       = 150

	adviseLiteMaxPrompts     = 10
	adviseStandardMaxPrompts = 80
)

// Rule implements domain.TierRule for Otterly.ai.
type Rule struct{}

// NewRule creates the Otterly.ai tier rule.
func NewRule() *Rule {
	return &Rule{}
}

// Vendor returns the vendor identifier.
func (r *Rule) Vendor() domain.Vendor {
	return domain.VendorOtterly
}

// Tiers lists the selectable plans.
func (r *Rule) Tiers() []string {
	return []string{PlanLite, PlanStandard, PlanPremium}
}

// Limits returns the accepted inputs.
func (r *Rule) Limits() []domain.Limit {
	return []domain.Limit{
		domain.PromptsLimit(),
		domain.CompetitorsLimit(),
	}
}

// Select picks the plan covering the prompt count.
func (r *Rule) Select(usage domain.Usage) domain.Selection {
	switch {
	case usage.Prompts <= liteMaxPrompts:
		return domain.Selection{Tier: PlanLite}
	case usage.Prompts <= standardMaxPrompts:
		return domain.Selection{Tier: PlanStandard}
	default:
		return domain.Selection{
			Tier:    PlanPremium,
			Overage: domain.StepOverage(usage.Prompts, premiumIncludedPrompts, overageStep, overageStepPrice),
		}
	}
}

// Advise recommends a plan for the prompt count.
func (r *Rule) Advise(usage domain.Usage) string {
	switch {
	case usage.Prompts <= adviseLiteMaxPrompts:
		return "Lite is a good place to start; you can upgrade at any time."
	case usage.Prompts <= adviseStandardMaxPrompts:
		return "Standard offers a good balance of coverage and price for this volume."
	default:
		return "Premium is required. Contact Otterly.ai about custom plans above 400 prompts."
	}
}
