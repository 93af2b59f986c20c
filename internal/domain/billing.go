package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// BillingCycle selects how the subscription is paid.
type BillingCycle string

// Billing cycles.
const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// ParseBillingCycle converts user input into a BillingCycle.
func ParseBillingCycle(s string) (BillingCycle, error) {
	cycle := BillingCycle(strings.ToLower(strings.TrimSpace(s)))
	if err := cycle.Validate(); err != nil {
		return "", err
	}
	return cycle, nil
}

// Validate rejects unknown billing cycles.
func (c BillingCycle) Validate() error {
	switch c {
	case BillingMonthly, BillingYearly:
		return nil
	default:
		return &InputError{
			Field:  "billing_cycle",
			Reason: fmt.Sprintf("%q is not one of monthly, yearly", string(c)),
		}
	}
}

// DiscountFactor is 0.85 for yearly billing and 1 otherwise.
func (c BillingCycle) DiscountFactor() decimal.Decimal {
	if c == BillingYearly {
		return decimal.New(85, -2)
	}
	return decimal.NewFromInt(1)
}

// Annualize returns the yearly cost of a monthly amount.
// Monthly billing yields the plain twelve-month spend.
func Annualize(monthly decimal.Decimal, cycle BillingCycle) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(monthsPerYear)).Mul(cycle.DiscountFactor())
}

// CostPerUnit divides a cost by a usage count.
func CostPerUnit(cost decimal.Decimal, count int) (decimal.Decimal, error) {
	if count <= 0 {
		return decimal.Zero, fmt.Errorf("cost per unit over %d units: %w", count, ErrDivisionUndefined)
	}
	return cost.Div(decimal.NewFromInt(int64(count))), nil
}

// StepOverage charges stepPrice for every full step of usage above threshold.
// Usage at or below the threshold costs nothing.
func StepOverage(usage, threshold, step int, stepPrice int64) decimal.Decimal {
	if usage <= threshold || step <= 0 {
		return decimal.Zero
	}
	steps := (usage - threshold) / step
	return decimal.NewFromInt(int64(steps) * stepPrice)
}
