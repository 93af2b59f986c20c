package domain_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/brandcost/internal/domain"
)

// flatRule charges one tier per prompt band and a fixed overage above 50 prompts.
type flatRule struct {
	vendor domain.Vendor
	tiers  []string
	limits []domain.Limit
}

func (r *flatRule) Vendor() domain.Vendor { return r.vendor }

func (r *flatRule) Tiers() []string { return r.tiers }

func (r *flatRule) Limits() []domain.Limit { return r.limits }

func (r *flatRule) Select(usage domain.Usage) domain.Selection {
	if usage.Prompts <= 10 {
		return domain.Selection{Tier: r.tiers[0]}
	}
	return domain.Selection{
		Tier:    r.tiers[len(r.tiers)-1],
		Overage: domain.StepOverage(usage.Prompts, 50, 10, 5),
	}
}

type advisingRule struct {
	flatRule
}

func (r *advisingRule) Advise(domain.Usage) string { return "take the small plan" }

func newCatalog(t *testing.T) *domain.StaticCatalog {
	t.Helper()

	c, err := domain.NewStaticCatalog(
		domain.VendorProfile{
			ID:       "alpha",
			Name:     "Alpha",
			Currency: "$",
			Unit:     "prompts",
			Plans: []domain.Plan{
				{Name: "Small", PriceMonthly: 10, Included: 10},
				{Name: "Large", PriceMonthly: 100, Included: 50},
			},
		},
		domain.VendorProfile{
			ID:       "beta",
			Name:     "Beta",
			Currency: "€",
			Unit:     "pages",
			Plans: []domain.Plan{
				{Name: "Only", PriceMonthly: 40, Included: 1},
			},
		},
	)
	require.NoError(t, err)

	return c
}

func newRules() []domain.TierRule {
	limits := []domain.Limit{domain.PromptsLimit(), {Metric: domain.MetricPages, Min: 0, Max: 5}}

	return []domain.TierRule{
		&flatRule{vendor: "alpha", tiers: []string{"Small", "Large"}, limits: limits},
		&advisingRule{flatRule{vendor: "beta", tiers: []string{"Only"}, limits: limits}},
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("should build with a rule per vendor", func(t *testing.T) {
		engine, err := domain.NewEngine(newCatalog(t), newRules())
		require.NoError(t, err)
		require.NotNil(t, engine)
	})

	t.Run("should reject a nil catalog", func(t *testing.T) {
		_, err := domain.NewEngine(nil, newRules())
		require.Error(t, err)
	})

	t.Run("should reject a vendor without rule", func(t *testing.T) {
		_, err := domain.NewEngine(newCatalog(t), newRules()[:1])
		require.Error(t, err)
		require.Contains(t, err.Error(), "has no pricing rule")
	})

	t.Run("should reject a rule without catalog entry", func(t *testing.T) {
		rules := append(newRules(), &flatRule{
			vendor: "gamma",
			tiers:  []string{"Small"},
			limits: []domain.Limit{domain.PromptsLimit()},
		})

		_, err := domain.NewEngine(newCatalog(t), rules)
		require.ErrorIs(t, err, domain.ErrVendorNotFound)
	})

	t.Run("should reject duplicate rules", func(t *testing.T) {
		rules := append(newRules(), newRules()[0])

		_, err := domain.NewEngine(newCatalog(t), rules)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})

	t.Run("should reject a tier missing from the catalog", func(t *testing.T) {
		rules := newRules()
		rules[0] = &flatRule{
			vendor: "alpha",
			tiers:  []string{"Small", "Huge"},
			limits: []domain.Limit{domain.PromptsLimit()},
		}

		_, err := domain.NewEngine(newCatalog(t), rules)
		require.Error(t, err)
		require.Contains(t, err.Error(), "tier Huge missing")
	})

	t.Run("should reject a prompts limit that admits zero", func(t *testing.T) {
		rules := newRules()
		rules[0] = &flatRule{
			vendor: "alpha",
			tiers:  []string{"Small", "Large"},
			limits: []domain.Limit{{Metric: domain.MetricPrompts, Min: 0, Max: 10}},
		}

		_, err := domain.NewEngine(newCatalog(t), rules)
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 1")
	})

	t.Run("should reject rules without a prompts limit", func(t *testing.T) {
		rules := newRules()
		rules[0] = &flatRule{vendor: "alpha", tiers: []string{"Small"}}

		_, err := domain.NewEngine(newCatalog(t), rules)
		require.Error(t, err)
		require.Contains(t, err.Error(), "prompts limit is required")
	})
}

func TestEngine_Quote(t *testing.T) {
	ctx := context.Background()
	engine, err := domain.NewEngine(newCatalog(t), newRules())
	require.NoError(t, err)

	tests := []struct {
		name    string
		vendor  domain.Vendor
		usage   domain.Usage
		cycle   domain.BillingCycle
		tier    string
		monthly string
		yearly  string
	}{
		{
			name:    "small tier monthly",
			vendor:  "alpha",
			usage:   domain.Usage{Prompts: 10},
			cycle:   domain.BillingMonthly,
			tier:    "Small",
			monthly: "10",
			yearly:  "120",
		},
		{
			name:    "large tier with overage yearly",
			vendor:  "alpha",
			usage:   domain.Usage{Prompts: 75},
			cycle:   domain.BillingYearly,
			tier:    "Large",
			monthly: "110",
			yearly:  "1122",
		},
		{
			name:    "single plan vendor",
			vendor:  "beta",
			usage:   domain.Usage{Prompts: 4, Pages: 5},
			cycle:   domain.BillingMonthly,
			tier:    "Only",
			monthly: "40",
			yearly:  "480",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, quoteErr := engine.Quote(ctx, tt.vendor, tt.usage, tt.cycle)
			require.NoError(t, quoteErr)

			require.Equal(t, tt.tier, quote.Tier)
			require.Equal(t, tt.cycle, quote.Cycle)
			require.Equal(t, tt.usage, quote.Usage)
			require.True(t, decimal.RequireFromString(tt.monthly).Equal(quote.Monthly), "monthly %s", quote.Monthly)
			require.True(t, decimal.RequireFromString(tt.yearly).Equal(quote.Yearly), "yearly %s", quote.Yearly)
		})
	}

	t.Run("should attach advice from advisors only", func(t *testing.T) {
		alpha, quoteErr := engine.Quote(ctx, "alpha", domain.Usage{Prompts: 1}, domain.BillingMonthly)
		require.NoError(t, quoteErr)
		require.Empty(t, alpha.Advice)

		beta, quoteErr := engine.Quote(ctx, "beta", domain.Usage{Prompts: 1}, domain.BillingMonthly)
		require.NoError(t, quoteErr)
		require.Equal(t, "take the small plan", beta.Advice)
		require.Equal(t, "€", beta.Currency)
		require.Equal(t, "pages", beta.Unit)
	})

	t.Run("should compute cost per prompt", func(t *testing.T) {
		quote, quoteErr := engine.Quote(ctx, "beta", domain.Usage{Prompts: 3}, domain.BillingMonthly)
		require.NoError(t, quoteErr)
		require.True(t, quote.CostPerUnit.Valid)
		require.Equal(t, "13.33", quote.CostPerUnit.Decimal.StringFixed(2))
	})

	t.Run("should reject unknown vendors", func(t *testing.T) {
		_, quoteErr := engine.Quote(ctx, "nope", domain.Usage{Prompts: 1}, domain.BillingMonthly)
		require.ErrorIs(t, quoteErr, domain.ErrVendorNotFound)
	})

	t.Run("should reject unknown billing cycles", func(t *testing.T) {
		_, quoteErr := engine.Quote(ctx, "alpha", domain.Usage{Prompts: 1}, "weekly")
		require.ErrorIs(t, quoteErr, domain.ErrInvalidInput)
	})

	t.Run("should reject negative counts in fields the vendor ignores", func(t *testing.T) {
		negatives := []struct {
			field string
			usage domain.Usage
		}{
			{field: "competitors", usage: domain.Usage{Prompts: 20, Competitors: -1}},
			{field: "companies", usage: domain.Usage{Prompts: 20, Companies: -5}},
			{field: "domains", usage: domain.Usage{Prompts: 20, Domains: -1}},
			{field: "pages", usage: domain.Usage{Prompts: 20, Pages: -1000}},
		}

		for _, tt := range negatives {
			t.Run(tt.field, func(t *testing.T) {
				quote, quoteErr := engine.Quote(ctx, "alpha", tt.usage, domain.BillingMonthly)
				require.ErrorIs(t, quoteErr, domain.ErrInvalidInput)
				require.True(t, quote.Monthly.IsZero())

				var inputErr *domain.InputError
				require.ErrorAs(t, quoteErr, &inputErr)
				require.Equal(t, tt.field, inputErr.Field)
				require.Contains(t, inputErr.Error(), "negative")
			})
		}
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, quoteErr := engine.Quote(ctx, "alpha", domain.Usage{Prompts: 0, Pages: 9}, domain.BillingMonthly)
		require.ErrorIs(t, quoteErr, domain.ErrInvalidInput)
		require.Contains(t, quoteErr.Error(), "prompts")
		require.Contains(t, quoteErr.Error(), "pages")
	})
}

func TestEngine_Compare(t *testing.T) {
	ctx := context.Background()
	engine, err := domain.NewEngine(newCatalog(t), newRules())
	require.NoError(t, err)

	t.Run("should order vendors by monthly cost", func(t *testing.T) {
		results, compareErr := engine.Compare(ctx, domain.Usage{Prompts: 20}, domain.BillingMonthly)
		require.NoError(t, compareErr)
		require.Len(t, results, 2)

		require.Equal(t, domain.Vendor("beta"), results[0].Vendor)
		require.NoError(t, results[0].Err)
		require.Equal(t, domain.Vendor("alpha"), results[1].Vendor)
		require.NoError(t, results[1].Err)
	})

	t.Run("should break ties by vendor id", func(t *testing.T) {
		c, catalogErr := domain.NewStaticCatalog(
			domain.VendorProfile{ID: "zeta", Currency: "$", Plans: []domain.Plan{{Name: "P", PriceMonthly: 5}}},
			domain.VendorProfile{ID: "eta", Currency: "$", Plans: []domain.Plan{{Name: "P", PriceMonthly: 5}}},
		)
		require.NoError(t, catalogErr)

		limits := []domain.Limit{domain.PromptsLimit()}
		tied, engineErr := domain.NewEngine(c, []domain.TierRule{
			&flatRule{vendor: "zeta", tiers: []string{"P"}, limits: limits},
			&flatRule{vendor: "eta", tiers: []string{"P"}, limits: limits},
		})
		require.NoError(t, engineErr)

		results, compareErr := tied.Compare(ctx, domain.Usage{Prompts: 1}, domain.BillingMonthly)
		require.NoError(t, compareErr)
		require.Equal(t, domain.Vendor("eta"), results[0].Vendor)
		require.Equal(t, domain.Vendor("zeta"), results[1].Vendor)
	})

	t.Run("should keep rejected vendors last with their error", func(t *testing.T) {
		c, catalogErr := domain.NewStaticCatalog(
			domain.VendorProfile{ID: "strict", Currency: "$", Plans: []domain.Plan{{Name: "P", PriceMonthly: 1}}},
			domain.VendorProfile{ID: "loose", Currency: "$", Plans: []domain.Plan{{Name: "P", PriceMonthly: 500}}},
		)
		require.NoError(t, catalogErr)

		mixed, engineErr := domain.NewEngine(c, []domain.TierRule{
			&flatRule{vendor: "strict", tiers: []string{"P"}, limits: []domain.Limit{
				domain.PromptsLimit(), {Metric: domain.MetricDomains, Min: 1, Max: 2},
			}},
			&flatRule{vendor: "loose", tiers: []string{"P"}, limits: []domain.Limit{domain.PromptsLimit()}},
		})
		require.NoError(t, engineErr)

		results, compareErr := mixed.Compare(ctx, domain.Usage{Prompts: 1}, domain.BillingMonthly)
		require.NoError(t, compareErr)
		require.Len(t, results, 2)

		require.Equal(t, domain.Vendor("loose"), results[0].Vendor)
		require.NoError(t, results[0].Err)
		require.Equal(t, domain.Vendor("strict"), results[1].Vendor)
		require.ErrorIs(t, results[1].Err, domain.ErrInvalidInput)
	})

	t.Run("should reject negative counts for every vendor", func(t *testing.T) {
		results, compareErr := engine.Compare(ctx, domain.Usage{Prompts: 20, Companies: -5}, domain.BillingMonthly)
		require.NoError(t, compareErr)
		require.Len(t, results, 2)
		for _, res := range results {
			require.ErrorIs(t, res.Err, domain.ErrInvalidInput)
		}
	})

	t.Run("should reject unknown billing cycles", func(t *testing.T) {
		_, compareErr := engine.Compare(ctx, domain.Usage{Prompts: 1}, "")
		require.ErrorIs(t, compareErr, domain.ErrInvalidInput)
	})
}

func TestEngine_Vendors(t *testing.T) {
	engine, err := domain.NewEngine(newCatalog(t), newRules())
	require.NoError(t, err)

	profiles := engine.Vendors(context.Background())
	require.Len(t, profiles, 2)
	require.Equal(t, domain.Vendor("alpha"), profiles[0].ID)
	require.Equal(t, domain.Vendor("beta"), profiles[1].ID)
}
