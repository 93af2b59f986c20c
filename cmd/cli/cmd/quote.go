package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/davidbz/brandcost/internal/api"
	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/observability"
	"github.com/davidbz/brandcost/internal/report"
)

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var (
		vendor string
		flags  usageFlags
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a usage against one vendor",
		Long: `Pick the cheapest plan of a vendor that covers the usage and print
its monthly and yearly cost.

Examples:
  brandcost quote --vendor otterly --prompts 50
  brandcost quote --vendor conductor --prompts 600 --pages 8000 --cycle yearly
  brandcost quote --vendor profound --prompts 350 --companies 3 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cycle, err := domain.ParseBillingCycle(flags.cycle)
			if err != nil {
				return err
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}

			ctx := observability.WithVendor(cmd.Context(), vendor)
			quote, err := engine.Quote(ctx, domain.Vendor(vendor), flags.usage, cycle)
			if err != nil {
				if errors.Is(err, domain.ErrVendorNotFound) {
					return fmt.Errorf("%w (run `brandcost vendors` for the list)", err)
				}
				return err
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), api.NewQuote(quote))
			}
			printQuote(cmd.OutOrStdout(), quote)
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor id")
	_ = cmd.MarkFlagRequired("vendor")
	flags.register(cmd)

	return cmd
}

func printQuote(w io.Writer, q domain.Quote) {
	cur := q.Currency

	fmt.Fprintf(w, "%s - %s plan (%s billing)\n", q.VendorName, q.Tier, q.Cycle)
	fmt.Fprintf(w, "  Monthly cost:    %s%s\n", cur, q.Monthly.String())
	fmt.Fprintf(w, "  Yearly cost:     %s%s\n", cur, q.Yearly.StringFixed(0))
	if q.Savings.IsPositive() {
		fmt.Fprintf(w, "  Yearly savings:  %s%s\n", cur, q.Savings.StringFixed(0))
	}
	switch {
	case q.CostPerUnit.Valid && q.FlatPrompts:
		fmt.Fprintf(w, "  Cost per prompt: %s%s/month (%s)\n", cur, q.CostPerUnit.Decimal.StringFixed(2), report.FlatPromptsNote)
	case q.CostPerUnit.Valid:
		fmt.Fprintf(w, "  Cost per prompt: %s%s/month\n", cur, q.CostPerUnit.Decimal.StringFixed(2))
	default:
		fmt.Fprintln(w, "  Cost per prompt: n/a")
	}
	fmt.Fprintf(w, "  Included:        %d %s\n", q.Included, q.Unit)
	if q.Advice != "" {
		fmt.Fprintf(w, "  Advice:          %s\n", q.Advice)
	}
}
