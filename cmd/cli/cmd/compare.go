package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidbz/brandcost/internal/api"
	"github.com/davidbz/brandcost/internal/domain"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var flags usageFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Price a usage against every vendor",
		Long: `Quote every vendor for the same usage, cheapest first. Vendors that
cannot serve the usage are listed last with the reason.

Examples:
  brandcost compare --prompts 120 --competitors 5
  brandcost compare --prompts 800 --cycle yearly --format json`,
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

			results, err := engine.Compare(cmd.Context(), flags.usage, cycle)
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), api.NewComparisons(results))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "VENDOR\tPLAN\tMONTHLY\tYEARLY\tPER PROMPT")
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(w, "%s\t-\t-\t-\t%v\n", res.Vendor, res.Err)
					continue
				}
				q := res.Quote
				perUnit := "n/a"
				if q.CostPerUnit.Valid {
					perUnit = q.Currency + q.CostPerUnit.Decimal.StringFixed(2)
				}
				fmt.Fprintf(w, "%s\t%s\t%s%s\t%s%s\t%s\n",
					q.VendorName, q.Tier,
					q.Currency, q.Monthly.String(),
					q.Currency, q.Yearly.StringFixed(0),
					perUnit)
			}
			return w.Flush()
		},
	}

	flags.register(cmd)

	return cmd
}
