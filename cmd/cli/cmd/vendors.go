package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidbz/brandcost/internal/api"
)

func newVendorsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vendors",
		Short: "List vendors and their plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			views := api.NewVendors(engine.Vendors(cmd.Context()))
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "VENDOR\tPLAN\tPRICE/MONTH\tINCLUDED\tSUITED FOR")
			for _, v := range views {
				for _, p := range v.Plans {
					fmt.Fprintf(w, "%s\t%s\t%s%d\t%d %s\t%s\n",
						v.Name, p.Name, v.Currency, p.PriceMonthly, p.Included, v.Unit, p.SuitedFor)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nVendor ids: %s\n", vendorIDs(views))
			return nil
		},
	}
}

func vendorIDs(views []api.Vendor) string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return strings.Join(ids, ", ")
}
