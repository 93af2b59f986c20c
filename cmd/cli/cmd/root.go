// Package cmd provides the CLI commands for brandcost.
package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/davidbz/brandcost/internal/catalog"
	"github.com/davidbz/brandcost/internal/config"
	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/observability"
	"github.com/davidbz/brandcost/internal/vendors"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type rootOptions struct {
	verbose bool
	format  string
}

// NewRootCmd builds the brandcost command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "brandcost",
		Short: "Estimate the cost of AI brand-monitoring services",
		Long: `brandcost prices AI brand-monitoring plans from a usage profile.

It picks the cheapest fitting plan of each vendor, applies the yearly
billing discount and renders a downloadable cost report.

Examples:
  brandcost vendors
  brandcost quote --vendor otterly --prompts 50 --cycle yearly
  brandcost compare --prompts 120 --competitors 5
  brandcost report --vendor profound --brand Acme --out report.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unknown output format %q", opts.format)
			}

			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			_, err := observability.InitLogger(&config.LogConfig{Level: level, Format: "console"})
			return err
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")

	root.AddCommand(
		newVendorsCmd(opts),
		newQuoteCmd(opts),
		newCompareCmd(opts),
		newReportCmd(),
	)

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func newEngine() (*domain.Engine, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return vendors.NewEngine(c)
}

// usageFlags binds the usage inputs shared by the pricing commands.
type usageFlags struct {
	usage domain.Usage
	cycle string
}

func (u *usageFlags) register(cmd *cobra.Command) {
	defaults := domain.DefaultUsage()
	flags := cmd.Flags()
	flags.IntVar(&u.usage.Prompts, "prompts", 15, "prompts to monitor")
	flags.IntVar(&u.usage.Competitors, "competitors", 3, "competitors tracked")
	flags.IntVar(&u.usage.Companies, "companies", defaults.Companies, "companies tracked (profound)")
	flags.IntVar(&u.usage.Domains, "domains", defaults.Domains, "domains (ubersuggest)")
	flags.IntVar(&u.usage.Pages, "pages", defaults.Pages, "pages monitored (conductor)")
	flags.StringVar(&u.cycle, "cycle", string(domain.BillingMonthly), "billing cycle (monthly, yearly)")
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
