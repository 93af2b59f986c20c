package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/observability"
	"github.com/davidbz/brandcost/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		vendor    string
		brand     string
		industry  string
		platforms []string
		frequency string
		out       string
		flags     usageFlags
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the plain-text cost report",
		Long: `Render the cost report of one vendor. The report is printed unless
--out names a file; --out - keeps stdout and an empty --out= writes the
default brand_monitoring_report_YYYYMMDD.txt.

Examples:
  brandcost report --vendor otterly --brand "MyBrand Ltd" --industry SaaS
  brandcost report --vendor ubersuggest --domains 3 --platforms ChatGPT,Gemini --out report.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cycle, err := domain.ParseBillingCycle(flags.cycle)
			if err != nil {
				return err
			}

			input := report.Input{
				Brand:       brand,
				Industry:    industry,
				Platforms:   platforms,
				Frequency:   report.Frequency(frequency),
				GeneratedAt: time.Now(),
			}
			if err = input.Validate(); err != nil {
				return err
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}

			ctx := observability.WithVendor(cmd.Context(), vendor)
			quote, err := engine.Quote(ctx, domain.Vendor(vendor), flags.usage, cycle)
			if err != nil {
				return err
			}

			text, err := report.Render(input, quote)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if out == "" {
				out = report.FileName(input.GeneratedAt)
			}
			if err := os.WriteFile(out, []byte(text), 0o600); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			observability.FromContext(ctx).Debug("report written", observability.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor id")
	_ = cmd.MarkFlagRequired("vendor")
	cmd.Flags().StringVar(&brand, "brand", "MyBrand", "brand name")
	cmd.Flags().StringVar(&industry, "industry", "", "industry")
	cmd.Flags().StringSliceVar(&platforms, "platforms", report.DefaultPlatforms(), "monitored platforms")
	cmd.Flags().StringVar(&frequency, "frequency", string(report.FrequencyWeekly), "monitoring frequency (Weekly, Daily, Real-time)")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout, empty for the default file name")
	flags.register(cmd)

	return cmd
}
