// Package report renders the downloadable plain-text cost report.
package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/davidbz/brandcost/internal/domain"
)

const (
	dateLayout     = "02/01/2006"
	fileDateLayout = "20060102"
)

// FlatPromptsNote qualifies the per-prompt cost of vendors not priced by prompts.
const FlatPromptsNote = "flat price, prompts do not change it"

// Frequency is how often the monitored prompts are refreshed.
type Frequency string

// Monitoring frequencies.
const (
	FrequencyWeekly   Frequency = "Weekly"
	FrequencyDaily    Frequency = "Daily"
	FrequencyRealTime Frequency = "Real-time"
)

// Frequencies lists the accepted monitoring frequencies, slowest first.
func Frequencies() []Frequency {
	return []Frequency{FrequencyWeekly, FrequencyDaily, FrequencyRealTime}
}

// ParseFrequency matches a frequency label case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies() {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", &domain.InputError{
		Field:  "frequency",
		Reason: fmt.Sprintf("%q is not one of Weekly, Daily, Real-time", s),
	}
}

// Platforms lists the AI answer engines that can be monitored.
func Platforms() []string {
	return []string{"ChatGPT", "Perplexity", "Google AI Overviews", "Gemini", "Copilot"}
}

// DefaultPlatforms is the preselected platform set.
func DefaultPlatforms() []string {
	return []string{"ChatGPT", "Perplexity", "Google AI Overviews"}
}

// ValidatePlatforms rejects unknown or repeated platform names.
func ValidatePlatforms(platforms []string) error {
	known := Platforms()
	seen := make(map[string]bool, len(platforms))

	var errs []error
	for _, p := range platforms {
		switch {
		case !slices.Contains(known, p):
			errs = append(errs, &domain.InputError{Field: "platforms", Reason: fmt.Sprintf("unknown platform %q", p)})
		case seen[p]:
			errs = append(errs, &domain.InputError{Field: "platforms", Reason: fmt.Sprintf("platform %q listed twice", p)})
		}
		seen[p] = true
	}

	return errors.Join(errs...)
}

// Input carries everything printed in a report besides the quote.
type Input struct {
	Brand       string
	Industry    string
	Platforms   []string
	Frequency   Frequency
	GeneratedAt time.Time
}

// Validate checks the presentation fields of the report.
func (in Input) Validate() error {
	if err := ValidatePlatforms(in.Platforms); err != nil {
		return err
	}
	if _, err := ParseFrequency(string(in.Frequency)); err != nil {
		return err
	}
	return nil
}

// FileName returns the download name for a report generated at t.
func FileName(t time.Time) string {
	return "brand_monitoring_report_" + t.Format(fileDateLayout) + ".txt"
}

// Render writes the report for a computed quote.
func Render(in Input, quote domain.Quote) (string, error) {
	if err := ValidatePlatforms(in.Platforms); err != nil {
		return "", err
	}
	frequency, err := ParseFrequency(string(in.Frequency))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	section := func(title string) {
		line("")
		line("%s", title)
		line("%s", strings.Repeat("-", len(title)))
	}

	title := "COST REPORT - AI BRAND MONITORING"
	line("")
	line("%s", title)
	line("%s", strings.Repeat("=", len(title)))
	line("Brand: %s", in.Brand)
	line("Industry: %s", in.Industry)
	line("Date: %s", in.GeneratedAt.Format(dateLayout))

	section("CONFIGURATION")
	line("Vendor: %s", quote.VendorName)
	for _, metric := range quote.Metrics {
		line("%s: %d", metricLabel(metric), quote.Usage.Count(metric))
	}
	line("Platforms: %s", strings.Join(in.Platforms, ", "))
	line("Frequency: %s", frequency)

	cur := quote.Currency
	section("COSTS")
	line("Recommended plan: %s", quote.Tier)
	line("Billing cycle: %s", quote.Cycle)
	line("Monthly cost: %s%s", cur, quote.Monthly.String())
	line("Yearly cost: %s%s", cur, quote.Yearly.StringFixed(0))
	if quote.Savings.IsPositive() {
		line("Yearly savings: %s%s", cur, quote.Savings.StringFixed(0))
	}
	switch {
	case quote.CostPerUnit.Valid && quote.FlatPrompts:
		line("Cost per prompt: %s%s/month (%s)", cur, quote.CostPerUnit.Decimal.StringFixed(2), FlatPromptsNote)
	case quote.CostPerUnit.Valid:
		line("Cost per prompt: %s%s/month", cur, quote.CostPerUnit.Decimal.StringFixed(2))
	default:
		line("Cost per prompt: n/a")
	}

	section("INCLUDED IN PLAN")
	if quote.Unit == string(domain.MetricPrompts) {
		line("%d %s/month", quote.Included, quote.Unit)
	} else {
		line("%d %s", quote.Included, quote.Unit)
	}

	if quote.PricingURL != "" {
		section("PRICING PAGE")
		line("%s", quote.PricingURL)
	}

	return b.String(), nil
}

func metricLabel(m domain.Metric) string {
	switch m {
	case domain.MetricPrompts:
		return "Prompts to monitor"
	case domain.MetricCompetitors:
		return "Competitors tracked"
	case domain.MetricCompanies:
		return "Companies tracked"
	case domain.MetricDomains:
		return "Domains"
	case domain.MetricPages:
		return "Pages monitored"
	default:
		return string(m)
	}
}
