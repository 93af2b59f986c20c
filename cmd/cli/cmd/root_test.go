package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/brandcost/cmd/cli/cmd"
	"github.com/davidbz/brandcost/internal/api"
	"github.com/davidbz/brandcost/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestVendorsCommand(t *testing.T) {
	out, err := run(t, "vendors")
	require.NoError(t, err)
	require.Contains(t, out, "Otterly.ai")
	require.Contains(t, out, "Vendor ids: otterly, profound, ubersuggest, conductor")
}

func TestQuoteCommand(t *testing.T) {
	t.Run("should print a yearly quote", func(t *testing.T) {
		out, err := run(t, "quote", "--vendor", "otterly", "--prompts", "50", "--cycle", "yearly")
		require.NoError(t, err)
		require.Contains(t, out, "Otterly.ai - Standard plan (yearly billing)")
		require.Contains(t, out, "Monthly cost:    $189\n")
		require.Contains(t, out, "Yearly cost:     $1928\n")
		require.Contains(t, out, "Yearly savings:  $340\n")
		require.Contains(t, out, "Cost per prompt: $3.78/month\n")
	})

	t.Run("should qualify the per-prompt cost of flat vendors", func(t *testing.T) {
		out, err := run(t, "quote", "--vendor", "ubersuggest", "--prompts", "40", "--domains", "10")
		require.NoError(t, err)
		require.Contains(t, out, "Cost per prompt: $1.98/month (flat price, prompts do not change it)\n")
	})

	t.Run("should print json", func(t *testing.T) {
		out, err := run(t, "quote", "--vendor", "profound", "--prompts", "350", "--companies", "3", "--format", "json")
		require.NoError(t, err)

		var quote api.Quote
		require.NoError(t, json.Unmarshal([]byte(out), &quote))
		require.Equal(t, "profound", quote.Vendor)
		require.InDelta(t, 499.0+200.0+600.0, quote.MonthlyCost, 0.001)
	})

	t.Run("should reject out of range usage", func(t *testing.T) {
		_, err := run(t, "quote", "--vendor", "otterly", "--prompts", "0")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("should reject unknown vendors", func(t *testing.T) {
		_, err := run(t, "quote", "--vendor", "acme")
		require.ErrorIs(t, err, domain.ErrVendorNotFound)
	})

	t.Run("should require a vendor", func(t *testing.T) {
		_, err := run(t, "quote")
		require.Error(t, err)
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		_, err := run(t, "quote", "--vendor", "otterly", "--format", "xml")
		require.Error(t, err)
	})
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "--format", "json")
	require.NoError(t, err)

	var results []api.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)

	order := make([]string, 0, len(results))
	for _, r := range results {
		require.Empty(t, r.Error)
		order = append(order, r.Vendor)
	}
	require.Equal(t, []string{"otterly", "ubersuggest", "profound", "conductor"}, order)
}

func TestReportCommand(t *testing.T) {
	t.Run("should print the report", func(t *testing.T) {
		out, err := run(t, "report", "--vendor", "otterly", "--brand", "Acme", "--frequency", "daily")
		require.NoError(t, err)
		require.Contains(t, out, "COST REPORT - AI BRAND MONITORING")
		require.Contains(t, out, "Brand: Acme\n")
		require.Contains(t, out, "Frequency: Daily\n")
		require.Contains(t, out, "Recommended plan: Lite\n")
	})

	t.Run("should write the report to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")

		out, err := run(t, "report", "--vendor", "conductor", "--pages", "6000", "--out", path)
		require.NoError(t, err)
		require.Contains(t, out, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "Pages monitored: 6000\n")
		require.Contains(t, string(data), "Recommended plan: Enterprise\n")
	})

	t.Run("should reject unknown platforms", func(t *testing.T) {
		_, err := run(t, "report", "--vendor", "otterly", "--platforms", "Bard")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
