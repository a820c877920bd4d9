// Package cmd - report command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cdn-cost/adapters/fastly"
	"cdn-cost/adapters/metrics"
	"cdn-cost/core/engine"
	"cdn-cost/core/output"
	"cdn-cost/core/types"
	"cdn-cost/internal/config"
	"cdn-cost/internal/errors"
	"cdn-cost/internal/logging"
)

const asOfLayout = "2006-01-02"

var (
	reportMonth       int
	reportYear        int
	reportAsOf        string
	reportFormat      string
	reportPricingFile string
	reportMetricsFile string
	reportNoColor     bool
	reportNoRegions   bool
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Price a month of usage and project its total",
	Long: `Fetch the billing month's usage, price every service per region and
print the month-to-date spend together with the full-month pace.

Without --month and --year the month containing --as-of (default today) is
reported. Past months are projected over all of their days.

Examples:
  cdn-cost report
  cdn-cost report --month 2 --year 2024
  cdn-cost report --as-of 2024-06-10 --format json
  cdn-cost report --pricing pricing.hcl --metrics-file cdn_cost.prom`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "billing month (1-12, default current)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "billing year (default current)")
	reportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "reference date YYYY-MM-DD for the pace projection (default today)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (text, json)")
	reportCmd.Flags().StringVarP(&reportPricingFile, "pricing", "p", "", "HCL pricing file replacing the built-in rates")
	reportCmd.Flags().StringVar(&reportMetricsFile, "metrics-file", "", "write Prometheus gauges to this textfile")
	reportCmd.Flags().BoolVar(&reportNoColor, "no-color", false, "disable ANSI styling")
	reportCmd.Flags().BoolVar(&reportNoRegions, "no-regions", false, "omit the per-region breakdown")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	applyReportFlags(cmd, cfg)

	if cfg.Fastly.APIKey == "" {
		return errors.New(errors.TypeConfig, "no API key: set FASTLY_API_KEY or fastly.api_key")
	}

	asOf, err := parseAsOf(reportAsOf, time.Now())
	if err != nil {
		return err
	}
	period := resolvePeriod(reportMonth, reportYear, asOf)

	table, err := loadPricing(cfg.Pricing.File)
	if err != nil {
		return err
	}

	money, err := output.NewMoney(cfg.Output.Locale, cfg.Output.Currency, cfg.Output.Symbol)
	if err != nil {
		return errors.Config("invalid output locale or currency", err)
	}
	formatter, err := output.New(output.Format(cfg.Output.Format), output.Options{
		Money:       money,
		Regions:     table,
		ShowRegions: cfg.Output.ShowRegions,
		NoColor:     cfg.Output.NoColor,
	})
	if err != nil {
		return errors.Config("invalid output format", err)
	}

	client := fastly.NewClient(&fastly.Config{
		BaseURL:     cfg.Fastly.APIURL,
		APIKey:      cfg.Fastly.APIKey,
		HTTPTimeout: time.Duration(cfg.Fastly.TimeoutSeconds) * time.Second,
	}, fastly.WithLogger(logging.Logger))

	eng := engine.New(client, table,
		engine.WithLogger(logging.Logger),
		engine.WithCurrency(cfg.Output.Currency),
	)

	report, err := eng.Run(context.Background(), period, asOf)
	if err != nil {
		logging.Error("report failed", zap.String("type", string(errors.TypeOf(err))), zap.Error(err))
		return err
	}

	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		return errors.Internal("failed to write report", err)
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.Export(cfg.Metrics.TextfilePath, report); err != nil {
			return err
		}
		logging.Info("wrote metrics", zap.String("path", cfg.Metrics.TextfilePath))
	}
	return nil
}

// applyReportFlags lets explicitly set flags override the configuration
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = reportFormat
	}
	if flags.Changed("pricing") {
		cfg.Pricing.File = reportPricingFile
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.TextfilePath = reportMetricsFile
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = reportNoColor
	}
	if flags.Changed("no-regions") {
		cfg.Output.ShowRegions = !reportNoRegions
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Output.NoColor = true
	}
}

// parseAsOf parses the reference date, defaulting to now
func parseAsOf(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(asOfLayout, value, now.Location())
	if err != nil {
		return time.Time{}, errors.Input(fmt.Sprintf("--as-of must be YYYY-MM-DD, got %q", value))
	}
	return t, nil
}

// resolvePeriod picks the billing month; zero values fall back to asOf
func resolvePeriod(month, year int, asOf time.Time) types.BillingPeriod {
	period := types.PeriodOf(asOf)
	if month != 0 {
		period.Month = time.Month(month)
	}
	if year != 0 {
		period.Year = year
	}
	return period
}
