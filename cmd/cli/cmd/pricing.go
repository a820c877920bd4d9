// Package cmd - pricing command
package cmd

import (
	"github.com/spf13/cobra"

	pricingfile "cdn-cost/adapters/pricing"
	"cdn-cost/core/output"
	"cdn-cost/core/pricing"
	"cdn-cost/core/ui"
	"cdn-cost/internal/config"
	"cdn-cost/internal/errors"
)

var (
	pricingFile    string
	pricingNoColor bool
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the active rate table",
	Long: `Print the per-region rates used to price usage.

Below 1 GB a region's monthly traffic is charged entirely at the first
rate. From 1 GB on, the first GB is charged at the first rate and the rest
at the second. Requests are charged per 10,000.

Examples:
  cdn-cost pricing
  cdn-cost pricing --file pricing.hcl`,
	Args: cobra.NoArgs,
	RunE: runPricing,
}

func init() {
	pricingCmd.Flags().StringVar(&pricingFile, "file", "", "HCL pricing file (default built-in rates)")
	pricingCmd.Flags().BoolVar(&pricingNoColor, "no-color", false, "disable ANSI styling")
}

func runPricing(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	path := cfg.Pricing.File
	if cmd.Flags().Changed("file") {
		path = pricingFile
	}

	table, err := loadPricing(path)
	if err != nil {
		return err
	}

	money, err := output.NewMoney(cfg.Output.Locale, cfg.Output.Currency, cfg.Output.Symbol)
	if err != nil {
		return errors.Config("invalid output locale or currency", err)
	}

	w := ui.NewWriter(cmd.OutOrStdout(), pricingNoColor || cfg.Output.NoColor)
	source := "built-in"
	if path != "" {
		source = path
	}
	w.Header("Pricing (" + source + ")")

	t := w.NewTable("REGION", "NAME", "BW <= 1GB", "BW > 1GB", "PER 10K REQ")
	for _, e := range table.Entries() {
		t.AddRow(
			e.RegionID,
			table.DisplayName(e.RegionID),
			money.Fixed(e.BandwidthLow, 3),
			money.Fixed(e.BandwidthHigh, 3),
			money.Fixed(e.RequestRate, 4),
		)
	}
	t.Render()

	w.Println("")
	w.Println("%s", w.Color(ui.Dim, "fingerprint "+table.Fingerprint()))
	return w.Err()
}

// loadPricing returns the built-in table, or the table in path when set
func loadPricing(path string) (*pricing.Table, error) {
	if path == "" {
		return pricing.Default(), nil
	}
	return pricingfile.LoadFile(path)
}
