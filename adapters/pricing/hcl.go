// Package pricing loads regional rate tables from HCL files.
//
//	region "usa" {
//	  display_name   = "North America"
//	  bandwidth_low  = 0.108
//	  bandwidth_high = 0.08
//	  requests       = 0.0075
//	}
package pricing

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	corepricing "cdn-cost/core/pricing"
	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "region", LabelNames: []string{"id"}},
	},
}

var regionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "display_name"},
		{Name: "bandwidth_low", Required: true},
		{Name: "bandwidth_high", Required: true},
		{Name: "requests", Required: true},
	},
}

// LoadFile reads and parses an HCL pricing file
func LoadFile(path string) (*corepricing.Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read pricing file", err).WithContext("path", path)
	}
	return Parse(src, path)
}

// Parse parses HCL pricing source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*corepricing.Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	entries := make([]types.RegionPricing, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		entry, err := decodeRegion(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, errors.Newf(errors.TypeConfig, "%s: no region blocks", filename)
	}

	table, err := corepricing.NewTable(entries)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "%s", filename)
	}
	return table, nil
}

func decodeRegion(block *hcl.Block) (types.RegionPricing, error) {
	entry := types.RegionPricing{RegionID: block.Labels[0]}

	content, diags := block.Body.Content(regionSchema)
	if diags.HasErrors() {
		return entry, diagError(diags)
	}

	if attr, ok := content.Attributes["display_name"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return entry, diagError(diags)
		}
		if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			return entry, attrError(attr, "must be a string")
		}
		entry.DisplayName = val.AsString()
	}

	var err error
	if entry.BandwidthLow, err = decimalAttr(content.Attributes["bandwidth_low"]); err != nil {
		return entry, err
	}
	if entry.BandwidthHigh, err = decimalAttr(content.Attributes["bandwidth_high"]); err != nil {
		return entry, err
	}
	if entry.RequestRate, err = decimalAttr(content.Attributes["requests"]); err != nil {
		return entry, err
	}
	return entry, nil
}

// decimalAttr converts a number literal without passing through float64
func decimalAttr(attr *hcl.Attribute) (decimal.Decimal, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, diagError(diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return decimal.Zero, attrError(attr, "must be a number")
	}

	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, attrError(attr, err.Error())
	}
	if d.IsNegative() {
		return decimal.Zero, attrError(attr, "must not be negative")
	}
	return d, nil
}

func attrError(attr *hcl.Attribute, msg string) error {
	return errors.Newf(errors.TypeConfig, "%s: %s %s", attr.Range.String(), attr.Name, msg)
}

func diagError(diags hcl.Diagnostics) error {
	var lines []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		prefix := ""
		if diag.Subject != nil {
			prefix = fmt.Sprintf("%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		lines = append(lines, prefix+diag.Summary+": "+diag.Detail)
	}
	return errors.New(errors.TypeConfig, strings.Join(lines, "; "))
}
