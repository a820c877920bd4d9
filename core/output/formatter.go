// Package output renders cost reports.
// Renderers only consume computed reports; they never price anything.
package output

import (
	"fmt"
	"io"

	"cdn-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable console report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *types.Report) error
}

// RegionNamer resolves region display names
type RegionNamer interface {
	DisplayName(regionID string) string
}

// Options configures formatters
type Options struct {
	// Money formats currency amounts and quantities
	Money *Money

	// Regions resolves region labels; nil prints region ids
	Regions RegionNamer

	// ShowRegions prints the per-region breakdown
	ShowRegions bool

	// NoColor disables ANSI styling
	NoColor bool
}

// New returns the formatter for format
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatText, "":
		if opts.Money == nil {
			m, err := NewMoney("en-US", types.CurrencyUSD, "$")
			if err != nil {
				return nil, err
			}
			opts.Money = m
		}
		return &TextFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
