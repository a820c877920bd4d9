package output

import (
	"encoding/json"
	"io"

	"cdn-cost/core/types"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the report
func (f *JSONFormatter) Render(w io.Writer, report *types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
