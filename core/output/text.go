package output

import (
	"fmt"
	"io"
	"strings"

	"cdn-cost/core/types"
	"cdn-cost/core/ui"
)

// TextFormatter renders the console report
type TextFormatter struct {
	opts Options
}

// Format returns the format type
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes every service, its regions and the month summary
func (f *TextFormatter) Render(out io.Writer, report *types.Report) error {
	w := ui.NewWriter(out, f.opts.NoColor)
	m := f.opts.Money

	w.Println("There are %d services", len(report.Services))

	for _, svc := range report.Services {
		w.Header(svc.Name)

		if f.opts.ShowRegions {
			for _, rc := range svc.Regions {
				f.renderRegion(w, rc)
			}
		}

		w.Println("")
		w.Println("Total '%s' Cost: %s", svc.Name, m.Amount(svc.Total))
	}

	s := report.Summary
	w.Println("")
	w.Println("MONTH SPEND TO DATE: %s", w.Color(ui.Bold, m.Amount(s.MonthToDate)))
	w.Println("MONTH TOTAL SPEND PACE: %s", w.Color(ui.Bold, m.Amount(s.Projected)))
	w.Println("%s", w.Color(ui.Italic, fmt.Sprintf("Based on %d/%d days in month", s.DaysElapsed, s.DaysInMonth)))

	return w.Err()
}

func (f *TextFormatter) renderRegion(w *ui.Writer, rc types.RegionCost) {
	m := f.opts.Money
	name := rc.RegionID
	if f.opts.Regions != nil {
		name = f.opts.Regions.DisplayName(rc.RegionID)
	}

	w.Println("%s", strings.ToUpper(name))
	w.Println("    bw:         %s  (%s GB * %s/%s/GB)",
		m.Amount(rc.BandwidthCost),
		m.Fixed(rc.Usage.BandwidthGB, 4),
		m.Fixed(rc.Pricing.BandwidthLow, 3),
		m.Fixed(rc.Pricing.BandwidthHigh, 3),
	)
	w.Println("    requests:   %s  (%s * %s/10k)",
		m.Amount(rc.RequestCost),
		m.Integer(rc.Usage.RequestCount()),
		m.Fixed(rc.Pricing.RequestRate, 6),
	)
	w.Println("                ------")
	w.Println("    total:      %s", m.Amount(rc.Total))
}
