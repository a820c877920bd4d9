package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cdn-cost/core/pricing"
	"cdn-cost/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleReport() *types.Report {
	europe, _ := pricing.Default().Lookup(pricing.RegionEurope)
	usage := types.RegionUsage{RegionID: "europe", BandwidthGB: d("0.5"), Requests: d("1")}

	return &types.Report{
		RunID:    "run-1",
		Period:   types.BillingPeriod{Year: 2020, Month: time.June},
		Currency: types.CurrencyUSD,
		Services: []types.ServiceCost{{
			ServiceID:   "svc1",
			Name:        "Avatar Cache",
			Total:       d("0.06"),
			BandwidthGB: d("0.5"),
			Requests:    d("1"),
			Regions: []types.RegionCost{{
				RegionID:      "europe",
				Usage:         usage,
				Pricing:       europe,
				BandwidthCost: d("0.054"),
				RequestCost:   d("0.006"),
				Total:         d("0.06"),
			}},
		}},
		Summary: types.MonthSummary{
			MonthToDate: d("0.06"),
			Projected:   d("0.06"),
			DaysElapsed: 30,
			DaysInMonth: 30,
		},
	}
}

func TestMoneyAmount(t *testing.T) {
	m, err := NewMoney("en-US", types.CurrencyUSD, "$")
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"0.2505", "$0.25"},
		{"0.055", "$0.06"},
		{"1234.567", "$1,234.57"},
		{"1000000", "$1,000,000.00"},
		{"-12.5", "-$12.50"},
	}

	for _, tt := range tests {
		if got := m.Amount(d(tt.in)); got != tt.want {
			t.Errorf("Amount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyLocaleGrouping(t *testing.T) {
	m, err := NewMoney("de-DE", types.CurrencyEUR, "€")
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}
	if got := m.Amount(d("1234.5")); got != "€1.234,50" {
		t.Errorf("Amount = %q, want €1.234,50", got)
	}
	if m.Currency() != "EUR" {
		t.Errorf("Currency = %s", m.Currency())
	}
}

func TestMoneyRejectsBadInput(t *testing.T) {
	if _, err := NewMoney("not a locale!!", types.CurrencyUSD, "$"); err == nil {
		t.Error("expected error for bad locale")
	}
	if _, err := NewMoney("en-US", "XYZW", "$"); err == nil {
		t.Error("expected error for bad currency")
	}
}

func TestMoneyIntegerAndFixed(t *testing.T) {
	m, _ := NewMoney("en-US", types.CurrencyUSD, "$")
	if got := m.Integer(d("30000")); got != "30,000" {
		t.Errorf("Integer = %q", got)
	}
	if got := m.Fixed(d("0.08"), 3); got != "0.080" {
		t.Errorf("Fixed = %q", got)
	}
}

func TestTextFormatter(t *testing.T) {
	f, err := New(FormatText, Options{Regions: pricing.Default(), ShowRegions: true, NoColor: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Format() != FormatText {
		t.Errorf("Format = %s", f.Format())
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"There are 1 services",
		"Avatar Cache\n=========================",
		"EUROPE\n",
		"    bw:         $0.05  (0.5000 GB * 0.108/0.080/GB)",
		"    requests:   $0.01  (10,000 * 0.006000/10k)",
		"    total:      $0.06",
		"Total 'Avatar Cache' Cost: $0.06",
		"MONTH SPEND TO DATE: $0.06",
		"MONTH TOTAL SPEND PACE: $0.06",
		"Based on 30/30 days in month",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("NoColor output must not contain ANSI escapes")
	}
}

func TestTextFormatterWithoutRegions(t *testing.T) {
	f, _ := New(FormatText, Options{NoColor: true})

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "EUROPE") {
		t.Error("region breakdown printed although ShowRegions is off")
	}
}

func TestJSONFormatter(t *testing.T) {
	f, err := New(FormatJSON, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded types.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not a report: %v", err)
	}
	if !decoded.Summary.MonthToDate.Equal(d("0.06")) {
		t.Errorf("MonthToDate = %s", decoded.Summary.MonthToDate)
	}
	if decoded.Services[0].Regions[0].RegionID != "europe" {
		t.Errorf("unexpected region: %+v", decoded.Services[0].Regions[0])
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New("html", Options{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
