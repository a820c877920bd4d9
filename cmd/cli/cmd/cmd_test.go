package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cdn-cost/internal/errors"
)

func TestParseAsOf(t *testing.T) {
	now := time.Date(2024, time.March, 9, 15, 0, 0, 0, time.UTC)

	got, err := parseAsOf("", now)
	if err != nil || !got.Equal(now) {
		t.Errorf("parseAsOf(\"\") = %v, %v; want now", got, err)
	}

	got, err = parseAsOf("2024-02-29", now)
	if err != nil {
		t.Fatalf("parseAsOf: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.February || got.Day() != 29 {
		t.Errorf("parseAsOf = %v", got)
	}

	if _, err := parseAsOf("29/02/2024", now); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected %s, got %v", errors.TypeInput, err)
	}
}

func TestResolvePeriod(t *testing.T) {
	asOf := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		month, year int
		wantMonth   time.Month
		wantYear    int
	}{
		{"defaults to as-of month", 0, 0, time.March, 2024},
		{"explicit month", 1, 0, time.January, 2024},
		{"explicit month and year", 12, 2023, time.December, 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolvePeriod(tt.month, tt.year, asOf)
			if p.Month != tt.wantMonth || p.Year != tt.wantYear {
				t.Errorf("resolvePeriod = %s, want %04d-%02d", p, tt.wantYear, int(tt.wantMonth))
			}
		})
	}
}

func TestLoadPricingDefault(t *testing.T) {
	table, err := loadPricing("")
	if err != nil {
		t.Fatalf("loadPricing: %v", err)
	}
	if table.Len() != 8 {
		t.Errorf("expected 8 built-in regions, got %d", table.Len())
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Fastly-Key") != "cli-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{
  "status": "success",
  "data": {"services": {"svc1": {
    "name": "Avatar Cache",
    "europe": {"bandwidth": 0.5, "requests": 1}
  }}}
}`))
	}))
	defer srv.Close()

	t.Setenv("FASTLY_API_KEY", "cli-key")
	t.Setenv("FASTLY_API_URL", srv.URL)

	out, err := execute(t, "report", "--month", "6", "--year", "2020", "--as-of", "2020-06-30", "--no-color")
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	for _, want := range []string{
		"There are 1 services",
		"Total 'Avatar Cache' Cost: $0.06",
		"MONTH SPEND TO DATE: $0.06",
		"MONTH TOTAL SPEND PACE: $0.06",
		"Based on 30/30 days in month",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestPricingCommand(t *testing.T) {
	out, err := execute(t, "pricing", "--no-color")
	if err != nil {
		t.Fatalf("pricing: %v", err)
	}
	for _, want := range []string{"Pricing (built-in)", "usa", "North America", "0.0075", "fingerprint "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "cdn-cost version "+Version) {
		t.Errorf("unexpected output %q", out)
	}
}
