package types

import (
	"testing"
	"time"
)

func TestBillingPeriodDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2020, time.June, 30},
		{2021, time.January, 31},
		{2020, time.February, 29},
		{2021, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.December, 31},
	}

	for _, tt := range tests {
		p := BillingPeriod{Year: tt.year, Month: tt.month}
		if got := p.DaysIn(); got != tt.want {
			t.Errorf("%s DaysIn() = %d, want %d", p, got, tt.want)
		}
	}
}

func TestBillingPeriodValidate(t *testing.T) {
	if err := (BillingPeriod{Year: 2020, Month: 13}).Validate(); err == nil {
		t.Error("expected error for month 13")
	}
	if err := (BillingPeriod{Year: 2020, Month: 0}).Validate(); err == nil {
		t.Error("expected error for month 0")
	}
	if err := (BillingPeriod{Year: 2020, Month: time.June}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBillingPeriodBefore(t *testing.T) {
	may := BillingPeriod{Year: 2020, Month: time.May}
	june := BillingPeriod{Year: 2020, Month: time.June}
	lastDec := BillingPeriod{Year: 2019, Month: time.December}

	if !may.Before(june) || june.Before(may) {
		t.Error("May 2020 must precede June 2020")
	}
	if !lastDec.Before(may) {
		t.Error("December 2019 must precede May 2020")
	}
	if june.Before(june) {
		t.Error("a period does not precede itself")
	}
}
