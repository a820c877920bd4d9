package cost

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); !got.IsZero() {
		t.Errorf("Aggregate(nil) = %s, want 0", got)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	results := []types.ServiceCost{
		{Name: "a", Total: d("0.2505")},
		{Name: "b", Total: d("0.06")},
		{Name: "c", Total: d("1234.5678")},
		{Name: "d", Total: d("0")},
		{Name: "e", Total: d("0.0000001")},
	}
	want := d("1234.8783001")

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(results), func(a, b int) { results[a], results[b] = results[b], results[a] })
		if got := Aggregate(results); !got.Equal(want) {
			t.Fatalf("Aggregate = %s, want %s", got, want)
		}
	}
}

func TestProjectFullMonthIsIdentity(t *testing.T) {
	for _, mtd := range []string{"0", "0.06", "0.2505", "1234.56789", "99999.99"} {
		for _, days := range []int{28, 29, 30, 31} {
			got, err := Project(d(mtd), days, days)
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if !got.Equal(d(mtd)) {
				t.Errorf("Project(%s, %d, %d) = %s", mtd, days, days, got)
			}
		}
	}
}

func TestProjectExtrapolates(t *testing.T) {
	got, err := Project(d("100"), 10, 30)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !got.Equal(d("300")) {
		t.Errorf("Project = %s, want 300", got)
	}

	got, err = Project(d("10"), 3, 31)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	want := d("10").Mul(decimal.NewFromInt(31)).Div(decimal.NewFromInt(3))
	if !got.Equal(want) {
		t.Errorf("Project = %s, want %s", got, want)
	}
}

func TestProjectZeroDays(t *testing.T) {
	_, err := Project(d("10"), 0, 30)
	if !errors.IsType(err, errors.TypeDivisionByZero) {
		t.Fatalf("expected %s, got %v", errors.TypeDivisionByZero, err)
	}
}

func TestProjectOutOfRange(t *testing.T) {
	for _, tc := range [][2]int{{-1, 30}, {31, 30}, {5, 0}} {
		_, err := Project(d("10"), tc[0], tc[1])
		if !errors.IsType(err, errors.TypeInvalidUsage) {
			t.Errorf("Project(10, %d, %d): expected %s, got %v", tc[0], tc[1], errors.TypeInvalidUsage, err)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2020, time.February); got != 29 {
		t.Errorf("Feb 2020 = %d, want 29", got)
	}
	if got := DaysInMonth(2019, time.February); got != 28 {
		t.Errorf("Feb 2019 = %d, want 28", got)
	}
	if got := DaysInMonth(2020, time.June); got != 30 {
		t.Errorf("June 2020 = %d, want 30", got)
	}
}

func TestElapsedDays(t *testing.T) {
	asOf := time.Date(2020, time.June, 17, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		period  types.BillingPeriod
		want    int
		wantErr bool
	}{
		{"current month", types.BillingPeriod{Year: 2020, Month: time.June}, 17, false},
		{"previous month", types.BillingPeriod{Year: 2020, Month: time.May}, 31, false},
		{"previous leap february", types.BillingPeriod{Year: 2020, Month: time.February}, 29, false},
		{"future month", types.BillingPeriod{Year: 2020, Month: time.July}, 0, true},
		{"next year", types.BillingPeriod{Year: 2021, Month: time.January}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElapsedDays(tt.period, asOf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ElapsedDays error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ElapsedDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []types.ServiceCost{{Total: d("0.06")}, {Total: d("0.2505")}}

	s, err := Summarize(results, 15, 30)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !s.MonthToDate.Equal(d("0.3105")) {
		t.Errorf("MonthToDate = %s", s.MonthToDate)
	}
	if !s.Projected.Equal(d("0.621")) {
		t.Errorf("Projected = %s, want 0.621", s.Projected)
	}
	if s.DaysElapsed != 15 || s.DaysInMonth != 30 {
		t.Errorf("days = %d/%d", s.DaysElapsed, s.DaysInMonth)
	}

	if _, err := Summarize(results, 0, 30); !errors.IsType(err, errors.TypeDivisionByZero) {
		t.Errorf("expected %s, got %v", errors.TypeDivisionByZero, err)
	}
}
