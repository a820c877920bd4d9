// Package engine runs one reporting pass: fetch usage, price every service,
// total the month and project its pace. CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cdn-cost/core/cost"
	"cdn-cost/core/pricing"
	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
	"cdn-cost/internal/logging"
)

// UsageFetcher supplies the usage document for a billing month
type UsageFetcher interface {
	FetchUsage(ctx context.Context, month time.Month, year int) (*types.UsageDocument, error)
}

// Engine prices usage documents
type Engine struct {
	fetcher  UsageFetcher
	table    *pricing.Table
	currency types.Currency
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes an Engine
type Option func(*Engine)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithCurrency sets the currency stamped on reports
func WithCurrency(c types.Currency) Option {
	return func(e *Engine) { e.currency = c }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine
func New(fetcher UsageFetcher, table *pricing.Table, opts ...Option) *Engine {
	e := &Engine{
		fetcher:  fetcher,
		table:    table,
		currency: types.CurrencyUSD,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrGlobal(e.logger)
	return e
}

// Run produces the report for period, projecting the pace as of asOf.
// Any failure aborts the run and no report is returned.
func (e *Engine) Run(ctx context.Context, period types.BillingPeriod, asOf time.Time) (*types.Report, error) {
	if err := period.Validate(); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid billing period", err)
	}

	elapsed, err := cost.ElapsedDays(period, asOf)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := e.logger.With(
		zap.String("run_id", runID),
		zap.String("period", period.String()),
	)
	log.Info("starting cost report",
		zap.String("as_of", asOf.Format("2006-01-02")),
		zap.String("pricing", e.table.Fingerprint()),
	)

	doc, err := e.fetcher.FetchUsage(ctx, period.Month, period.Year)
	if err != nil {
		log.Error("usage fetch failed", zap.Error(err))
		return nil, err
	}
	if !doc.Succeeded() {
		ferr := errors.Fetch(doc.Status)
		if doc.Message != "" {
			ferr.WithContext("message", doc.Message)
		}
		log.Error("usage document not successful", zap.String("status", doc.Status), zap.String("msg", doc.Message))
		return nil, ferr
	}

	services := doc.ServiceList()
	log.Info("fetched usage", zap.Int("services", len(services)))

	calc := cost.NewCalculator(e.table, log)
	results, err := calc.Services(services)
	if err != nil {
		log.Error("pricing failed", zap.Error(err))
		return nil, err
	}

	summary, err := cost.Summarize(results, elapsed, period.DaysIn())
	if err != nil {
		return nil, err
	}

	log.Info("cost report complete",
		zap.String("month_to_date", summary.MonthToDate.StringFixed(2)),
		zap.String("projected", summary.Projected.StringFixed(2)),
		zap.Int("days_elapsed", summary.DaysElapsed),
		zap.Int("days_in_month", summary.DaysInMonth),
	)

	return &types.Report{
		RunID:       runID,
		Period:      period,
		AsOf:        asOf,
		Currency:    e.currency,
		PricingID:   e.table.Fingerprint(),
		GeneratedAt: e.now(),
		Services:    results,
		Summary:     summary,
	}, nil
}
