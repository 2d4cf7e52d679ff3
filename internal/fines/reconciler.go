// Package fines keeps overdue loans and their fines consistent with the clock.
// Reconciliation is run on demand before a member's loans or fines are read,
// so there is no background job to schedule.
package fines

import (
	"context"
	"fmt"
	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/metrics"
	"library/pkg/storage"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultDailyRate is the fine, in whole currency units, per overdue day.
const DefaultDailyRate int64 = 5

const instrumentationName = "library/internal/fines"

// Options configure the reconciler.
type Options struct {
	// DailyRate is charged for every started 24h window past the due date.
	DailyRate int64
	// Now returns the reconciliation instant. Defaults to time.Now.
	Now func() time.Time
	// Meter records reconciliation counters. Defaults to a no-op meter.
	Meter metric.Meter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, meter metric.Meter) Options {
	return Options{
		DailyRate: cfg.Fines.DailyRate,
		Now:       time.Now,
		Meter:     meter,
	}
}

// DaysOverdue returns the number of started 24h windows between due and now.
// Any positive lateness counts as at least one day.
func DaysOverdue(due, now time.Time) int64 {
	elapsed := now.Sub(due)
	if elapsed < 0 {
		elapsed = -elapsed
	}

	return int64(math.Ceil(float64(elapsed) / float64(24*time.Hour)))
}

// Amount returns the fine for days overdue days at rate per day.
func Amount(days, rate int64) int64 {
	return days * rate
}

// Reason returns the human readable explanation stored with a fine.
func Reason(days int64) string {
	return fmt.Sprintf("Overdue by %d days", days)
}

type reconciler struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer

	passes        metric.Int64Counter
	loansUpdated  metric.Int64Counter
	finesUpserted metric.Int64Counter
	duration      metric.Float64Histogram
}

// Reconcile fetches the user's loans that are past due and settles each one in
// its own transaction. Loans handled before a failure stay reconciled.
func (r *reconciler) Reconcile(ctx context.Context, userID domain.UserID) (err error) {
	ctx, span := r.tracer.Start(ctx, "fines.Reconcile",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		attrs := metric.WithAttributes(attribute.String("result", result))
		r.passes.Add(ctx, 1, attrs)
		r.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		span.End()
	}()

	now := r.options.Now()
	loans, err := r.storage.OverdueLoans(ctx, userID, now)
	if err != nil {
		return fmt.Errorf("could not get overdue loans: %w", err)
	}
	span.SetAttributes(attribute.Int("loans.overdue", len(loans)))

	for _, loan := range loans {
		if err := r.reconcileLoan(ctx, loan, now); err != nil {
			return fmt.Errorf("could not reconcile loan %s: %w", loan.ID, err)
		}
	}

	return nil
}

func (r *reconciler) reconcileLoan(ctx context.Context, loan domain.Loan, now time.Time) error {
	days := DaysOverdue(loan.DueDate, now)
	fine := domain.Fine{
		LoanID: loan.ID,
		UserID: loan.UserID,
		Amount: Amount(days, r.options.DailyRate),
		Reason: Reason(days),
		Status: domain.FineStatusPending,
	}

	return r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		upserted, err := tx.UpsertPendingFine(ctx, fine)
		if err != nil {
			return fmt.Errorf("could not upsert fine: %w", err)
		}
		if upserted != nil {
			r.finesUpserted.Add(ctx, 1)
		} else if logger.IsDebug(ctx) {
			logger.Debug(ctx, "fine already paid", zap.Stringer("loanID", loan.ID))
		}

		if loan.Status != domain.LoanStatusOverdue {
			if err := tx.MarkLoanOverdue(ctx, loan.ID); err != nil {
				return fmt.Errorf("could not mark loan overdue: %w", err)
			}
			r.loansUpdated.Add(ctx, 1)
		}

		return nil
	})
}

// New creates a Reconciler backed by storage. Zero option fields fall back to
// their defaults.
func New(storage storage.Storage, options Options) (Reconciler, error) {
	if options.DailyRate <= 0 {
		options.DailyRate = DefaultDailyRate
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Meter == nil {
		options.Meter = noop.NewMeterProvider().Meter(instrumentationName)
	}

	r := &reconciler{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(instrumentationName),
	}

	var err error
	if r.passes, err = options.Meter.Int64Counter(metrics.Namespace+"_fines_reconcile_passes",
		metric.WithDescription("Reconciliation passes by result.")); err != nil {
		return nil, fmt.Errorf("could not create passes counter: %w", err)
	}
	if r.loansUpdated, err = options.Meter.Int64Counter(metrics.Namespace+"_fines_loans_marked_overdue",
		metric.WithDescription("Loans moved to OVERDUE by reconciliation.")); err != nil {
		return nil, fmt.Errorf("could not create loans counter: %w", err)
	}
	if r.finesUpserted, err = options.Meter.Int64Counter(metrics.Namespace+"_fines_upserted",
		metric.WithDescription("Pending fines created or refreshed.")); err != nil {
		return nil, fmt.Errorf("could not create fines counter: %w", err)
	}
	if r.duration, err = options.Meter.Float64Histogram(metrics.Namespace+"_fines_reconcile_duration_seconds",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a reconciliation pass.")); err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return r, nil
}
