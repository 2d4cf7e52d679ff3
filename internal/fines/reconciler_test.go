package fines_test

import (
	"context"
	"errors"
	"library/internal/fines"
	"library/pkg/domain"
	"library/pkg/storage"
	mockstorage "library/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

var (
	due     = time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)
	errBoom = errors.New("boom")
)

func newTestReconciler(t *testing.T, now time.Time) (*gomock.Controller, *mockstorage.MockStorage, fines.Reconciler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r, err := fines.New(st, fines.Options{
		DailyRate: 5,
		Now:       func() time.Time { return now },
	})
	require.NoError(t, err)

	return ctrl, st, r
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func newLoan(userID domain.UserID, status domain.LoanStatus, dueDate time.Time) domain.Loan {
	return domain.Loan{
		ID:      domain.LoanID(uuid.New()),
		BookID:  domain.BookID(uuid.New()),
		UserID:  userID,
		DueDate: dueDate,
		Status:  status,
	}
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int64
	}{
		{name: "one second late", now: due.Add(time.Second), want: 1},
		{name: "exactly one day", now: due.Add(24 * time.Hour), want: 1},
		{name: "one day and a second", now: due.Add(24*time.Hour + time.Second), want: 2},
		{name: "four days", now: time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), want: 4},
		{name: "six days", now: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), want: 6},
		{name: "partial day rounds up", now: due.Add(3*24*time.Hour + time.Minute), want: 4},
		{name: "timezone independent", now: due.In(time.FixedZone("X", 5*3600)).Add(time.Hour), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, fines.DaysOverdue(due, tt.now))
		})
	}
}

func TestDaysOverdue_Monotonic(t *testing.T) {
	prev := int64(0)
	for step := time.Duration(0); step <= 72*time.Hour; step += 37 * time.Minute {
		days := fines.DaysOverdue(due, due.Add(time.Second+step))
		require.GreaterOrEqual(t, days, prev)
		prev = days
	}
}

func TestAmountAndReason(t *testing.T) {
	require.EqualValues(t, 5, fines.Amount(1, 5))
	require.EqualValues(t, 20, fines.Amount(4, 5))
	require.EqualValues(t, 150, fines.Amount(30, 5))
	require.Equal(t, "Overdue by 4 days", fines.Reason(4))
	require.Equal(t, "Overdue by 1 days", fines.Reason(1))
}

func TestReconciler_NewActiveLoan(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusActive, due)

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPendingFine(gomock.Any(), domain.Fine{
			LoanID: loan.ID,
			UserID: userID,
			Amount: 20,
			Reason: "Overdue by 4 days",
			Status: domain.FineStatusPending,
		}).Return(&domain.Fine{LoanID: loan.ID, Amount: 20}, nil)
		tx.EXPECT().MarkLoanOverdue(gomock.Any(), loan.ID).Return(nil)
	})

	require.NoError(t, r.Reconcile(context.Background(), userID))
}

func TestReconciler_RefreshesPendingFine(t *testing.T) {
	now := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusOverdue, due)

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fine domain.Fine) (*domain.Fine, error) {
				require.EqualValues(t, 30, fine.Amount)
				require.Equal(t, "Overdue by 6 days", fine.Reason)

				return &fine, nil
			})
		// already OVERDUE, so no status write
		tx.EXPECT().MarkLoanOverdue(gomock.Any(), gomock.Any()).Times(0)
	})

	require.NoError(t, r.Reconcile(context.Background(), userID))
}

func TestReconciler_PaidFineStillMarksOverdue(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusReserved, due)

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// nil means a PAID fine was left untouched
		tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().MarkLoanOverdue(gomock.Any(), loan.ID).Return(nil)
	})

	require.NoError(t, r.Reconcile(context.Background(), userID))
}

func TestReconciler_NothingOverdue(t *testing.T) {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	_, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return(nil, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, r.Reconcile(context.Background(), userID))
}

func TestReconciler_OverdueLoansError(t *testing.T) {
	_, st, r := newTestReconciler(t, due)
	userID := domain.UserID(uuid.New())

	st.EXPECT().OverdueLoans(gomock.Any(), userID, due).Return(nil, errBoom)

	err := r.Reconcile(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
}

func TestReconciler_StopsAtFirstFailure(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	first := newLoan(userID, domain.LoanStatusActive, due)
	second := newLoan(userID, domain.LoanStatusActive, due.Add(time.Hour))
	third := newLoan(userID, domain.LoanStatusActive, due.Add(2*time.Hour))

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{first, second, third}, nil)
	gomock.InOrder(
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(ctrl)
				tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).Return(&domain.Fine{}, nil)
				tx.EXPECT().MarkLoanOverdue(gomock.Any(), first.ID).Return(nil)

				return cb(tx)
			}),
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(ctrl)
				tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).Return(nil, errBoom)

				return cb(tx)
			}),
	)

	err := r.Reconcile(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, second.ID.String())
}

func TestReconciler_MarkOverdueError(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusActive, due)

	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).Return(&domain.Fine{}, nil)
		tx.EXPECT().MarkLoanOverdue(gomock.Any(), loan.ID).Return(errBoom)
	})

	require.ErrorIs(t, r.Reconcile(context.Background(), userID), errBoom)
}

func TestReconciler_SameInstantSameOutcome(t *testing.T) {
	now := time.Date(2025, 10, 8, 6, 0, 0, 0, time.UTC)
	ctrl, st, r := newTestReconciler(t, now)
	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusOverdue, due)

	var written []domain.Fine
	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil).Times(2)
	for range 2 {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fine domain.Fine) (*domain.Fine, error) {
					written = append(written, fine)

					return &fine, nil
				})
		})
	}

	require.NoError(t, r.Reconcile(context.Background(), userID))
	require.NoError(t, r.Reconcile(context.Background(), userID))
	require.Len(t, written, 2)
	require.Equal(t, written[0], written[1])
	require.EqualValues(t, 25, written[0].Amount)
}

func TestNew_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	userID := domain.UserID(uuid.New())
	// one second late with the default rate
	loan := newLoan(userID, domain.LoanStatusOverdue, time.Now().Add(-time.Second))

	r, err := fines.New(st, fines.Options{})
	require.NoError(t, err)

	st.EXPECT().OverdueLoans(gomock.Any(), userID, gomock.Any()).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fine domain.Fine) (*domain.Fine, error) {
				require.Equal(t, fines.DefaultDailyRate, fine.Amount)

				return &fine, nil
			})
	})

	require.NoError(t, r.Reconcile(context.Background(), userID))
}

func TestReconciler_RecordsMetrics(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r, err := fines.New(st, fines.Options{
		Now:   func() time.Time { return now },
		Meter: provider.Meter("test"),
	})
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	loan := newLoan(userID, domain.LoanStatusActive, due)
	st.EXPECT().OverdueLoans(gomock.Any(), userID, now).Return([]domain.Loan{loan}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPendingFine(gomock.Any(), gomock.Any()).Return(&domain.Fine{}, nil)
		tx.EXPECT().MarkLoanOverdue(gomock.Any(), loan.ID).Return(nil)
	})
	require.NoError(t, r.Reconcile(context.Background(), userID))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	require.EqualValues(t, 1, sums["library_fines_reconcile_passes"])
	require.EqualValues(t, 1, sums["library_fines_loans_marked_overdue"])
	require.EqualValues(t, 1, sums["library_fines_upserted"])
}
