package library_test

import (
	"context"
	"library/pkg/domain"
	"library/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenew(t *testing.T) {
	userID := domain.UserID(uuid.New())
	loanID := domain.LoanID(uuid.New())
	loan := func(status domain.LoanStatus, due time.Time) *domain.Loan {
		return &domain.Loan{ID: loanID, UserID: userID, Status: status, DueDate: due}
	}

	tests := []struct {
		name string
		loan *domain.Loan
		kind serrors.Kind
		msg  string
	}{
		{name: "not found", kind: serrors.ErrNotFound, msg: "Loan not found"},
		{
			name: "someone else's",
			loan: &domain.Loan{ID: loanID, UserID: domain.UserID(uuid.New()), Status: domain.LoanStatusActive},
			kind: serrors.ErrForbidden,
			msg:  "Unauthorized to renew this loan",
		},
		{
			name: "overdue",
			loan: loan(domain.LoanStatusOverdue, now.Add(-time.Hour)),
			kind: serrors.ErrBadRequest,
			msg:  "Cannot renew overdue loans. Please return the book or pay fines first.",
		},
		{
			name: "returned",
			loan: loan(domain.LoanStatusReturned, now.Add(time.Hour)),
			kind: serrors.ErrBadRequest,
			msg:  "This loan has already been returned",
		},
		{
			name: "past due but not reconciled",
			loan: loan(domain.LoanStatusActive, now.Add(-time.Second)),
			kind: serrors.ErrBadRequest,
			msg:  "Cannot renew overdue loans. Please return the book or pay fines first.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.storage.EXPECT().LoanByID(gomock.Any(), loanID).Return(tt.loan, nil)

			_, err := f.library.Renew(context.Background(), userID, loanID)
			requireKind(t, err, tt.kind, tt.msg)
		})
	}

	t.Run("extends by renewal period", func(t *testing.T) {
		f := newFixture(t)
		due := now.Add(48 * time.Hour)
		newDue := due.Add(14 * 24 * time.Hour)
		f.storage.EXPECT().LoanByID(gomock.Any(), loanID).Return(loan(domain.LoanStatusReserved, due), nil)
		f.storage.EXPECT().ExtendLoan(gomock.Any(), loanID, newDue).Return(loan(domain.LoanStatusReserved, newDue), nil)

		got, err := f.library.Renew(context.Background(), userID, loanID)
		require.NoError(t, err)
		require.Equal(t, newDue, got.DueDate)
	})

	t.Run("changed concurrently", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().LoanByID(gomock.Any(), loanID).Return(loan(domain.LoanStatusActive, now.Add(time.Hour)), nil)
		f.storage.EXPECT().ExtendLoan(gomock.Any(), loanID, gomock.Any()).Return(nil, nil)

		_, err := f.library.Renew(context.Background(), userID, loanID)
		require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
	})
}

func TestUserLoans_ReconcilesFirst(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	gomock.InOrder(
		f.reconciler.EXPECT().Reconcile(gomock.Any(), userID).Return(nil),
		f.storage.EXPECT().UserLoans(gomock.Any(), userID, domain.OpenLoanStatuses()).
			Return([]domain.Loan{{Status: domain.LoanStatusOverdue}}, nil),
	)

	loans, err := f.library.UserLoans(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
}

func TestUserLoans_ReconcileError(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	f.reconciler.EXPECT().Reconcile(gomock.Any(), userID).Return(errBoom)

	_, err := f.library.UserLoans(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestUserFines_ReconcilesFirst(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	gomock.InOrder(
		f.reconciler.EXPECT().Reconcile(gomock.Any(), userID).Return(nil),
		f.storage.EXPECT().UserFines(gomock.Any(), userID, domain.FineStatusPending).
			Return([]domain.Fine{{Amount: 20, Reason: "Overdue by 4 days"}}, nil),
	)

	got, err := f.library.UserFines(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 20, got[0].Amount)
}

func TestUserFines_StorageError(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	f.reconciler.EXPECT().Reconcile(gomock.Any(), userID).Return(nil)
	f.storage.EXPECT().UserFines(gomock.Any(), userID, domain.FineStatusPending).Return(nil, errBoom)

	_, err := f.library.UserFines(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
}
