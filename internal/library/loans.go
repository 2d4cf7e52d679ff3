package library

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
)

// Renew pushes the due date of one of the user's loans forward by the renewal
// period. Overdue, returned and past due loans cannot be renewed.
func (l *library) Renew(ctx context.Context, userID domain.UserID, loanID domain.LoanID) (*domain.Loan, error) {
	loan, err := l.storage.LoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("could not get loan: %w", err)
	}
	if loan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Loan not found")
	}
	if loan.UserID != userID {
		return nil, serrors.With(serrors.ErrForbidden, "Unauthorized to renew this loan")
	}

	switch {
	case loan.Status == domain.LoanStatusOverdue:
		return nil, serrors.With(serrors.ErrBadRequest,
			"Cannot renew overdue loans. Please return the book or pay fines first.")
	case loan.Status == domain.LoanStatusReturned:
		return nil, serrors.With(serrors.ErrBadRequest, "This loan has already been returned")
	case loan.DueDate.Before(l.options.Now()):
		// not reconciled yet but already late
		return nil, serrors.With(serrors.ErrBadRequest,
			"Cannot renew overdue loans. Please return the book or pay fines first.")
	}

	renewed, err := l.storage.ExtendLoan(ctx, loanID, loan.DueDate.Add(l.options.RenewalPeriod))
	if err != nil {
		return nil, fmt.Errorf("could not extend loan: %w", err)
	}
	if renewed == nil {
		// returned or renewed by a concurrent request in between
		return nil, serrors.With(serrors.ErrBadRequest, "Loan can no longer be renewed")
	}

	return renewed, nil
}

// UserLoans reconciles the user's overdue loans, then returns every open loan
// with its book, nearest due date first.
func (l *library) UserLoans(ctx context.Context, userID domain.UserID) ([]domain.Loan, error) {
	if err := l.reconciler.Reconcile(ctx, userID); err != nil {
		return nil, fmt.Errorf("could not reconcile fines: %w", err)
	}

	loans, err := l.storage.UserLoans(ctx, userID, domain.OpenLoanStatuses())
	if err != nil {
		return nil, fmt.Errorf("could not get user loans: %w", err)
	}

	return loans, nil
}

// UserFines reconciles the user's overdue loans, then returns the PENDING
// fines, newest first.
func (l *library) UserFines(ctx context.Context, userID domain.UserID) ([]domain.Fine, error) {
	if err := l.reconciler.Reconcile(ctx, userID); err != nil {
		return nil, fmt.Errorf("could not reconcile fines: %w", err)
	}

	fines, err := l.storage.UserFines(ctx, userID, domain.FineStatusPending)
	if err != nil {
		return nil, fmt.Errorf("could not get user fines: %w", err)
	}

	return fines, nil
}
