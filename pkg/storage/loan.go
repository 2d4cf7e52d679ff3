package storage

import (
	"context"
	"library/pkg/domain"
	"time"
)

// LoanStorage persists loans.
type LoanStorage interface {
	// StoreLoans inserts loans and returns the stored rows.
	StoreLoans(ctx context.Context, loans ...domain.Loan) ([]domain.Loan, error)
	// LoanByID returns a loan, or nil.
	LoanByID(ctx context.Context, ID domain.LoanID) (*domain.Loan, error)
	// OverdueLoans returns the member's ACTIVE, RESERVED and OVERDUE loans
	// whose due date is strictly before now.
	OverdueLoans(ctx context.Context, userID domain.UserID, now time.Time) ([]domain.Loan, error)
	// UserLoans returns the member's loans in one of statuses with the book
	// populated, ordered by due date ascending.
	UserLoans(ctx context.Context, userID domain.UserID, statuses []domain.LoanStatus) ([]domain.Loan, error)
	// CountUserLoans counts the member's loans in one of statuses.
	CountUserLoans(ctx context.Context, userID domain.UserID, statuses []domain.LoanStatus) (int64, error)
	// HasOpenLoan reports whether the member holds the book in one of statuses.
	HasOpenLoan(ctx context.Context,
		userID domain.UserID,
		bookID domain.BookID,
		statuses []domain.LoanStatus) (bool, error)
	// CurrentLoan returns the borrower summary of the book's open loan, or nil.
	CurrentLoan(ctx context.Context, bookID domain.BookID) (*domain.CurrentLoan, error)
	// MarkLoanOverdue moves an ACTIVE or RESERVED loan to OVERDUE.
	MarkLoanOverdue(ctx context.Context, ID domain.LoanID) error
	// ExtendLoan moves the due date of an open loan forward to dueDate and
	// returns the updated row. It returns nil when the loan is closed or
	// dueDate is not later than the current one.
	ExtendLoan(ctx context.Context, ID domain.LoanID, dueDate time.Time) (*domain.Loan, error)
}
