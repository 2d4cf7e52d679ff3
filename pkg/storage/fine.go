package storage

import (
	"context"
	"library/pkg/domain"
)

// FineStorage persists fines. A loan has at most one fine; implementations
// enforce it with a uniqueness constraint on the loan reference.
type FineStorage interface {
	// StoreFines inserts fines and returns the stored rows.
	StoreFines(ctx context.Context, fines ...domain.Fine) ([]domain.Fine, error)
	// UpsertPendingFine atomically creates the loan's fine or, when one exists
	// and is still PENDING, overwrites its amount and reason. A fine in any
	// other status is left untouched and nil is returned.
	UpsertPendingFine(ctx context.Context, fine domain.Fine) (*domain.Fine, error)
	// FineByLoanID returns the loan's fine, or nil.
	FineByLoanID(ctx context.Context, loanID domain.LoanID) (*domain.Fine, error)
	// UserFines returns the member's fines with the given status, newest first.
	UserFines(ctx context.Context, userID domain.UserID, status domain.FineStatus) ([]domain.Fine, error)
	// CountUserFines counts the member's fines with the given status.
	CountUserFines(ctx context.Context, userID domain.UserID, status domain.FineStatus) (int64, error)
}
