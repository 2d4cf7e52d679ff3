package library

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
)

// Dashboard returns the user with the catalog and account counters.
func (l *library) Dashboard(ctx context.Context, userID domain.UserID) (*domain.Dashboard, error) {
	user, err := l.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	var stats domain.DashboardStats
	if stats.TotalBooks, err = l.storage.CountBooks(ctx); err != nil {
		return nil, fmt.Errorf("could not count books: %w", err)
	}
	if stats.TotalMembers, err = l.storage.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("could not count users: %w", err)
	}
	if stats.BorrowedBooks, err = l.storage.CountUserLoans(ctx, userID, []domain.LoanStatus{
		domain.LoanStatusActive,
		domain.LoanStatusOverdue,
	}); err != nil {
		return nil, fmt.Errorf("could not count loans: %w", err)
	}
	if stats.PendingFines, err = l.storage.CountUserFines(ctx, userID, domain.FineStatusPending); err != nil {
		return nil, fmt.Errorf("could not count fines: %w", err)
	}

	return &domain.Dashboard{
		User:  *user,
		Stats: stats,
	}, nil
}

// Status returns the reading room status, creating the default record on
// first use.
func (l *library) Status(ctx context.Context) (*domain.LibraryStatus, error) {
	var status *domain.LibraryStatus
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if status, err = tx.LibraryStatus(ctx); err != nil {
			return fmt.Errorf("could not get library status: %w", err)
		}
		if status != nil {
			return nil
		}

		if status, err = tx.StoreLibraryStatus(ctx, domain.LibraryStatus{
			TotalSeats: defaultTotalSeats,
			IsOpen:     true,
		}); err != nil {
			return fmt.Errorf("could not create library status: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return status, nil
}
