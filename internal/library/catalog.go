package library

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
)

// BookPage is one page of the catalog with its pagination summary.
type BookPage struct {
	Books      []domain.Book
	Page       uint
	Limit      uint
	TotalPages uint
	TotalCount int64
}

// Books lists the catalog ordered by title. Page is 1-based; zero values fall
// back to the first page of ten books.
func (l *library) Books(ctx context.Context, filter storage.BookFilter, page, limit uint) (BookPage, error) {
	if page == 0 {
		page = defaultPage
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	res, err := l.storage.Books(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return BookPage{}, fmt.Errorf("could not get books: %w", err)
	}

	return BookPage{
		Books:      res.Books,
		Page:       page,
		Limit:      limit,
		TotalPages: uint((res.TotalCount + int64(limit) - 1) / int64(limit)), //nolint: gosec
		TotalCount: res.TotalCount,
	}, nil
}

// Book returns a catalog entry. For a physical book that is off the shelf the
// borrower summary of its open loan is returned as well.
func (l *library) Book(ctx context.Context, bookID domain.BookID) (*domain.Book, *domain.CurrentLoan, error) {
	book, err := l.storage.BookByID(ctx, bookID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get book: %w", err)
	}
	if book == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "Book not found")
	}

	if book.Type != domain.BookTypePhysical || book.Status == domain.BookStatusAvailable {
		return book, nil, nil
	}

	current, err := l.storage.CurrentLoan(ctx, bookID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get current loan: %w", err)
	}

	return book, current, nil
}

// Reserve opens a loan of durationDays days. Physical books are held on the
// shelf (RESERVED) and must be AVAILABLE; digital books are lent right away
// (ACTIVE) unless the user already holds them. A duration below one day falls
// back to the default; durations above MaxDays are rejected.
func (l *library) Reserve(ctx context.Context,
	userID domain.UserID,
	bookID domain.BookID,
	durationDays int) (*domain.Loan, error) {
	if durationDays < 1 {
		durationDays = l.options.DefaultDays
	}
	if durationDays > l.options.MaxDays {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Books can only be reserved for up to %d days", l.options.MaxDays)
	}

	var loan *domain.Loan
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		book, err := tx.BookByID(ctx, bookID)
		if err != nil {
			return fmt.Errorf("could not get book: %w", err)
		}
		if book == nil {
			return serrors.With(serrors.ErrNotFound, "Book not found")
		}

		status := domain.LoanStatusActive
		if book.Type == domain.BookTypePhysical {
			status = domain.LoanStatusReserved
			if err := l.holdPhysical(ctx, tx, book, durationDays); err != nil {
				return err
			}
		} else {
			held, err := tx.HasOpenLoan(ctx, userID, bookID, []domain.LoanStatus{
				domain.LoanStatusActive,
				domain.LoanStatusReserved,
			})
			if err != nil {
				return fmt.Errorf("could not check existing loan: %w", err)
			}
			if held {
				return serrors.With(serrors.ErrBadRequest, "You already have this book in your library")
			}
		}

		now := l.options.Now()
		loans, err := tx.StoreLoans(ctx, domain.Loan{
			BookID:       bookID,
			UserID:       userID,
			CheckoutDate: now,
			DueDate:      now.AddDate(0, 0, durationDays),
			Status:       status,
		})
		if err != nil {
			return fmt.Errorf("could not store loan: %w", err)
		}
		loan = &loans[0]

		return nil
	}); err != nil {
		return nil, err
	}

	return loan, nil
}

func (l *library) holdPhysical(ctx context.Context, tx storage.AllStorage, book *domain.Book, durationDays int) error {
	if book.Status != domain.BookStatusAvailable {
		return serrors.With(serrors.ErrBadRequest, "Book is not available for reservation")
	}
	if durationDays > l.options.MaxPhysicalDays {
		return serrors.With(serrors.ErrBadRequest,
			"Physical books can only be reserved for up to %d days", l.options.MaxPhysicalDays)
	}

	// conditional update so a concurrent reservation cannot take the same copy
	reserved, err := tx.ReserveBook(ctx, book.ID)
	if err != nil {
		return fmt.Errorf("could not reserve book: %w", err)
	}
	if !reserved {
		return serrors.With(serrors.ErrBadRequest, "Book is not available for reservation")
	}

	return nil
}
