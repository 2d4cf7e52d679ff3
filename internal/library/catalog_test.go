package library_test

import (
	"context"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
	mockstorage "library/pkg/storage/mock"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBooks_Pagination(t *testing.T) {
	f := newFixture(t)
	filter := storage.BookFilter{Search: "go"}

	f.storage.EXPECT().Books(gomock.Any(), filter, uint(20), uint(10)).
		Return(storage.BookPage{Books: []domain.Book{{Title: "Go"}}, TotalCount: 21}, nil)

	page, err := f.library.Books(context.Background(), filter, 3, 0)
	require.NoError(t, err)
	require.Equal(t, uint(3), page.Page)
	require.Equal(t, uint(10), page.Limit)
	require.Equal(t, uint(3), page.TotalPages)
	require.EqualValues(t, 21, page.TotalCount)
	require.Len(t, page.Books, 1)
}

func TestBooks_DefaultsAndCap(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().Books(gomock.Any(), storage.BookFilter{}, uint(0), uint(100)).
		Return(storage.BookPage{}, nil)

	page, err := f.library.Books(context.Background(), storage.BookFilter{}, 0, 500)
	require.NoError(t, err)
	require.Equal(t, uint(1), page.Page)
	require.Zero(t, page.TotalPages)
}

func TestBook(t *testing.T) {
	bookID := domain.BookID(uuid.New())

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BookByID(gomock.Any(), bookID).Return(nil, nil)

		_, _, err := f.library.Book(context.Background(), bookID)
		requireKind(t, err, serrors.ErrNotFound, "Book not found")
	})

	t.Run("available physical has no current loan", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BookByID(gomock.Any(), bookID).Return(&domain.Book{
			ID: bookID, Type: domain.BookTypePhysical, Status: domain.BookStatusAvailable,
		}, nil)

		book, current, err := f.library.Book(context.Background(), bookID)
		require.NoError(t, err)
		require.NotNil(t, book)
		require.Nil(t, current)
	})

	t.Run("reserved physical includes borrower", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BookByID(gomock.Any(), bookID).Return(&domain.Book{
			ID: bookID, Type: domain.BookTypePhysical, Status: domain.BookStatusReserved,
		}, nil)
		f.storage.EXPECT().CurrentLoan(gomock.Any(), bookID).Return(&domain.CurrentLoan{
			BorrowerName: "Jane", DueDate: now, Status: domain.LoanStatusReserved,
		}, nil)

		_, current, err := f.library.Book(context.Background(), bookID)
		require.NoError(t, err)
		require.Equal(t, "Jane", current.BorrowerName)
	})
}

func TestReserve_Physical(t *testing.T) {
	userID := domain.UserID(uuid.New())
	bookID := domain.BookID(uuid.New())
	available := &domain.Book{ID: bookID, Type: domain.BookTypePhysical, Status: domain.BookStatusAvailable}

	t.Run("reserves with default duration", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(available, nil)
			tx.EXPECT().ReserveBook(gomock.Any(), bookID).Return(true, nil)
			tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
					require.Len(t, loans, 1)
					require.Equal(t, domain.LoanStatusReserved, loans[0].Status)
					require.Equal(t, now, loans[0].CheckoutDate)
					require.Equal(t, now.Add(14*24*time.Hour), loans[0].DueDate)

					return loans, nil
				})
		})

		loan, err := f.library.Reserve(context.Background(), userID, bookID, 0)
		require.NoError(t, err)
		require.Equal(t, bookID, loan.BookID)
	})

	t.Run("not available", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(&domain.Book{
				ID: bookID, Type: domain.BookTypePhysical, Status: domain.BookStatusCheckedOut,
			}, nil)
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 7)
		requireKind(t, err, serrors.ErrBadRequest, "Book is not available for reservation")
	})

	t.Run("too long", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(available, nil)
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 15)
		requireKind(t, err, serrors.ErrBadRequest, "Physical books can only be reserved for up to 14 days")
	})

	t.Run("taken concurrently", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(available, nil)
			tx.EXPECT().ReserveBook(gomock.Any(), bookID).Return(false, nil)
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 14)
		requireKind(t, err, serrors.ErrBadRequest, "Book is not available for reservation")
	})

	t.Run("book not found", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(nil, nil)
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 3)
		requireKind(t, err, serrors.ErrNotFound, "Book not found")
	})
}

func TestReserve_Digital(t *testing.T) {
	userID := domain.UserID(uuid.New())
	bookID := domain.BookID(uuid.New())
	digital := &domain.Book{ID: bookID, Type: domain.BookTypeDigital, Status: domain.BookStatusAvailable}
	held := []domain.LoanStatus{domain.LoanStatusActive, domain.LoanStatusReserved}

	t.Run("lends for any duration", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(digital, nil)
			tx.EXPECT().HasOpenLoan(gomock.Any(), userID, bookID, held).Return(false, nil)
			tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
					require.Equal(t, domain.LoanStatusActive, loans[0].Status)
					require.Equal(t, now.Add(30*24*time.Hour), loans[0].DueDate)

					return loans, nil
				})
		})

		loan, err := f.library.Reserve(context.Background(), userID, bookID, 30)
		require.NoError(t, err)
		require.Equal(t, domain.LoanStatusActive, loan.Status)
	})

	t.Run("longest allowed duration is due after checkout", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(digital, nil)
			tx.EXPECT().HasOpenLoan(gomock.Any(), userID, bookID, held).Return(false, nil)
			tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
					require.Equal(t, now.AddDate(0, 0, 365), loans[0].DueDate)
					require.True(t, loans[0].DueDate.After(loans[0].CheckoutDate))

					return loans, nil
				})
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 365)
		require.NoError(t, err)
	})

	t.Run("rejects durations past the maximum", func(t *testing.T) {
		for _, duration := range []int{366, 200000, math.MaxInt32} {
			f := newFixture(t)

			loan, err := f.library.Reserve(context.Background(), userID, bookID, duration)
			requireKind(t, err, serrors.ErrBadRequest, "Books can only be reserved for up to 365 days")
			require.Nil(t, loan)
		}
	})

	t.Run("already held", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BookByID(gomock.Any(), bookID).Return(digital, nil)
			tx.EXPECT().HasOpenLoan(gomock.Any(), userID, bookID, held).Return(true, nil)
		})

		_, err := f.library.Reserve(context.Background(), userID, bookID, 30)
		requireKind(t, err, serrors.ErrBadRequest, "You already have this book in your library")
	})
}
