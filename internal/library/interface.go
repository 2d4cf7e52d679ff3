package library

import (
	"context"
	"library/pkg/domain"
	"library/pkg/storage"
)

//go:generate mockgen -package mocklibrary -source=interface.go -destination=mock/mocklibrary.go *
type Library interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, studentID, password string) (*domain.User, error)
	User(ctx context.Context, userID domain.UserID) (*domain.User, error)

	Books(ctx context.Context, filter storage.BookFilter, page, limit uint) (BookPage, error)
	Book(ctx context.Context, bookID domain.BookID) (*domain.Book, *domain.CurrentLoan, error)
	Reserve(ctx context.Context, userID domain.UserID, bookID domain.BookID, durationDays int) (*domain.Loan, error)

	Renew(ctx context.Context, userID domain.UserID, loanID domain.LoanID) (*domain.Loan, error)
	UserLoans(ctx context.Context, userID domain.UserID) ([]domain.Loan, error)
	UserFines(ctx context.Context, userID domain.UserID) ([]domain.Fine, error)

	ToggleWishlist(ctx context.Context, userID domain.UserID, bookID domain.BookID) (WishlistChange, error)
	Wishlist(ctx context.Context, userID domain.UserID) ([]domain.Book, error)

	Dashboard(ctx context.Context, userID domain.UserID) (*domain.Dashboard, error)
	Status(ctx context.Context) (*domain.LibraryStatus, error)
}
