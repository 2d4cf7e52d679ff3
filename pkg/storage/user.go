package storage

import (
	"context"
	"library/pkg/domain"
)

// UserStorage persists members and their wishlists.
type UserStorage interface {
	// StoreUser inserts a member and returns the stored row. It returns
	// ErrDuplicate when the email or student ID is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the member with its wishlist and completed books, or nil.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByStudentID returns the member with the given student ID, or nil.
	UserByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	// UserByEmailOrStudentID returns any member matching either value, or nil.
	UserByEmailOrStudentID(ctx context.Context, email, studentID string) (*domain.User, error)
	// CountUsers returns the number of registered members.
	CountUsers(ctx context.Context) (int64, error)

	// AddToWishlist bookmarks a book for the member. Adding twice is a no-op.
	AddToWishlist(ctx context.Context, userID domain.UserID, bookID domain.BookID) error
	// RemoveFromWishlist drops the bookmark and reports whether one existed.
	RemoveFromWishlist(ctx context.Context, userID domain.UserID, bookID domain.BookID) (bool, error)
	// WishlistBooks returns the bookmarked books in the order they were added.
	WishlistBooks(ctx context.Context, userID domain.UserID) ([]domain.Book, error)
	// AddCompletedBook records that the member finished a book.
	AddCompletedBook(ctx context.Context, userID domain.UserID, bookID domain.BookID) error
}
