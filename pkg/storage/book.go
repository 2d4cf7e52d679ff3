package storage

import (
	"context"
	"library/pkg/domain"
)

// BookFilter narrows a catalog listing. Zero values disable a criterion.
type BookFilter struct {
	// Search matches case-insensitively against the title or any author.
	Search string
	// Genre matches books tagged with exactly this genre.
	Genre string
	// Status matches the shelf status.
	Status domain.BookStatus
}

// BookPage is one page of a catalog listing.
type BookPage struct {
	Books []domain.Book
	// TotalCount is the number of books matching the filter across all pages.
	TotalCount int64
}

// BookStorage persists the catalog.
type BookStorage interface {
	// StoreBooks inserts books and returns the stored rows.
	StoreBooks(ctx context.Context, books ...domain.Book) ([]domain.Book, error)
	// BookByID returns a book, or nil.
	BookByID(ctx context.Context, ID domain.BookID) (*domain.Book, error)
	// Books returns the page of books matching filter ordered by title.
	Books(ctx context.Context, filter BookFilter, offset, limit uint) (BookPage, error)
	// CountBooks returns the size of the catalog.
	CountBooks(ctx context.Context) (int64, error)
	// ReserveBook flips an AVAILABLE book to RESERVED and reports whether it
	// did. A book in any other status is left unchanged.
	ReserveBook(ctx context.Context, ID domain.BookID) (bool, error)
}
