package storage

import (
	"context"
	"library/pkg/domain"
)

// LibraryStatusStorage persists the reading room record.
type LibraryStatusStorage interface {
	// LibraryStatus returns the record, or nil when none exists.
	LibraryStatus(ctx context.Context) (*domain.LibraryStatus, error)
	// StoreLibraryStatus inserts the record and returns it.
	StoreLibraryStatus(ctx context.Context, status domain.LibraryStatus) (*domain.LibraryStatus, error)
}
