// Package storage defines the persistence contracts of the library service.
// Implementations live in sub-packages (see postgres) and are injected into
// the services at startup.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every domain-specific storage capability.
type AllStorage interface {
	UserStorage
	BookStorage
	LoanStorage
	FineStorage
	LibraryStatusStorage

	// TruncateAll deletes every library record. It is used by the seed command.
	TruncateAll(ctx context.Context) error
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists every change made through the handle.
	Commit() error
	// Rollback discards every change made through the handle.
	Rollback() error
}

// Storage is the non-transactional handle owned by the process. It is created
// once at startup and closed on shutdown.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
