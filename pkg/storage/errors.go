package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a handle that is
	// already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a
	// transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)
