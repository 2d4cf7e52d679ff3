// Package library implements the member facing operations of the library:
// accounts, the catalog, reservations, renewals, wishlists and the dashboard.
// Loan and fine listings are reconciled against the clock before they are read.
package library

import (
	"library/internal/config"
	"library/internal/fines"
	"library/pkg/storage"
	"time"
)

const (
	defaultPage      = 1
	defaultPageLimit = 10
	maxPageLimit     = 100

	defaultTotalSeats = 100

	defaultMaxDays = 365
)

// Options configure lending rules. These settings are typically derived from
// application configuration.
type Options struct {
	// DefaultDays is the loan duration used when a reservation does not ask for one.
	DefaultDays int
	// MaxPhysicalDays caps the duration of physical book reservations.
	MaxPhysicalDays int
	// MaxDays caps the duration of any reservation.
	MaxDays int
	// RenewalPeriod is added to the due date of a renewed loan.
	RenewalPeriod time.Duration
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultDays:     cfg.Loans.DefaultDays,
		MaxPhysicalDays: cfg.Loans.MaxPhysicalDays,
		MaxDays:         cfg.Loans.MaxDays,
		RenewalPeriod:   cfg.Loans.RenewalPeriod,
		Now:             time.Now,
	}
}

// library is the concrete implementation of the Library interface.
type library struct {
	options    Options
	storage    storage.Storage
	reconciler fines.Reconciler
}

// New creates a Library backed by storage. The reconciler runs before loans
// and fines are listed.
func New(storage storage.Storage, reconciler fines.Reconciler, options Options) Library {
	if options.DefaultDays <= 0 {
		options.DefaultDays = 14
	}
	if options.MaxPhysicalDays <= 0 {
		options.MaxPhysicalDays = 14
	}
	if options.MaxDays <= 0 {
		options.MaxDays = defaultMaxDays
	}
	if options.RenewalPeriod <= 0 {
		options.RenewalPeriod = 14 * 24 * time.Hour
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &library{
		options:    options,
		storage:    storage,
		reconciler: reconciler,
	}
}
