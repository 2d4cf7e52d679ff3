package domain

import (
	"time"

	"github.com/google/uuid"
)

// FineID uniquely identifies a fine.
type FineID uuid.UUID

// String returns the canonical textual form of the ID.
func (id FineID) String() string { return uuid.UUID(id).String() }

// FineStatus represents the payment state of a fine.
type FineStatus string

const (
	// FineStatusPending fines are recomputed on every reconciliation pass.
	FineStatusPending FineStatus = "PENDING"
	// FineStatusPaid fines are frozen.
	FineStatusPaid FineStatus = "PAID"
)

// Fine is the monetary penalty attached to one overdue loan. A loan has at
// most one fine.
type Fine struct {
	ID     FineID `json:"id"`
	LoanID LoanID `json:"loanId"`
	UserID UserID `json:"userId"`

	// Amount is a whole number of currency units.
	Amount int64      `json:"amount"`
	Reason string     `json:"reason"`
	Status FineStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
