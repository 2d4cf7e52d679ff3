package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoanID uniquely identifies a loan.
type LoanID uuid.UUID

// String returns the canonical textual form of the ID.
func (id LoanID) String() string { return uuid.UUID(id).String() }

// LoanStatus represents the lifecycle state of a loan.
//
//	ACTIVE/RESERVED --(due date passed, reconciliation)--> OVERDUE
//	ACTIVE/RESERVED/OVERDUE --(return)--> RETURNED
//
// RETURNED is terminal.
type LoanStatus string

const (
	// LoanStatusActive is a checked out physical book or a borrowed digital one.
	LoanStatusActive LoanStatus = "ACTIVE"
	// LoanStatusReserved is a physical book held for the member.
	LoanStatusReserved LoanStatus = "RESERVED"
	// LoanStatusOverdue is a loan whose due date has passed without a return.
	LoanStatusOverdue LoanStatus = "OVERDUE"
	// LoanStatusReturned is a closed loan.
	LoanStatusReturned LoanStatus = "RETURNED"
)

// OpenLoanStatuses lists every status a loan can have before it is returned.
func OpenLoanStatuses() []LoanStatus {
	return []LoanStatus{LoanStatusActive, LoanStatusReserved, LoanStatusOverdue}
}

// Loan records a member holding, or having held, a book.
type Loan struct {
	ID     LoanID `json:"id"`
	BookID BookID `json:"bookId"`
	UserID UserID `json:"userId"`

	CheckoutDate time.Time `json:"checkoutDate"`
	// DueDate is set on creation and only ever moves forward through renewals.
	DueDate time.Time `json:"dueDate"`
	// ReturnDate is zero until the book comes back.
	ReturnDate time.Time  `json:"returnDate"`
	Status     LoanStatus `json:"status"`

	// Book is populated by queries that join the catalog; nil otherwise.
	Book *Book `json:"book,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOpen reports whether the loan has not been returned yet.
func (l *Loan) IsOpen() bool {
	return l.Status != LoanStatusReturned
}
