package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookID uniquely identifies a catalog entry.
type BookID uuid.UUID

// String returns the canonical textual form of the ID.
func (id BookID) String() string { return uuid.UUID(id).String() }

// BookType tells physical copies apart from digital files.
type BookType string

const (
	BookTypePhysical BookType = "PHYSICAL"
	BookTypeDigital  BookType = "DIGITAL"
)

// BookStatus is the shelf state of a physical book. Digital books stay AVAILABLE.
type BookStatus string

const (
	BookStatusAvailable  BookStatus = "AVAILABLE"
	BookStatusCheckedOut BookStatus = "CHECKED_OUT"
	BookStatusReserved   BookStatus = "RESERVED"
)

// Book is a single catalog entry.
type Book struct {
	ID              BookID     `json:"id"`
	Title           string     `json:"title"`
	Authors         []string   `json:"authors"`
	ISBN            string     `json:"isbn,omitempty"`
	Summary         string     `json:"summary"`
	CoverImage      string     `json:"coverImage"`
	Genres          []string   `json:"genres"`
	PublicationYear int        `json:"publicationYear"`
	Type            BookType   `json:"type"`
	Status          BookStatus `json:"status"`

	// RFIDTag and Location only apply to PHYSICAL books.
	RFIDTag  string `json:"rfidTag,omitempty"`
	Location string `json:"location,omitempty"`

	// FileURL and Format only apply to DIGITAL books.
	FileURL string `json:"fileUrl,omitempty"`
	Format  string `json:"format,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrentLoan summarizes who holds a physical book that is not on the shelf.
type CurrentLoan struct {
	BorrowerName string     `json:"borrowerName"`
	DueDate      time.Time  `json:"dueDate"`
	Status       LoanStatus `json:"status"`
}
