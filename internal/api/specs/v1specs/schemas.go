package v1specs

import (
	"time"

	"github.com/google/uuid"
)

// Ref: #/components/schemas/Error
type Error struct {
	// Machine readable error kind.
	Code string
	// Human readable description.
	Message string
}

// ErrorStatusCode wraps Error with StatusCode and an optional Set-Cookie header.
type ErrorStatusCode struct {
	StatusCode int
	SetCookie  OptString
	Response   Error
}

func (s *ErrorStatusCode) Error() string {
	return s.Response.Message
}

// Ref: #/components/schemas/User
type User struct {
	ID             uuid.UUID
	StudentId      string
	Name           string
	Email          string
	Role           string
	Wishlist       []uuid.UUID
	CompletedBooks []uuid.UUID
}

// Ref: #/components/schemas/Book
type Book struct {
	ID              uuid.UUID
	Title           string
	Authors         []string
	Isbn            OptString
	Summary         string
	CoverImage      string
	Genres          []string
	PublicationYear int
	Type            string
	Status          string
	RfidTag         OptString
	Location        OptString
	FileUrl         OptString
	Format          OptString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ref: #/components/schemas/CurrentLoan
type CurrentLoan struct {
	BorrowerName string
	DueDate      time.Time
	Status       string
}

// Ref: #/components/schemas/BookDetail
type BookDetail struct {
	Book
	// CurrentLoan is encoded as null when nil.
	CurrentLoan *CurrentLoan
}

// Ref: #/components/schemas/Loan
type Loan struct {
	ID           uuid.UUID
	BookId       uuid.UUID
	UserId       uuid.UUID
	CheckoutDate time.Time
	DueDate      time.Time
	ReturnDate   OptDateTime
	Status       string
	// Book is omitted when nil.
	Book *Book
}

// Ref: #/components/schemas/Fine
type Fine struct {
	ID        uuid.UUID
	LoanId    uuid.UUID
	UserId    uuid.UUID
	Amount    int64
	Reason    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref: #/components/schemas/LibraryStatus
type LibraryStatus struct {
	TotalSeats    int
	OccupiedSeats int
	IsOpen        bool
	LastResetAt   OptDateTime
}

// Ref: #/components/schemas/DashboardStats
type DashboardStats struct {
	TotalBooks    int64
	TotalMembers  int64
	BorrowedBooks int64
	PendingFines  int64
}

// Ref: #/components/schemas/Dashboard
type Dashboard struct {
	User  User
	Stats DashboardStats
}

// Ref: #/components/schemas/Pagination
type Pagination struct {
	Page       int
	Limit      int
	TotalPages int
	TotalCount int64
}

// Ref: #/components/schemas/RegisterRequest
type RegisterRequest struct {
	StudentId string
	Name      string
	Email     string
	Password  string
}

// Ref: #/components/schemas/LoginRequest
type LoginRequest struct {
	StudentId string
	Password  string
}

// Ref: #/components/schemas/ReserveRequest
type ReserveRequest struct {
	BookId uuid.UUID
	// Duration in days. Accepts a number or a numeric string; anything else
	// is treated as unset.
	Duration OptInt
}

// Ref: #/components/schemas/RenewRequest
type RenewRequest struct {
	LoanId uuid.UUID
}

// Ref: #/components/schemas/WishlistToggleRequest
type WishlistToggleRequest struct {
	BookId uuid.UUID
}

// ListBooksParams is parameters of listBooks operation.
type ListBooksParams struct {
	Search OptString
	Genre  OptString
	Status OptString
	Page   OptInt
	Limit  OptInt
}

// GetBookParams is parameters of getBook operation.
type GetBookParams struct {
	BookId uuid.UUID
}

// BearerAuth is the token read from the Authorization header.
type BearerAuth struct {
	Token string
}

// CookieAuth is the token read from the session cookie.
type CookieAuth struct {
	APIKey string
}
