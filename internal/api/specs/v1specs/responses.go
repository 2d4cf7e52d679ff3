package v1specs

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Response is implemented by every successful operation result.
type Response interface {
	encoder
}

// statusCoder is implemented by responses that are not 200 OK.
type statusCoder interface {
	statusCode() int
}

// cookieSetter is implemented by responses carrying a Set-Cookie header.
type cookieSetter interface {
	setCookie() (string, bool)
}

// RegisterCreated is response for register operation.
type RegisterCreated struct {
	Message string
	Data    User
}

func (*RegisterCreated) statusCode() int { return http.StatusCreated }

// LoginOK is response for login operation.
type LoginOK struct {
	SetCookie string
	Message   string
	Data      User
}

func (s *LoginOK) setCookie() (string, bool) { return s.SetCookie, s.SetCookie != "" }

// LogoutOK is response for logout operation.
type LogoutOK struct {
	SetCookie string
	Message   string
}

func (s *LogoutOK) setCookie() (string, bool) { return s.SetCookie, s.SetCookie != "" }

// UserOK is response for me operation.
type UserOK struct {
	Data User
}

// BookListOK is response for listBooks operation.
type BookListOK struct {
	Data       []Book
	Pagination Pagination
}

// BookOK is response for getBook operation.
type BookOK struct {
	Data BookDetail
}

// ReserveOK is response for reserveBook operation.
type ReserveOK struct {
	Message string
	Data    Loan
}

// LoanListOK is response for myLoans operation.
type LoanListOK struct {
	Data []Loan
}

// RenewOKData is the payload of a renewal.
type RenewOKData struct {
	NewDueDate time.Time
	Loan       Loan
}

// RenewOK is response for renewLoan operation.
type RenewOK struct {
	Message string
	Data    RenewOKData
}

// FineListOK is response for myFines operation.
type FineListOK struct {
	Data []Fine
}

// WishlistOK is response for getWishlist operation.
type WishlistOK struct {
	Data []Book
}

// WishlistToggleOK is response for toggleWishlist operation.
type WishlistToggleOK struct {
	Action   string
	Message  string
	Wishlist []uuid.UUID
}

// DashboardOK is response for getDashboard operation.
type DashboardOK struct {
	Data Dashboard
}

// LibraryStatusOK is response for getLibraryStatus operation.
type LibraryStatusOK struct {
	Data LibraryStatus
}
