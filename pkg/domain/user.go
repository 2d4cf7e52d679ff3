package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a library member.
// It wraps uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// UserRole distinguishes regular members from staff.
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

// User is a registered library member.
type User struct {
	ID        UserID   `json:"id"`
	StudentID string   `json:"studentId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	// PasswordHash is the bcrypt hash of the member's password. It never leaves the service.
	PasswordHash string `json:"-"`

	// Wishlist holds the books the member has bookmarked, in insertion order.
	Wishlist []BookID `json:"wishlist"`
	// CompletedBooks holds the books the member has finished reading.
	CompletedBooks []BookID `json:"completedBooks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
