package library

import (
	"context"
	"errors"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	bcryptCost        = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	StudentID string
	Name      string
	Email     string
	Password  string
}

// normalize trims surrounding whitespace from identifying fields. Passwords
// are kept verbatim.
func (in RegisterInput) normalize() RegisterInput {
	in.StudentID = strings.TrimSpace(in.StudentID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	return in
}

func (in RegisterInput) validate() error {
	if in.StudentID == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return serrors.With(serrors.ErrBadRequest, "All fields are required")
	}
	if !emailPattern.MatchString(in.Email) {
		return serrors.With(serrors.ErrBadRequest, "Invalid email format")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "Password must be at least %d characters long", minPasswordLength)
	}

	return nil
}

// Register creates a student account. Email and student ID must be unused.
func (l *library) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := l.storage.UserByEmailOrStudentID(ctx, input.Email, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("could not look up existing user: %w", err)
	}
	if err := conflictWith(existing, input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := l.storage.StoreUser(ctx, domain.User{
		StudentID:    input.StudentID,
		Name:         input.Name,
		Email:        input.Email,
		Role:         domain.UserRoleStudent,
		PasswordHash: string(hash),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// lost a race with a concurrent registration
		return nil, serrors.Wrap(serrors.ErrConflict, err, "Email or student ID already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func conflictWith(existing *domain.User, input RegisterInput) error {
	switch {
	case existing == nil:
		return nil
	case existing.Email == input.Email:
		return serrors.With(serrors.ErrConflict, "Email already registered")
	case existing.StudentID == input.StudentID:
		return serrors.With(serrors.ErrConflict, "Student ID already registered")
	default:
		return nil
	}
}

// Login checks the password of the account with studentID.
func (l *library) Login(ctx context.Context, studentID, password string) (*domain.User, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Student ID and password are required.")
	}

	user, err := l.storage.UserByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "Invalid credentials.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid credentials.")
	}

	return user, nil
}

// User returns the account with its wishlist and completed books.
func (l *library) User(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := l.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	return user, nil
}
