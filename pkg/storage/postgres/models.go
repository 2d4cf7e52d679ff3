package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"library/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	StudentID    string    `db:"student_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		StudentID:      p.StudentID,
		Name:           p.Name,
		Email:          p.Email,
		Role:           domain.UserRole(p.Role),
		PasswordHash:   p.PasswordHash,
		Wishlist:       []domain.BookID{},
		CompletedBooks: []domain.BookID{},
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	role := user.Role
	if role == "" {
		role = domain.UserRoleStudent
	}

	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		StudentID:    user.StudentID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(role),
	}
}

type PgBook struct {
	ID              uuid.UUID       `db:"id"               goqu:"skipinsert"`
	Title           string          `db:"title"`
	Authors         json.RawMessage `db:"authors"`
	ISBN            sql.NullString  `db:"isbn"`
	Summary         string          `db:"summary"`
	CoverImage      string          `db:"cover_image"`
	Genres          json.RawMessage `db:"genres"`
	PublicationYear int             `db:"publication_year"`
	Type            string          `db:"type"`
	Status          string          `db:"status"`
	RFIDTag         sql.NullString  `db:"rfid_tag"`
	Location        sql.NullString  `db:"location"`
	FileURL         sql.NullString  `db:"file_url"`
	Format          sql.NullString  `db:"format"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBook) ToDomain() (*domain.Book, error) {
	authors := []string{}
	if len(p.Authors) > 0 {
		if err := json.Unmarshal(p.Authors, &authors); err != nil {
			return nil, fmt.Errorf("could not unmarshal book authors: %w", err)
		}
	}
	genres := []string{}
	if len(p.Genres) > 0 {
		if err := json.Unmarshal(p.Genres, &genres); err != nil {
			return nil, fmt.Errorf("could not unmarshal book genres: %w", err)
		}
	}

	return &domain.Book{
		ID:              domain.BookID(p.ID),
		Title:           p.Title,
		Authors:         authors,
		ISBN:            p.ISBN.String,
		Summary:         p.Summary,
		CoverImage:      p.CoverImage,
		Genres:          genres,
		PublicationYear: p.PublicationYear,
		Type:            domain.BookType(p.Type),
		Status:          domain.BookStatus(p.Status),
		RFIDTag:         p.RFIDTag.String,
		Location:        p.Location.String,
		FileURL:         p.FileURL.String,
		Format:          p.Format.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (p *PgBook) FromDomain(book domain.Book) error {
	authors, err := marshalStrings(book.Authors)
	if err != nil {
		return fmt.Errorf("could not marshal book authors: %w", err)
	}
	genres, err := marshalStrings(book.Genres)
	if err != nil {
		return fmt.Errorf("could not marshal book genres: %w", err)
	}
	status := book.Status
	if status == "" {
		status = domain.BookStatusAvailable
	}

	*p = PgBook{
		ID:              uuid.UUID(book.ID),
		Title:           book.Title,
		Authors:         authors,
		ISBN:            nullString(book.ISBN),
		Summary:         book.Summary,
		CoverImage:      book.CoverImage,
		Genres:          genres,
		PublicationYear: book.PublicationYear,
		Type:            string(book.Type),
		Status:          string(status),
		RFIDTag:         nullString(book.RFIDTag),
		Location:        nullString(book.Location),
		FileURL:         nullString(book.FileURL),
		Format:          nullString(book.Format),
	}

	return nil
}

type PgLoan struct {
	ID           uuid.UUID    `db:"id"            goqu:"skipinsert"`
	BookID       uuid.UUID    `db:"book_id"`
	UserID       uuid.UUID    `db:"user_id"`
	CheckoutDate time.Time    `db:"checkout_date"`
	DueDate      time.Time    `db:"due_date"`
	ReturnDate   sql.NullTime `db:"return_date"`
	Status       string       `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLoan) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:           domain.LoanID(p.ID),
		BookID:       domain.BookID(p.BookID),
		UserID:       domain.UserID(p.UserID),
		CheckoutDate: p.CheckoutDate,
		DueDate:      p.DueDate,
		ReturnDate:   p.ReturnDate.Time,
		Status:       domain.LoanStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgLoan) FromDomain(loan domain.Loan) {
	checkout := loan.CheckoutDate
	if checkout.IsZero() {
		checkout = time.Now()
	}

	*p = PgLoan{
		ID:           uuid.UUID(loan.ID),
		BookID:       uuid.UUID(loan.BookID),
		UserID:       uuid.UUID(loan.UserID),
		CheckoutDate: checkout,
		DueDate:      loan.DueDate,
		ReturnDate: sql.NullTime{
			Time:  loan.ReturnDate,
			Valid: !loan.ReturnDate.IsZero(),
		},
		Status: string(loan.Status),
	}
}

type PgFine struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	LoanID uuid.UUID `db:"loan_id"`
	UserID uuid.UUID `db:"user_id"`
	Amount int64     `db:"amount"`
	Reason string    `db:"reason"`
	Status string    `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgFine) ToDomain() *domain.Fine {
	return &domain.Fine{
		ID:        domain.FineID(p.ID),
		LoanID:    domain.LoanID(p.LoanID),
		UserID:    domain.UserID(p.UserID),
		Amount:    p.Amount,
		Reason:    p.Reason,
		Status:    domain.FineStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgFine) FromDomain(fine domain.Fine) {
	status := fine.Status
	if status == "" {
		status = domain.FineStatusPending
	}

	*p = PgFine{
		ID:     uuid.UUID(fine.ID),
		LoanID: uuid.UUID(fine.LoanID),
		UserID: uuid.UUID(fine.UserID),
		Amount: fine.Amount,
		Reason: fine.Reason,
		Status: string(status),
	}
}

type PgLibraryStatus struct {
	ID            int          `db:"id"`
	TotalSeats    int          `db:"total_seats"`
	OccupiedSeats int          `db:"occupied_seats"`
	IsOpen        bool         `db:"is_open"`
	LastResetAt   sql.NullTime `db:"last_reset_at"`
}

func (p *PgLibraryStatus) ToDomain() *domain.LibraryStatus {
	return &domain.LibraryStatus{
		TotalSeats:    p.TotalSeats,
		OccupiedSeats: p.OccupiedSeats,
		IsOpen:        p.IsOpen,
		LastResetAt:   p.LastResetAt.Time,
	}
}

func (p *PgLibraryStatus) FromDomain(status domain.LibraryStatus) {
	*p = PgLibraryStatus{
		ID:            libraryStatusID,
		TotalSeats:    status.TotalSeats,
		OccupiedSeats: status.OccupiedSeats,
		IsOpen:        status.IsOpen,
		LastResetAt: sql.NullTime{
			Time:  status.LastResetAt,
			Valid: !status.LastResetAt.IsZero(),
		},
	}
}

func marshalStrings(values []string) (json.RawMessage, error) {
	if values == nil {
		values = []string{}
	}

	return json.Marshal(values)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func pgBooksToDomain(books []PgBook) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(books))
	for _, book := range books {
		d, err := book.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgLoansToDomain(loans []PgLoan) []domain.Loan {
	out := make([]domain.Loan, 0, len(loans))
	for _, loan := range loans {
		out = append(out, *loan.ToDomain())
	}

	return out
}

func pgFinesToDomain(fines []PgFine) []domain.Fine {
	out := make([]domain.Fine, 0, len(fines))
	for _, fine := range fines {
		out = append(out, *fine.ToDomain())
	}

	return out
}
