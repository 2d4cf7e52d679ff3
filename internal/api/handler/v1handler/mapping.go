package v1handler

import (
	"library/internal/api/specs/v1specs"
	"library/pkg/domain"

	"github.com/google/uuid"
)

func optString(v string) v1specs.OptString {
	if v == "" {
		return v1specs.OptString{}
	}

	return v1specs.NewOptString(v)
}

func bookIDs(ids []domain.BookID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func DomainUserToV1Specs(in *domain.User) v1specs.User {
	return v1specs.User{
		ID:             uuid.UUID(in.ID),
		StudentId:      in.StudentID,
		Name:           in.Name,
		Email:          in.Email,
		Role:           string(in.Role),
		Wishlist:       bookIDs(in.Wishlist),
		CompletedBooks: bookIDs(in.CompletedBooks),
	}
}

func DomainBookToV1Specs(in *domain.Book) v1specs.Book {
	return v1specs.Book{
		ID:              uuid.UUID(in.ID),
		Title:           in.Title,
		Authors:         nonNil(in.Authors),
		Isbn:            optString(in.ISBN),
		Summary:         in.Summary,
		CoverImage:      in.CoverImage,
		Genres:          nonNil(in.Genres),
		PublicationYear: in.PublicationYear,
		Type:            string(in.Type),
		Status:          string(in.Status),
		RfidTag:         optString(in.RFIDTag),
		Location:        optString(in.Location),
		FileUrl:         optString(in.FileURL),
		Format:          optString(in.Format),
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
	}
}

func domainBooksToV1Specs(in []domain.Book) []v1specs.Book {
	out := make([]v1specs.Book, len(in))
	for i := range in {
		out[i] = DomainBookToV1Specs(&in[i])
	}

	return out
}

func DomainLoanToV1Specs(in *domain.Loan) v1specs.Loan {
	out := v1specs.Loan{
		ID:           uuid.UUID(in.ID),
		BookId:       uuid.UUID(in.BookID),
		UserId:       uuid.UUID(in.UserID),
		CheckoutDate: in.CheckoutDate,
		DueDate:      in.DueDate,
		Status:       string(in.Status),
	}
	if !in.ReturnDate.IsZero() {
		out.ReturnDate.SetTo(in.ReturnDate)
	}
	if in.Book != nil {
		book := DomainBookToV1Specs(in.Book)
		out.Book = &book
	}

	return out
}

func DomainFineToV1Specs(in *domain.Fine) v1specs.Fine {
	return v1specs.Fine{
		ID:        uuid.UUID(in.ID),
		LoanId:    uuid.UUID(in.LoanID),
		UserId:    uuid.UUID(in.UserID),
		Amount:    in.Amount,
		Reason:    in.Reason,
		Status:    string(in.Status),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}
