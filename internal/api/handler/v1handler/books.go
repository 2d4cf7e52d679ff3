package v1handler

import (
	"context"
	"library/internal/api/specs/v1specs"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"

	"github.com/google/uuid"
)

func pageValue(o v1specs.OptInt) uint {
	v, ok := o.Get()
	if !ok || v < 1 {
		return 0
	}

	return uint(v)
}

func (h *Handler) ListBooks(ctx context.Context, params v1specs.ListBooksParams) (*v1specs.BookListOK, error) {
	page, err := h.library.Books(ctx, storage.BookFilter{
		Search: params.Search.Or(""),
		Genre:  params.Genre.Or(""),
		Status: domain.BookStatus(params.Status.Or("")),
	}, pageValue(params.Page), pageValue(params.Limit))
	if err != nil {
		return nil, err
	}

	return &v1specs.BookListOK{
		Data: domainBooksToV1Specs(page.Books),
		Pagination: v1specs.Pagination{
			Page:       int(page.Page),       //nolint: gosec
			Limit:      int(page.Limit),      //nolint: gosec
			TotalPages: int(page.TotalPages), //nolint: gosec
			TotalCount: page.TotalCount,
		},
	}, nil
}

func (h *Handler) GetBook(ctx context.Context, params v1specs.GetBookParams) (*v1specs.BookOK, error) {
	book, current, err := h.library.Book(ctx, domain.BookID(params.BookId))
	if err != nil {
		return nil, err
	}

	detail := v1specs.BookDetail{Book: DomainBookToV1Specs(book)}
	if current != nil {
		detail.CurrentLoan = &v1specs.CurrentLoan{
			BorrowerName: current.BorrowerName,
			DueDate:      current.DueDate,
			Status:       string(current.Status),
		}
	}

	return &v1specs.BookOK{Data: detail}, nil
}

func (h *Handler) ReserveBook(ctx context.Context, req *v1specs.ReserveRequest) (*v1specs.ReserveOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.BookId == uuid.Nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Book ID is required")
	}

	loan, err := h.library.Reserve(ctx, userID, domain.BookID(req.BookId), req.Duration.Or(0))
	if err != nil {
		return nil, err
	}

	return &v1specs.ReserveOK{
		Message: "Book reserved successfully",
		Data:    DomainLoanToV1Specs(loan),
	}, nil
}
