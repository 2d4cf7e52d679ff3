package v1handler

import (
	"context"
	"library/internal/api/specs/v1specs"
	"library/pkg/domain"
	"library/pkg/serrors"

	"github.com/google/uuid"
)

func (h *Handler) MyLoans(ctx context.Context) (*v1specs.LoanListOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	loans, err := h.library.UserLoans(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]v1specs.Loan, len(loans))
	for i := range loans {
		out[i] = DomainLoanToV1Specs(&loans[i])
	}

	return &v1specs.LoanListOK{Data: out}, nil
}

func (h *Handler) RenewLoan(ctx context.Context, req *v1specs.RenewRequest) (*v1specs.RenewOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.LoanId == uuid.Nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Loan ID is required")
	}

	loan, err := h.library.Renew(ctx, userID, domain.LoanID(req.LoanId))
	if err != nil {
		return nil, err
	}

	return &v1specs.RenewOK{
		Message: "Loan renewed successfully",
		Data: v1specs.RenewOKData{
			NewDueDate: loan.DueDate,
			Loan:       DomainLoanToV1Specs(loan),
		},
	}, nil
}

func (h *Handler) MyFines(ctx context.Context) (*v1specs.FineListOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fines, err := h.library.UserFines(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]v1specs.Fine, len(fines))
	for i := range fines {
		out[i] = DomainFineToV1Specs(&fines[i])
	}

	return &v1specs.FineListOK{Data: out}, nil
}
