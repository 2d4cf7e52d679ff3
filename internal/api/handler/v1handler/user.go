package v1handler

import (
	"context"
	"library/internal/api/specs/v1specs"
	"library/pkg/domain"
	"library/pkg/serrors"

	"github.com/google/uuid"
)

func (h *Handler) GetWishlist(ctx context.Context) (*v1specs.WishlistOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	books, err := h.library.Wishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &v1specs.WishlistOK{Data: domainBooksToV1Specs(books)}, nil
}

func (h *Handler) ToggleWishlist(ctx context.Context,
	req *v1specs.WishlistToggleRequest) (*v1specs.WishlistToggleOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.BookId == uuid.Nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Book ID is required")
	}

	change, err := h.library.ToggleWishlist(ctx, userID, domain.BookID(req.BookId))
	if err != nil {
		return nil, err
	}

	return &v1specs.WishlistToggleOK{
		Action:   string(change.Action),
		Message:  change.Message(),
		Wishlist: bookIDs(change.Wishlist),
	}, nil
}

func (h *Handler) GetDashboard(ctx context.Context) (*v1specs.DashboardOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dashboard, err := h.library.Dashboard(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &v1specs.DashboardOK{Data: v1specs.Dashboard{
		User: DomainUserToV1Specs(&dashboard.User),
		Stats: v1specs.DashboardStats{
			TotalBooks:    dashboard.Stats.TotalBooks,
			TotalMembers:  dashboard.Stats.TotalMembers,
			BorrowedBooks: dashboard.Stats.BorrowedBooks,
			PendingFines:  dashboard.Stats.PendingFines,
		},
	}}, nil
}

func (h *Handler) GetLibraryStatus(ctx context.Context) (*v1specs.LibraryStatusOK, error) {
	status, err := h.library.Status(ctx)
	if err != nil {
		return nil, err
	}

	out := v1specs.LibraryStatus{
		TotalSeats:    status.TotalSeats,
		OccupiedSeats: status.OccupiedSeats,
		IsOpen:        status.IsOpen,
	}
	if !status.LastResetAt.IsZero() {
		out.LastResetAt.SetTo(status.LastResetAt)
	}

	return &v1specs.LibraryStatusOK{Data: out}, nil
}
