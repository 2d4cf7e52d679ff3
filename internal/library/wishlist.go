package library

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
)

// WishlistAction tells whether a toggle added or removed the book.
type WishlistAction string

const (
	WishlistAdded   WishlistAction = "added"
	WishlistRemoved WishlistAction = "removed"
)

// WishlistChange is the outcome of a toggle.
type WishlistChange struct {
	Action WishlistAction
	// Wishlist is the user's wishlist after the change.
	Wishlist []domain.BookID
}

// Message returns the confirmation shown to the user.
func (c WishlistChange) Message() string {
	if c.Action == WishlistAdded {
		return "Book added to wishlist"
	}

	return "Book removed from wishlist"
}

// ToggleWishlist bookmarks the book, or drops the bookmark when present.
func (l *library) ToggleWishlist(ctx context.Context,
	userID domain.UserID,
	bookID domain.BookID) (WishlistChange, error) {
	var change WishlistChange
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "User not found")
		}

		removed, err := tx.RemoveFromWishlist(ctx, userID, bookID)
		if err != nil {
			return fmt.Errorf("could not remove from wishlist: %w", err)
		}
		change.Action = WishlistRemoved
		if !removed {
			book, err := tx.BookByID(ctx, bookID)
			if err != nil {
				return fmt.Errorf("could not get book: %w", err)
			}
			if book == nil {
				return serrors.With(serrors.ErrNotFound, "Book not found")
			}
			if err := tx.AddToWishlist(ctx, userID, bookID); err != nil {
				return fmt.Errorf("could not add to wishlist: %w", err)
			}
			change.Action = WishlistAdded
		}

		updated, err := tx.UserByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		change.Wishlist = updated.Wishlist

		return nil
	}); err != nil {
		return WishlistChange{}, err
	}

	return change, nil
}

// Wishlist returns the bookmarked books in the order they were added.
func (l *library) Wishlist(ctx context.Context, userID domain.UserID) ([]domain.Book, error) {
	user, err := l.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	books, err := l.storage.WishlistBooks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get wishlist: %w", err)
	}

	return books, nil
}
