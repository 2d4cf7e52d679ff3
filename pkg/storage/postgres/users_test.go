package postgres_test

import (
	"context"
	"library/pkg/domain"
	"library/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := newUser(t, pgSQL, "Jane Doe")
	require.Equal(t, domain.UserRoleStudent, user.Role)
	require.NotEqual(t, uuid.Nil, uuid.UUID(user.ID))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			StudentID:    "OTHER-1",
			Name:         "Other",
			Email:        user.Email,
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("duplicate student id", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			StudentID:    user.StudentID,
			Name:         "Other",
			Email:        "other@example.com",
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookups", func(t *testing.T) {
		got, err := pgSQL.UserByStudentID(ctx, user.StudentID)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, "hash", got.PasswordHash)

		got, err = pgSQL.UserByEmailOrStudentID(ctx, user.Email, "nobody")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		got, err = pgSQL.UserByStudentID(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)

		count, err := pgSQL.CountUsers(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("wishlist", func(t *testing.T) {
		first := newBook(t, pgSQL, "Zebra", domain.BookTypePhysical)
		second := newBook(t, pgSQL, "Aardvark", domain.BookTypeDigital)

		require.NoError(t, pgSQL.AddToWishlist(ctx, user.ID, first.ID))
		require.NoError(t, pgSQL.AddToWishlist(ctx, user.ID, second.ID))
		// adding twice is a no-op
		require.NoError(t, pgSQL.AddToWishlist(ctx, user.ID, first.ID))

		books, err := pgSQL.WishlistBooks(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, books, 2)
		require.Equal(t, first.ID, books[0].ID)
		require.Equal(t, second.ID, books[1].ID)

		got, err := pgSQL.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.BookID{first.ID, second.ID}, got.Wishlist)
		require.Empty(t, got.CompletedBooks)

		removed, err := pgSQL.RemoveFromWishlist(ctx, user.ID, first.ID)
		require.NoError(t, err)
		require.True(t, removed)

		removed, err = pgSQL.RemoveFromWishlist(ctx, user.ID, first.ID)
		require.NoError(t, err)
		require.False(t, removed)

		require.NoError(t, pgSQL.AddCompletedBook(ctx, user.ID, first.ID))
		got, err = pgSQL.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.BookID{second.ID}, got.Wishlist)
		require.Equal(t, []domain.BookID{first.ID}, got.CompletedBooks)
	})
}
