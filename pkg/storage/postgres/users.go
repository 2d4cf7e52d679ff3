package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable          = "users"
	wishlistTable       = "user_wishlist"
	completedBooksTable = "user_completed_books"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateErr(err))
	}

	return result.ToDomain(), nil
}

// UserByID returns the user together with its wishlist and completed books.
func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	user, err := p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
	if err != nil || user == nil {
		return user, err
	}

	if user.Wishlist, err = p.bookIDs(ctx, wishlistTable, ID); err != nil {
		return nil, err
	}
	if user.CompletedBooks, err = p.bookIDs(ctx, completedBooksTable, ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (p *PgSQL) UserByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("student_id").Eq(studentID))
}

func (p *PgSQL) UserByEmailOrStudentID(ctx context.Context, email, studentID string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Or(
		goqu.I("email").Eq(email),
		goqu.I("student_id").Eq(studentID),
	))
}

func (p *PgSQL) CountUsers(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users: %w", err)
	}

	return count, nil
}

func (p *PgSQL) AddToWishlist(ctx context.Context, userID domain.UserID, bookID domain.BookID) error {
	_, err := p.Builder.Insert(wishlistTable).
		Rows(goqu.Record{
			"user_id": uuid.UUID(userID),
			"book_id": uuid.UUID(bookID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add book to wishlist: %w", err)
	}

	return nil
}

func (p *PgSQL) RemoveFromWishlist(ctx context.Context, userID domain.UserID, bookID domain.BookID) (bool, error) {
	res, err := p.Builder.Delete(wishlistTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("book_id").Eq(uuid.UUID(bookID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not remove book from wishlist: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// WishlistBooks returns the bookmarked books in the order they were added.
func (p *PgSQL) WishlistBooks(ctx context.Context, userID domain.UserID) ([]domain.Book, error) {
	var rows []PgBook
	if err := p.Builder.From(booksTable).
		Select(goqu.T(booksTable).All()).
		Join(goqu.T(wishlistTable), goqu.On(
			goqu.I(booksTable+".id").Eq(goqu.I(wishlistTable+".book_id")),
		)).
		Where(goqu.I(wishlistTable + ".user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I(wishlistTable+".created_at").Asc(), goqu.I(booksTable+".id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch wishlist books: %w", err)
	}

	return pgBooksToDomain(rows)
}

func (p *PgSQL) AddCompletedBook(ctx context.Context, userID domain.UserID, bookID domain.BookID) error {
	_, err := p.Builder.Insert(completedBooksTable).
		Rows(goqu.Record{
			"user_id": uuid.UUID(userID),
			"book_id": uuid.UUID(bookID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add completed book: %w", err)
	}

	return nil
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Order(goqu.I("created_at").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) bookIDs(ctx context.Context, table string, userID domain.UserID) ([]domain.BookID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(table).
		Select("book_id").
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Asc(), goqu.I("book_id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", table, err)
	}

	out := make([]domain.BookID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.BookID(id))
	}

	return out, nil
}
