package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"library/pkg/domain"
	"library/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	booksTable = "books"
)

func (p *PgSQL) StoreBooks(ctx context.Context, books ...domain.Book) ([]domain.Book, error) {
	if len(books) == 0 {
		return nil, nil
	}

	rows := make([]PgBook, len(books))
	for i := range books {
		if err := rows[i].FromDomain(books[i]); err != nil {
			return nil, err
		}
	}

	var result []PgBook
	if err := p.Builder.Insert(booksTable).
		Rows(rows).
		Returning(&PgBook{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store books into pg: %w", translateErr(err))
	}

	return pgBooksToDomain(result)
}

func (p *PgSQL) BookByID(ctx context.Context, ID domain.BookID) (*domain.Book, error) {
	var row PgBook
	found, err := p.Builder.From(booksTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch book by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Books returns one page of the catalog ordered by title, along with the
// number of books matching filter.
func (p *PgSQL) Books(ctx context.Context,
	filter storage.BookFilter,
	offset, limit uint) (storage.BookPage, error) {
	ds := p.Builder.From(booksTable).Where(bookFilter(filter)...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.BookPage{}, fmt.Errorf("could not count books: %w", err)
	}

	var rows []PgBook
	if err := ds.Order(goqu.I("title").Asc(), goqu.I("id").Asc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.BookPage{}, fmt.Errorf("could not fetch books from pg: %w", err)
	}

	books, err := pgBooksToDomain(rows)
	if err != nil {
		return storage.BookPage{}, err
	}

	return storage.BookPage{
		Books:      books,
		TotalCount: total,
	}, nil
}

func (p *PgSQL) CountBooks(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(booksTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count books: %w", err)
	}

	return count, nil
}

// ReserveBook flips an AVAILABLE book to RESERVED in a single conditional
// update so two concurrent reservations cannot both succeed.
func (p *PgSQL) ReserveBook(ctx context.Context, ID domain.BookID) (bool, error) {
	res, err := p.Builder.Update(booksTable).
		Set(goqu.Record{
			"status":     string(domain.BookStatusReserved),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("status").Eq(string(domain.BookStatusAvailable)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not reserve book: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) booksByIDs(ctx context.Context, IDs []uuid.UUID) (map[uuid.UUID]domain.Book, error) {
	out := make(map[uuid.UUID]domain.Book, len(IDs))
	if len(IDs) == 0 {
		return out, nil
	}

	var rows []PgBook
	if err := p.Builder.From(booksTable).
		Where(goqu.I("id").In(IDs)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch books by ids: %w", err)
	}

	for _, row := range rows {
		book, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out[row.ID] = *book
	}

	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func bookFilter(filter storage.BookFilter) []exp.Expression {
	var w []exp.Expression
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		w = append(w, goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.L("EXISTS (SELECT 1 FROM jsonb_array_elements_text(authors) AS a(name) WHERE a.name ILIKE ?)",
				pattern),
		))
	}
	if filter.Genre != "" {
		// marshalling a single string cannot fail
		genre, _ := json.Marshal([]string{filter.Genre})
		w = append(w, goqu.L("genres @> ?::jsonb", string(genre)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	return w
}
