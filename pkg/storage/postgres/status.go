package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	libraryStatusTable = "library_status"
	// libraryStatusID is the primary key of the only library_status row.
	libraryStatusID = 1
)

func (p *PgSQL) LibraryStatus(ctx context.Context) (*domain.LibraryStatus, error) {
	var row PgLibraryStatus
	found, err := p.Builder.From(libraryStatusTable).
		Where(goqu.I("id").Eq(libraryStatusID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch library status: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreLibraryStatus inserts the status row. When another caller created it
// first, the existing row is returned unchanged.
func (p *PgSQL) StoreLibraryStatus(ctx context.Context, status domain.LibraryStatus) (*domain.LibraryStatus, error) {
	var row PgLibraryStatus
	row.FromDomain(status)

	var result PgLibraryStatus
	found, err := p.Builder.Insert(libraryStatusTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgLibraryStatus{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store library status: %w", err)
	}
	if !found {
		return p.LibraryStatus(ctx)
	}

	return result.ToDomain(), nil
}
