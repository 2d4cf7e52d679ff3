package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	finesTable = "fines"
)

func (p *PgSQL) StoreFines(ctx context.Context, fines ...domain.Fine) ([]domain.Fine, error) {
	if len(fines) == 0 {
		return nil, nil
	}

	rows := make([]PgFine, len(fines))
	for i := range fines {
		rows[i].FromDomain(fines[i])
	}

	var result []PgFine
	if err := p.Builder.Insert(finesTable).
		Rows(rows).
		Returning(&PgFine{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store fines into pg: %w", translateErr(err))
	}

	return pgFinesToDomain(result), nil
}

// UpsertPendingFine inserts the loan's fine or refreshes the amount and reason
// of an existing PENDING one in a single statement. The unique index on
// loan_id makes concurrent passes converge on one row. A PAID fine is left
// as is and nil is returned.
func (p *PgSQL) UpsertPendingFine(ctx context.Context, fine domain.Fine) (*domain.Fine, error) {
	var row PgFine
	row.FromDomain(fine)
	row.Status = string(domain.FineStatusPending)

	var result PgFine
	found, err := p.Builder.Insert(finesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("loan_id", goqu.Record{
			"amount":     goqu.L("EXCLUDED.amount"),
			"reason":     goqu.L("EXCLUDED.reason"),
			"updated_at": goqu.L("clock_timestamp()"),
		}).Where(goqu.I(finesTable+".status").Eq(string(domain.FineStatusPending)))).
		Returning(&PgFine{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not upsert fine: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) FineByLoanID(ctx context.Context, loanID domain.LoanID) (*domain.Fine, error) {
	var row PgFine
	found, err := p.Builder.From(finesTable).
		Where(goqu.I("loan_id").Eq(uuid.UUID(loanID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch fine by loan id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserFines(ctx context.Context,
	userID domain.UserID,
	status domain.FineStatus) ([]domain.Fine, error) {
	var rows []PgFine
	if err := p.Builder.From(finesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").Eq(string(status)),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user fines from pg: %w", err)
	}

	return pgFinesToDomain(rows), nil
}

func (p *PgSQL) CountUserFines(ctx context.Context,
	userID domain.UserID,
	status domain.FineStatus) (int64, error) {
	count, err := p.Builder.From(finesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").Eq(string(status)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user fines: %w", err)
	}

	return count, nil
}
