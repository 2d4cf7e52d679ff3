package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	loansTable = "loans"
)

func (p *PgSQL) StoreLoans(ctx context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
	if len(loans) == 0 {
		return nil, nil
	}

	rows := make([]PgLoan, len(loans))
	for i := range loans {
		rows[i].FromDomain(loans[i])
	}

	var result []PgLoan
	if err := p.Builder.Insert(loansTable).
		Rows(rows).
		Returning(&PgLoan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store loans into pg: %w", translateErr(err))
	}

	return pgLoansToDomain(result), nil
}

func (p *PgSQL) LoanByID(ctx context.Context, ID domain.LoanID) (*domain.Loan, error) {
	var row PgLoan
	found, err := p.Builder.From(loansTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch loan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// OverdueLoans returns the user's unreturned loans whose due date is strictly
// before now, oldest due date first.
func (p *PgSQL) OverdueLoans(ctx context.Context, userID domain.UserID, now time.Time) ([]domain.Loan, error) {
	var rows []PgLoan
	if err := p.Builder.From(loansTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").In(statusStrings(domain.OpenLoanStatuses())),
			goqu.I("due_date").Lt(now),
		).
		Order(goqu.I("due_date").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch overdue loans from pg: %w", err)
	}

	return pgLoansToDomain(rows), nil
}

// UserLoans returns the user's loans in one of statuses with their books
// attached, nearest due date first.
func (p *PgSQL) UserLoans(ctx context.Context,
	userID domain.UserID,
	statuses []domain.LoanStatus) ([]domain.Loan, error) {
	var rows []PgLoan
	if err := p.Builder.From(loansTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").In(statusStrings(statuses)),
		).
		Order(goqu.I("due_date").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user loans from pg: %w", err)
	}

	bookIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		bookIDs = append(bookIDs, row.BookID)
	}
	books, err := p.booksByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	loans := pgLoansToDomain(rows)
	for i := range loans {
		if book, ok := books[uuid.UUID(loans[i].BookID)]; ok {
			loans[i].Book = &book
		}
	}

	return loans, nil
}

func (p *PgSQL) CountUserLoans(ctx context.Context,
	userID domain.UserID,
	statuses []domain.LoanStatus) (int64, error) {
	count, err := p.Builder.From(loansTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").In(statusStrings(statuses)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user loans: %w", err)
	}

	return count, nil
}

func (p *PgSQL) HasOpenLoan(ctx context.Context,
	userID domain.UserID,
	bookID domain.BookID,
	statuses []domain.LoanStatus) (bool, error) {
	count, err := p.Builder.From(loansTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("book_id").Eq(uuid.UUID(bookID)),
			goqu.I("status").In(statusStrings(statuses)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check open loan: %w", err)
	}

	return count > 0, nil
}

type pgCurrentLoan struct {
	BorrowerName string    `db:"borrower_name"`
	DueDate      time.Time `db:"due_date"`
	Status       string    `db:"status"`
}

// CurrentLoan returns who holds the book through its most recent open loan.
func (p *PgSQL) CurrentLoan(ctx context.Context, bookID domain.BookID) (*domain.CurrentLoan, error) {
	var row pgCurrentLoan
	found, err := p.Builder.From(loansTable).
		Select(
			goqu.I(usersTable+".name").As("borrower_name"),
			goqu.I(loansTable+".due_date").As("due_date"),
			goqu.I(loansTable+".status").As("status"),
		).
		Join(goqu.T(usersTable), goqu.On(
			goqu.I(usersTable+".id").Eq(goqu.I(loansTable+".user_id")),
		)).
		Where(
			goqu.I(loansTable+".book_id").Eq(uuid.UUID(bookID)),
			goqu.I(loansTable+".status").In(statusStrings(domain.OpenLoanStatuses())),
		).
		Order(goqu.I(loansTable+".checkout_date").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch current loan: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &domain.CurrentLoan{
		BorrowerName: row.BorrowerName,
		DueDate:      row.DueDate,
		Status:       domain.LoanStatus(row.Status),
	}, nil
}

// MarkLoanOverdue moves an ACTIVE or RESERVED loan to OVERDUE. Loans in any
// other status are left unchanged.
func (p *PgSQL) MarkLoanOverdue(ctx context.Context, ID domain.LoanID) error {
	_, err := p.Builder.Update(loansTable).
		Set(goqu.Record{
			"status":     string(domain.LoanStatusOverdue),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("status").In(statusStrings([]domain.LoanStatus{
				domain.LoanStatusActive,
				domain.LoanStatusReserved,
			})),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark loan overdue: %w", err)
	}

	return nil
}

// ExtendLoan moves the due date of an open loan forward. It returns nil when
// the loan is closed or dueDate would not push the due date later.
func (p *PgSQL) ExtendLoan(ctx context.Context, ID domain.LoanID, dueDate time.Time) (*domain.Loan, error) {
	var row PgLoan
	found, err := p.Builder.Update(loansTable).
		Set(goqu.Record{
			"due_date":   dueDate,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("status").In(statusStrings(domain.OpenLoanStatuses())),
			goqu.I("due_date").Lt(dueDate),
		).
		Returning(&PgLoan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not extend loan: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func statusStrings(statuses []domain.LoanStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}
