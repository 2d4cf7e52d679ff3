package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"library/pkg/domain"
	"library/pkg/storage"
	"library/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var txDue = time.Date(2025, 10, 4, 11, 0, 0, 0, time.UTC)

func requireLoanStatus(t *testing.T, pg *postgres.PgSQL, loanID domain.LoanID, want domain.LoanStatus) {
	t.Helper()

	loan, err := pg.LoanByID(context.Background(), loanID)
	require.NoError(t, err)
	require.NotNil(t, loan)
	require.Equal(t, want, loan.Status)
}

func TestPgSQL_Begin_NestedIsRejected(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PublishesOverdueMark(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := newUser(t, pg, "Tx Commit")
	book := newBook(t, pg, "Tx Commit", domain.BookTypePhysical)
	loan := newLoan(t, pg, user, book, domain.LoanStatusActive, txDue)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL) //nolint: forcetypeassert

	require.NoError(t, inner.MarkLoanOverdue(ctx, loan.ID))
	// not visible outside the transaction yet
	requireLoanStatus(t, pg, loan.ID, domain.LoanStatusActive)

	require.NoError(t, inner.Commit())
	requireLoanStatus(t, pg, loan.ID, domain.LoanStatusOverdue)
}

func TestPgSQL_Rollback_DiscardsFine(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := newUser(t, pg, "Tx Rollback")
	book := newBook(t, pg, "Tx Rollback", domain.BookTypeDigital)
	loan := newLoan(t, pg, user, book, domain.LoanStatusActive, txDue)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL) //nolint: forcetypeassert

	_, err = inner.UpsertPendingFine(ctx, domain.Fine{
		LoanID: loan.ID,
		UserID: user.ID,
		Amount: 20,
		Reason: "Overdue by 4 days",
	})
	require.NoError(t, err)
	require.NoError(t, inner.Rollback())

	fine, err := pg.FineByLoanID(ctx, loan.ID)
	require.NoError(t, err)
	require.Nil(t, fine)
}

func TestPgSQL_WithTx_ReconciliationWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := newUser(t, pg, "Tx Reconcile")
	book := newBook(t, pg, "Tx Reconcile", domain.BookTypePhysical)

	reconcile := func(loan *domain.Loan, failWith error) error {
		return pg.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.UpsertPendingFine(ctx, domain.Fine{
				LoanID: loan.ID,
				UserID: user.ID,
				Amount: 20,
				Reason: "Overdue by 4 days",
			}); err != nil {
				return err //nolint: wrapcheck
			}
			if err := tx.MarkLoanOverdue(ctx, loan.ID); err != nil {
				return err //nolint: wrapcheck
			}

			return failWith
		})
	}

	t.Run("failure mid pass leaves loan and fine untouched", func(t *testing.T) {
		loan := newLoan(t, pg, user, book, domain.LoanStatusActive, txDue)

		err := reconcile(loan, errors.New("boom"))
		require.Error(t, err)

		requireLoanStatus(t, pg, loan.ID, domain.LoanStatusActive)
		fine, err := pg.FineByLoanID(ctx, loan.ID)
		require.NoError(t, err)
		require.Nil(t, fine)
	})

	t.Run("success commits both writes", func(t *testing.T) {
		loan := newLoan(t, pg, user, book, domain.LoanStatusActive, txDue)

		require.NoError(t, reconcile(loan, nil))

		requireLoanStatus(t, pg, loan.ID, domain.LoanStatusOverdue)
		fine, err := pg.FineByLoanID(ctx, loan.ID)
		require.NoError(t, err)
		require.NotNil(t, fine)
		require.EqualValues(t, 20, fine.Amount)
		require.Equal(t, domain.FineStatusPending, fine.Status)
	})
}
