package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"library/pkg/domain"
	"library/pkg/storage/postgres"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// Fixtures shared by the store tests.

func newUser(t *testing.T, pg *postgres.PgSQL, name string) *domain.User {
	t.Helper()

	suffix := uuid.NewString()
	user, err := pg.StoreUser(context.Background(), domain.User{
		StudentID:    "STU-" + suffix,
		Name:         name,
		Email:        suffix + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return user
}

func newBook(t *testing.T, pg *postgres.PgSQL, title string, bookType domain.BookType) *domain.Book {
	t.Helper()

	books, err := pg.StoreBooks(context.Background(), domain.Book{
		Title:           title,
		Authors:         []string{"Ada Writer"},
		Summary:         "summary",
		CoverImage:      "https://example.com/cover.png",
		Genres:          []string{"Fiction"},
		PublicationYear: 2001,
		Type:            bookType,
	})
	require.NoError(t, err)
	require.Len(t, books, 1)

	return &books[0]
}

func newLoan(t *testing.T,
	pg *postgres.PgSQL,
	user *domain.User,
	book *domain.Book,
	status domain.LoanStatus,
	due time.Time) *domain.Loan {
	t.Helper()

	loans, err := pg.StoreLoans(context.Background(), domain.Loan{
		BookID:       book.ID,
		UserID:       user.ID,
		CheckoutDate: due.Add(-14 * 24 * time.Hour),
		DueDate:      due,
		Status:       status,
	})
	require.NoError(t, err)
	require.Len(t, loans, 1)

	return &loans[0]
}
