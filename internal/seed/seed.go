// Package seed fills an empty database with a small demo library: three
// members, a mixed physical and digital catalog, loans in every state and
// one pending fine.
package seed

import (
	"context"
	"fmt"
	"library/internal/fines"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/storage"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every demo member.
const DefaultPassword = "password123"

type Options struct {
	// Password is set on every demo member. Defaults to DefaultPassword.
	Password string
	// Now anchors loan dates. Defaults to time.Now.
	Now func() time.Time
	// DailyRate prices the seeded overdue fine. Defaults to fines.DefaultDailyRate.
	DailyRate int64
}

// Summary counts the inserted records.
type Summary struct {
	Users int
	Books int
	Loans int
	Fines int
}

type member struct {
	user      domain.User
	wishlist  []string
	completed []string
}

var members = []member{ //nolint: gochecknoglobals
	{
		user:      domain.User{StudentID: "00720815724", Name: "Ada", Email: "ada@example.com"},
		wishlist:  []string{"C++ Primer"},
		completed: []string{"The Hobbit"},
	},
	{
		user: domain.User{StudentID: "00820815724", Name: "Grace", Email: "grace@example.com"},
	},
	{
		user:     domain.User{StudentID: "00920815724", Name: "Linus", Email: "linus@example.com"},
		wishlist: []string{"Dune", "Python for Data Analysis"},
	},
}

var catalog = []domain.Book{ //nolint: gochecknoglobals
	{
		Title:           "Dune",
		Authors:         []string{"Frank Herbert"},
		Summary:         "Paul Atreides and the desert planet Arrakis.",
		Genres:          []string{"Science Fiction"},
		PublicationYear: 1965,
		Type:            domain.BookTypePhysical,
		Status:          domain.BookStatusCheckedOut,
		Location:        "A-12",
		RFIDTag:         "RFID-0001",
	},
	{
		Title:           "The Hobbit",
		Authors:         []string{"J.R.R. Tolkien"},
		Summary:         "Bilbo Baggins leaves the Shire.",
		Genres:          []string{"Fantasy"},
		PublicationYear: 1937,
		Type:            domain.BookTypePhysical,
		Status:          domain.BookStatusAvailable,
		Location:        "B-03",
		RFIDTag:         "RFID-0002",
	},
	{
		Title:           "C++ Primer",
		Authors:         []string{"Stanley B. Lippman", "Josée Lajoie"},
		Summary:         "A guide to modern C++.",
		Genres:          []string{"Programming", "Textbook"},
		PublicationYear: 2012,
		Type:            domain.BookTypeDigital,
		Status:          domain.BookStatusAvailable,
		FileURL:         "#",
		Format:          "EPUB",
	},
	{
		Title:           "Python for Data Analysis",
		Authors:         []string{"Wes McKinney"},
		Summary:         "Manipulating and cleaning datasets in Python.",
		Genres:          []string{"Programming", "Data Science"},
		PublicationYear: 2017,
		Type:            domain.BookTypeDigital,
		Status:          domain.BookStatusAvailable,
		FileURL:         "#",
		Format:          "PDF",
	},
	{
		Title:           "1984",
		Authors:         []string{"George Orwell"},
		Summary:         "A dystopia ruled by the Party and Big Brother.",
		Genres:          []string{"Fiction", "Dystopian"},
		PublicationYear: 1949,
		Type:            domain.BookTypePhysical,
		Status:          domain.BookStatusCheckedOut,
		Location:        "C-07",
		RFIDTag:         "RFID-0003",
	},
}

const overdueDays = 4

// Run wipes every table and inserts the demo data in one transaction.
func Run(ctx context.Context, strg storage.Storage, options Options) (Summary, error) {
	if options.Password == "" {
		options.Password = DefaultPassword
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.DailyRate <= 0 {
		options.DailyRate = fines.DefaultDailyRate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(options.Password), bcrypt.DefaultCost)
	if err != nil {
		return Summary{}, fmt.Errorf("could not hash password: %w", err)
	}

	var summary Summary
	err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.TruncateAll(ctx); err != nil {
			return err
		}

		books, err := tx.StoreBooks(ctx, catalog...)
		if err != nil {
			return fmt.Errorf("could not store books: %w", err)
		}
		byTitle := make(map[string]domain.BookID, len(books))
		for _, b := range books {
			byTitle[b.Title] = b.ID
		}
		summary.Books = len(books)

		users := make([]domain.UserID, 0, len(members))
		for _, m := range members {
			u := m.user
			u.Role = domain.UserRoleStudent
			u.PasswordHash = string(hash)
			stored, err := tx.StoreUser(ctx, u)
			if err != nil {
				return fmt.Errorf("could not store user %s: %w", u.StudentID, err)
			}
			for _, title := range m.wishlist {
				if err := tx.AddToWishlist(ctx, stored.ID, byTitle[title]); err != nil {
					return fmt.Errorf("could not add to wishlist: %w", err)
				}
			}
			for _, title := range m.completed {
				if err := tx.AddCompletedBook(ctx, stored.ID, byTitle[title]); err != nil {
					return fmt.Errorf("could not add completed book: %w", err)
				}
			}
			users = append(users, stored.ID)
		}
		summary.Users = len(users)

		now := options.Now().UTC()
		day := 24 * time.Hour
		overdueDue := now.Add(-overdueDays * day)
		loans, err := tx.StoreLoans(ctx,
			domain.Loan{
				BookID:       byTitle["Dune"],
				UserID:       users[2],
				CheckoutDate: now.Add(-7 * day),
				DueDate:      now.Add(7 * day),
				Status:       domain.LoanStatusActive,
			},
			domain.Loan{
				BookID:       byTitle["1984"],
				UserID:       users[1],
				CheckoutDate: overdueDue.Add(-14 * day),
				DueDate:      overdueDue,
				Status:       domain.LoanStatusOverdue,
			},
			domain.Loan{
				BookID:       byTitle["The Hobbit"],
				UserID:       users[0],
				CheckoutDate: now.Add(-30 * day),
				DueDate:      now.Add(-16 * day),
				ReturnDate:   now.Add(-17 * day),
				Status:       domain.LoanStatusReturned,
			},
		)
		if err != nil {
			return fmt.Errorf("could not store loans: %w", err)
		}
		summary.Loans = len(loans)

		fined, err := tx.StoreFines(ctx, domain.Fine{
			LoanID: loans[1].ID,
			UserID: users[1],
			Amount: fines.Amount(overdueDays, options.DailyRate),
			Reason: fines.Reason(overdueDays),
			Status: domain.FineStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store fines: %w", err)
		}
		summary.Fines = len(fined)

		if _, err := tx.StoreLibraryStatus(ctx, domain.LibraryStatus{
			TotalSeats:    250,
			OccupiedSeats: 2,
			IsOpen:        true,
			LastResetAt:   now,
		}); err != nil {
			return fmt.Errorf("could not store library status: %w", err)
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	logger.Info(ctx, "database seeded",
		zap.Int("users", summary.Users),
		zap.Int("books", summary.Books),
		zap.Int("loans", summary.Loans),
		zap.Int("fines", summary.Fines))

	return summary, nil
}
