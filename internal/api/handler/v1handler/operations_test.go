package v1handler_test

import (
	"encoding/json"
	"io"
	"library/internal/api/handler/v1handler"
	"library/internal/api/specs/v1specs"
	"library/internal/library"
	mocklibrary "library/internal/library/mock"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"
	"library/pkg/token"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiFixture struct {
	lib    *mocklibrary.MockLibrary
	issuer *token.Issuer
	srv    *httptest.Server
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	lib := mocklibrary.NewMockLibrary(ctrl)

	_, privPEM, pubPEM := genRSAKeys(t)
	issuer, err := token.NewIssuer(privPEM)
	require.NoError(t, err)
	sec := newSecHandlerForTest(t, pubPEM)

	h := v1handler.New(v1handler.Deps{
		Library: lib,
		Issuer:  issuer,
		Cookie:  v1handler.CookieOptions{Name: "token", TTL: 24 * time.Hour},
	})
	srv, err := v1specs.NewServer(h, sec, v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &apiFixture{lib: lib, issuer: issuer, srv: ts}
}

func (f *apiFixture) bearer(t *testing.T, userID domain.UserID) string {
	t.Helper()
	raw, err := f.issuer.Issue(userID, time.Hour)
	require.NoError(t, err)

	return "Bearer " + raw
}

func (f *apiFixture) call(t *testing.T, method, path, body, auth string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))

	return res, out
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:        domain.UserID(uuid.New()),
		StudentID: "S-100",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      domain.UserRoleStudent,
	}
}

func TestAPI_LoginSetsCookieUsableForMe(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()

	f.lib.EXPECT().Login(gomock.Any(), "S-100", "password123").Return(user, nil)
	res, body := f.call(t, http.MethodPost, "/v1/auth/login", `{"studentId":"S-100","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Login successful", body["message"])

	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "token", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, 86400, cookies[0].MaxAge)

	f.lib.EXPECT().User(gomock.Any(), user.ID).Return(user, nil)
	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/v1/auth/me", nil)
	require.NoError(t, err)
	req.AddCookie(cookies[0])
	me, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer me.Body.Close()
	require.Equal(t, http.StatusOK, me.StatusCode)
}

func TestAPI_LoginInvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)

	f.lib.EXPECT().Login(gomock.Any(), "S-100", "nope").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Invalid credentials."))
	res, body := f.call(t, http.MethodPost, "/v1/auth/login", `{"studentId":"S-100","password":"nope"}`, "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "UNAUTHORIZED", body["code"])
	require.Equal(t, "Invalid credentials.", body["message"])
}

func TestAPI_MeRequiresAuth(t *testing.T) {
	f := newAPIFixture(t)

	res, body := f.call(t, http.MethodGet, "/v1/auth/me", "", "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Not authenticated", body["message"])
	require.Contains(t, res.Header.Get("Set-Cookie"), "token=;")

	res, body = f.call(t, http.MethodGet, "/v1/auth/me", "", "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Invalid token", body["message"])
}

func TestAPI_RegisterCreated(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()

	f.lib.EXPECT().Register(gomock.Any(), library.RegisterInput{
		StudentID: "S-100",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "secret1",
	}).Return(user, nil)

	res, body := f.call(t, http.MethodPost, "/v1/auth/register",
		`{"studentId":"S-100","name":"Ada Lovelace","email":"ada@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	require.Equal(t, user.ID.String(), data["id"])
	require.NotContains(t, data, "passwordHash")
}

func TestAPI_ListBooks(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now().UTC()
	book := domain.Book{
		ID:        domain.BookID(uuid.New()),
		Title:     "The Go Programming Language",
		Authors:   []string{"Alan Donovan", "Brian Kernighan"},
		Genres:    []string{"Programming"},
		Type:      domain.BookTypePhysical,
		Status:    domain.BookStatusAvailable,
		ISBN:      "978-0134190440",
		CreatedAt: now,
		UpdatedAt: now,
	}

	f.lib.EXPECT().Books(gomock.Any(), storage.BookFilter{Search: "go", Status: domain.BookStatusAvailable}, uint(2), uint(0)).
		Return(library.BookPage{Books: []domain.Book{book}, Page: 2, Limit: 10, TotalPages: 2, TotalCount: 11}, nil)

	res, body := f.call(t, http.MethodGet, "/v1/books?search=go&status=AVAILABLE&page=2&limit=-5", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	books := body["data"].([]any)
	require.Len(t, books, 1)
	require.Equal(t, "978-0134190440", books[0].(map[string]any)["isbn"])
	require.Equal(t, map[string]any{
		"page": float64(2), "limit": float64(10), "totalPages": float64(2), "totalCount": float64(11),
	}, body["pagination"])
}

func TestAPI_GetBookWithCurrentLoan(t *testing.T) {
	f := newAPIFixture(t)
	bookID := domain.BookID(uuid.New())
	due := time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)

	f.lib.EXPECT().Book(gomock.Any(), bookID).Return(
		&domain.Book{ID: bookID, Title: "Dune", Type: domain.BookTypePhysical, Status: domain.BookStatusReserved},
		&domain.CurrentLoan{BorrowerName: "Ada Lovelace", DueDate: due, Status: domain.LoanStatusReserved},
		nil)

	res, body := f.call(t, http.MethodGet, "/v1/books/"+bookID.String(), "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	data := body["data"].(map[string]any)
	require.Equal(t, map[string]any{
		"borrowerName": "Ada Lovelace",
		"dueDate":      "2025-10-04T00:00:00Z",
		"status":       "RESERVED",
	}, data["currentLoan"])

	f.lib.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, nil, serrors.With(serrors.ErrNotFound, "Book not found"))
	res, body = f.call(t, http.MethodGet, "/v1/books/"+uuid.NewString(), "", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "Book not found", body["message"])

	res, _ = f.call(t, http.MethodGet, "/v1/books/123", "", "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAPI_ReserveBook(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	bookID := domain.BookID(uuid.New())
	auth := f.bearer(t, user.ID)

	res, body := f.call(t, http.MethodPost, "/v1/books/reserve", `{"duration":3}`, auth)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Book ID is required", body["message"])

	f.lib.EXPECT().Reserve(gomock.Any(), user.ID, bookID, 7).Return(&domain.Loan{
		ID:     domain.LoanID(uuid.New()),
		BookID: bookID,
		UserID: user.ID,
		Status: domain.LoanStatusReserved,
	}, nil)
	res, body = f.call(t, http.MethodPost, "/v1/books/reserve", `{"bookId":"`+bookID.String()+`","duration":"7"}`, auth)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Book reserved successfully", body["message"])
	require.Nil(t, body["data"].(map[string]any)["returnDate"])

	f.lib.EXPECT().Reserve(gomock.Any(), user.ID, bookID, 0).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Book is not available for reservation"))
	res, body = f.call(t, http.MethodPost, "/v1/books/reserve", `{"bookId":"`+bookID.String()+`"}`, auth)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Book is not available for reservation", body["message"])
}

func TestAPI_MyFinesAfterReconciliation(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()

	f.lib.EXPECT().UserFines(gomock.Any(), user.ID).Return([]domain.Fine{{
		ID:     domain.FineID(uuid.New()),
		LoanID: domain.LoanID(uuid.New()),
		UserID: user.ID,
		Amount: 20,
		Reason: "Overdue by 4 days",
		Status: domain.FineStatusPending,
	}}, nil)

	res, body := f.call(t, http.MethodGet, "/v1/fines/my-fines", "", f.bearer(t, user.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	fines := body["data"].([]any)
	require.Len(t, fines, 1)
	fine := fines[0].(map[string]any)
	require.Equal(t, float64(20), fine["amount"])
	require.Equal(t, "Overdue by 4 days", fine["reason"])
	require.Equal(t, "PENDING", fine["status"])
}

func TestAPI_MyLoansStoreFailureIsInternal(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()

	f.lib.EXPECT().UserLoans(gomock.Any(), user.ID).Return(nil, io.ErrUnexpectedEOF)

	res, body := f.call(t, http.MethodGet, "/v1/loans/my-loans", "", f.bearer(t, user.ID))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", body["message"])
}

func TestAPI_RenewLoan(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	loanID := domain.LoanID(uuid.New())
	due := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	f.lib.EXPECT().Renew(gomock.Any(), user.ID, loanID).Return(&domain.Loan{
		ID:      loanID,
		UserID:  user.ID,
		DueDate: due,
		Status:  domain.LoanStatusActive,
	}, nil)

	res, body := f.call(t, http.MethodPost, "/v1/loans/renew", `{"loanId":"`+loanID.String()+`"}`, f.bearer(t, user.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Loan renewed successfully", body["message"])
	require.Equal(t, "2025-10-18T00:00:00Z", body["data"].(map[string]any)["newDueDate"])

	res, body = f.call(t, http.MethodPost, "/v1/loans/renew", `{}`, f.bearer(t, user.ID))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Loan ID is required", body["message"])
}

func TestAPI_ToggleWishlist(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	bookID := domain.BookID(uuid.New())

	f.lib.EXPECT().ToggleWishlist(gomock.Any(), user.ID, bookID).Return(library.WishlistChange{
		Action:   library.WishlistAdded,
		Wishlist: []domain.BookID{bookID},
	}, nil)

	res, body := f.call(t, http.MethodPost, "/v1/user/wishlist", `{"bookId":"`+bookID.String()+`"}`, f.bearer(t, user.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "added", body["action"])
	require.Equal(t, "Book added to wishlist", body["message"])
	require.Equal(t, []any{bookID.String()}, body["wishlist"])
}

func TestAPI_DashboardAndStatus(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()

	f.lib.EXPECT().Dashboard(gomock.Any(), user.ID).Return(&domain.Dashboard{
		User:  *user,
		Stats: domain.DashboardStats{TotalBooks: 12, TotalMembers: 3, BorrowedBooks: 2, PendingFines: 1},
	}, nil)
	res, body := f.call(t, http.MethodGet, "/v1/dashboard", "", f.bearer(t, user.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := body["data"].(map[string]any)["stats"].(map[string]any)
	require.Equal(t, float64(2), stats["borrowedBooks"])
	require.Equal(t, float64(1), stats["pendingFines"])

	f.lib.EXPECT().Status(gomock.Any()).Return(&domain.LibraryStatus{TotalSeats: 100, IsOpen: true}, nil)
	res, body = f.call(t, http.MethodGet, "/v1/library/status", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	status := body["data"].(map[string]any)
	require.Equal(t, float64(100), status["totalSeats"])
	require.Equal(t, true, status["isOpen"])
	require.Nil(t, status["lastResetAt"])
}

func TestAPI_LogoutClearsCookie(t *testing.T) {
	f := newAPIFixture(t)

	res, body := f.call(t, http.MethodGet, "/v1/auth/logout", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Logout successful", body["message"])
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "", cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
