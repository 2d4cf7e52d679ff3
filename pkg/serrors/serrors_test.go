package serrors_test

import (
	"errors"
	"fmt"
	"library/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "loan %d not found", 42)
	require.Equal(t, "loan 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading loan")
	require.Equal(t, "loading loan: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrForbidden, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrForbidden, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.ErrUnauthorized, http.StatusUnauthorized},
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrBadRequest, http.StatusBadRequest},
		{serrors.ErrConflict, http.StatusConflict},
		{serrors.ErrInternal, http.StatusInternalServerError},
		{serrors.NewKind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			require.Equal(t, tt.status, serrors.HTTPStatus(tt.kind))
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrConflict, "taken"))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
}
