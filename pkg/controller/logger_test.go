package controller_test

import (
	"context"
	"library/pkg/controller"
	"library/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	// Handler echoes request ID from context into a header so we can assert it.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		val := r.Context().Value(controller.RequestIDKey)
		if s, _ := val.(string); s != "" {
			w.Header().Set("X-Echo-Request-Id", s)
		}
		w.WriteHeader(http.StatusCreated)
	})

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.Header.Set("X-Request-Id", "abc-123")
	rec1 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec1, req1)
	res1 := rec1.Result()
	require.Equal(t, http.StatusCreated, res1.StatusCode)
	require.Equal(t, "abc-123", res1.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res1.Header.Get(controller.RequestIDHeader))

	// a request without the header still receives a generated ID
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec2, req2)
	res2 := rec2.Result()
	require.Equal(t, http.StatusCreated, res2.StatusCode)
	require.NotEmpty(t, res2.Header.Get("X-Echo-Request-Id"))
}

func TestWithLogger_AccessLogLevelAndBytes(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{status: http.StatusOK, level: zapcore.InfoLevel},
		{status: http.StatusNotFound, level: zapcore.WarnLevel},
		{status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		core, logs := observer.New(zapcore.DebugLevel)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte("hello"))
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		req = req.WithContext(logger.WithLogger(context.Background(), zap.New(core)))
		controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

		entries := logs.FilterMessage("Access log").All()
		require.Len(t, entries, 1)
		require.Equal(t, tt.level, entries[0].Level)
		fields := entries[0].ContextMap()
		require.EqualValues(t, tt.status, fields["status_code"])
		require.EqualValues(t, 5, fields["bytes"])
		require.Equal(t, "/v1/books", fields["url"])
	}
}
