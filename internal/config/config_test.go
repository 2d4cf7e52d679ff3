package config_test

import (
	"library/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "library", cfg.Database.DatabaseName)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "token", cfg.Cookie.Name)
	require.Equal(t, 14, cfg.Loans.DefaultDays)
	require.Equal(t, 14, cfg.Loans.MaxPhysicalDays)
	require.Equal(t, 365, cfg.Loans.MaxDays)
	require.Equal(t, 14*24*time.Hour, cfg.Loans.RenewalPeriod)
	require.EqualValues(t, 5, cfg.Fines.DailyRate)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FINES_DAILY_RATE", "7")

	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9090"
  allowedOrigins: ["https://library.example.com"]
loans:
  renewalPeriod: 168h
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://library.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 7*24*time.Hour, cfg.Loans.RenewalPeriod)
	require.EqualValues(t, 7, cfg.Fines.DailyRate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
