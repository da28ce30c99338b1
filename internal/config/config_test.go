package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.01, cfg.Tolerance)
	assert.Equal(t, "current period", cfg.Period)
	assert.Equal(t, "科目", cfg.Columns.BalanceSheet.Account)
	assert.Equal(t, "期初余额", cfg.Columns.BalanceSheet.Opening)
	assert.Equal(t, "借方", cfg.Columns.AccountChanges.Debit)
	assert.Equal(t, "凭证号", cfg.Columns.Transactions.Voucher)
	assert.True(t, cfg.ToleranceDecimal().Equal(decimal.RequireFromString("0.01")))
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tally.yaml")
	data := `
tolerance: 0.5
columns:
  balance_sheet:
    account: Account
    opening: Opening Balance
    closing: Closing Balance
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Tolerance)
	assert.Equal(t, "Account", cfg.Columns.BalanceSheet.Account)
	assert.Equal(t, "Opening Balance", cfg.Columns.BalanceSheet.Opening)
	// Untouched sections keep their defaults.
	assert.Equal(t, "current period", cfg.Period)
	assert.Equal(t, "借方", cfg.Columns.AccountChanges.Debit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tally.yaml")

	cfg := Default()
	cfg.Period = "2025 Q1"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2025 Q1", loaded.Period)
	assert.Equal(t, cfg.Columns, loaded.Columns)
}
