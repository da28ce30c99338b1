package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runAudit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"audit"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAuditCommand_Passes(t *testing.T) {
	dir := t.TempDir()
	bs := writeFixture(t, dir, "bs.csv", "科目,期初余额,期末余额,类型\n货币资金,100000,120000,资产\n实收资本,100000,120000,所有者权益\n")
	ac := writeFixture(t, dir, "ac.csv", "科目,借方,贷方\n货币资金,20000,0\n实收资本,0,20000\n")

	out, err := runAudit(t, "-b", bs, "-a", ac, "-p", "2025 Q1")
	require.NoError(t, err)
	assert.Contains(t, out, "Financial Audit Report - 2025 Q1")
	assert.Contains(t, out, "Result: PASSED")
}

func TestAuditCommand_FailsWithDiscrepancy(t *testing.T) {
	dir := t.TempDir()
	bs := writeFixture(t, dir, "bs.csv", "科目,期初余额,期末余额\n货币资金,100000,119000\n")
	ac := writeFixture(t, dir, "ac.csv", "科目,借方,贷方\n货币资金,20000,0\n")

	out, err := runAudit(t, "-b", bs, "-a", ac)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit failed")
	assert.Contains(t, out, "Result: FAILED")
	assert.Contains(t, out, "amount mismatch")
}

func TestAuditCommand_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	bs := writeFixture(t, dir, "bs.csv", "科目,期初余额,期末余额\n货币资金,0,0\n")
	ac := writeFixture(t, dir, "ac.csv", "科目,借方,贷方\n")
	output := filepath.Join(dir, "report.xlsx")

	_, err := runAudit(t, "-b", bs, "-a", ac, "-o", output)
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestAuditCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	bs := writeFixture(t, dir, "bs.csv", "Account,Opening,Closing\nCash,0,0\n")
	ac := writeFixture(t, dir, "ac.csv", "Account,Dr,Cr\n")
	cfg := writeFixture(t, dir, "tally.yaml", `
columns:
  balance_sheet:
    account: Account
    opening: Opening
    closing: Closing
  account_changes:
    account: Account
    debit: Dr
    credit: Cr
`)

	out, err := runAudit(t, "-b", bs, "-a", ac, "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Result: PASSED")
}

func TestAuditCommand_MissingColumnIsFatal(t *testing.T) {
	dir := t.TempDir()
	bs := writeFixture(t, dir, "bs.csv", "科目,期初余额\n货币资金,0\n")
	ac := writeFixture(t, dir, "ac.csv", "科目,借方,贷方\n")

	_, err := runAudit(t, "-b", bs, "-a", ac)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "期末余额")
}

func TestAuditCommand_RequiredFlags(t *testing.T) {
	_, err := runAudit(t)
	require.Error(t, err)
}
