package menu

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-simulado/internal/config"
	"github.com/banco-simulado/internal/data/memory"
	"github.com/banco-simulado/internal/service"
)

func seededService(t *testing.T) *service.BancoService {
	t.Helper()
	cfg := &config.Config{
		Application: config.ApplicationConfig{Env: "test", Name: "banco-test"},
		Bank:        config.BankConfig{DefaultAgency: "0001", SeedDemoData: true, StatementLimit: 10},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewBancoService(cfg, log,
		memory.NewClientRepository(), memory.NewAccountRepository(), memory.NewInvestmentRepository())
}

func run(t *testing.T, script string) string {
	t.Helper()
	var out strings.Builder
	m := New(seededService(t), strings.NewReader(script), &out)
	require.NoError(t, m.Run())
	return out.String()
}

func TestRun_Exit(t *testing.T) {
	out := run(t, "0\n")
	assert.Contains(t, out, "BANCO SIMULADO")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_EndOfInputStopsTheLoop(t *testing.T) {
	out := run(t, "")
	assert.Contains(t, out, "BANCO SIMULADO")
}

func TestRun_ListAccounts(t *testing.T) {
	out := run(t, "2\n2\n0\n")
	assert.Contains(t, out, "001001")
	assert.Contains(t, out, "001002")
	assert.Contains(t, out, "001003")
}

func TestRun_DepositAndStatement(t *testing.T) {
	script := strings.Join([]string{
		"3", "1", "0001", "001001", "150.00", // deposit
		"5", "0001", "001001", // statement
		"0",
	}, "\n") + "\n"

	out := run(t, script)
	assert.Contains(t, out, "Deposit completed.")
	assert.Contains(t, out, "ACCOUNT STATEMENT")
	assert.Contains(t, out, "João Silva")
}

func TestRun_SearchClientsByName(t *testing.T) {
	out := run(t, "1\n4\nsilva\n0\n")
	assert.Contains(t, out, "João Silva")
}

func TestRun_SavingsYield(t *testing.T) {
	out := run(t, "3\n5\n0001\n001002\n0\n")
	assert.Contains(t, out, "Yield application completed.")
}

func TestRun_InvestmentReports(t *testing.T) {
	script := strings.Join([]string{
		"4", "1", "0001", "001003", "2", "1000.00", // invest
		"6", "1", "9999", // maturing within the window
		"6", "3", // portfolio totals
		"0",
	}, "\n") + "\n"

	out := run(t, script)
	assert.Contains(t, out, "Investment completed.")
	assert.Contains(t, out, "98765432100")
	assert.Contains(t, out, "Invested principal: 1000.00")
	assert.Contains(t, out, "Current value: 1000.00")
}

func TestRun_OverdueReportStartsEmpty(t *testing.T) {
	out := run(t, "6\n2\n0\n")
	assert.Contains(t, out, "No investments found.")
}

func TestRun_InvalidAmount(t *testing.T) {
	out := run(t, "3\n1\n0001\n001001\nabc\n0\n")
	assert.Contains(t, out, "Invalid amount.")
}
