package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "configs"), 0o755))

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalWD) })
	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig("missing")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "banco-simulado", cfg.Application.Name)
	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "0001", cfg.Bank.DefaultAgency)
	assert.True(t, cfg.Bank.SeedDemoData)
	assert.Equal(t, 10, cfg.Bank.StatementLimit)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	tempDir := chdirTemp(t)

	envContent := "APP_NAME=banco-test\n" +
		"LOG_LEVEL=debug\n" +
		"BANK_DEFAULT_AGENCY=0042\n" +
		"BANK_SEED_DEMO_DATA=false\n" +
		"BANK_STATEMENT_LIMIT=5\n"
	envFilePath := filepath.Join(tempDir, "configs", "banco_test.env")
	require.NoError(t, os.WriteFile(envFilePath, []byte(envContent), 0o644))

	cfg, err := LoadConfig("banco_test")
	require.NoError(t, err)

	assert.Equal(t, "banco-test", cfg.Application.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "0042", cfg.Bank.DefaultAgency)
	assert.False(t, cfg.Bank.SeedDemoData)
	assert.Equal(t, 5, cfg.Bank.StatementLimit)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := chdirTemp(t)

	envFilePath := filepath.Join(tempDir, "configs", "banco_bad.env")
	require.NoError(t, os.WriteFile(envFilePath, []byte("BANK_STATEMENT_LIMIT=0\n"), 0o644))

	_, err := LoadConfig("banco_bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BANK_STATEMENT_LIMIT")
}
