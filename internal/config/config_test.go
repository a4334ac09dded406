package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/overload/internal/apparatus"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TURSO_DATABASE_URL", "OVERLOAD_DATABASE_URL", "TURSO_AUTH_TOKEN", "OVERLOAD_LOG_LEVEL", "DEV_MODE"} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package directory from leaking in.
	t.Chdir(t.TempDir())
}

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "file:./overload.db", cfg.DB.ConnectionString)
	assert.Equal(t, apparatus.Pounds, cfg.Training.Unit)
	assert.True(t, cfg.Training.RestBell)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := write(t, `
[database]
connection_string = "libsql://gym.turso.io"

[log]
level = "debug"

[training]
unit = "kg"
rest_bell = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "libsql://gym.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, apparatus.Kilograms, cfg.Training.Unit)
	assert.False(t, cfg.Training.RestBell)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := write(t, "[database]\nconnection_string = \"file:./a.db\"\n")

	t.Setenv("TURSO_DATABASE_URL", "libsql://turso.example")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")
	t.Setenv("OVERLOAD_LOG_LEVEL", "info")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "libsql://turso.example", cfg.DB.ConnectionString)
	assert.Equal(t, "secret", cfg.DB.AuthToken)
	assert.Equal(t, "info", cfg.Log.Level)

	t.Setenv("OVERLOAD_DATABASE_URL", "file:./b.db")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:./b.db", cfg.DB.ConnectionString)

	t.Setenv("DEV_MODE", "true")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, devConnectionString, cfg.DB.ConnectionString)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load(write(t, "[training]\nunit = \"stone\"\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "[database\n"))
	assert.Error(t, err)
}
