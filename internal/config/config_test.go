package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PACKLIST_THEME", "PACKLIST_SORT", "PACKLIST_LOG_LEVEL", "PACKLIST_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "packlist.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
theme: neon
sort: description
logging:
  level: debug
  file: /tmp/packlist.log
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "description", cfg.Sort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/packlist.log", cfg.Logging.File)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "packlist.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: mono\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "input", cfg.Sort)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "packlist.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: [unterminated\n"), 0o644))

	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PACKLIST_THEME", "mono")
	t.Setenv("PACKLIST_SORT", " description ")
	t.Setenv("PACKLIST_LOG_LEVEL", "warn")
	t.Setenv("PACKLIST_LOG_FILE", "out.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "description", cfg.Sort)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "out.log", cfg.Logging.File)
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv never overwrites a variable that is already set, even to "".
	const key = "PACKLIST_DOTENV_PROBE"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte(key+"=debug\n"), 0o644))

	require.NoError(t, LoadEnvFile(p))
	assert.Equal(t, "debug", os.Getenv(key))

	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}
