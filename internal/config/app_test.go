package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"SNAPCHECK_FIXTURES_DIR", "SNAPCHECK_RESULTS_DIR", "SNAPCHECK_SNAPSHOT", "SNAPCHECK_BINDINGS", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "fixtures", cfg.FixturesDir)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, "snapshot.json", cfg.SnapshotPath)
	assert.Equal(t, "bindings.yaml", cfg.BindingsPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SNAPCHECK_FIXTURES_DIR", "/tmp/fx")
	t.Setenv("SNAPCHECK_RESULTS_DIR", "/tmp/out")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fx", cfg.FixturesDir)
	assert.Equal(t, "/tmp/out", cfg.ResultsDir)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing explicit file errors", func(t *testing.T) {
		err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load env file")
	})

	t.Run("explicit file is applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("SNAPCHECK_TEST_ENV_FILE=loaded\n"), 0o600))
		t.Setenv("SNAPCHECK_TEST_ENV_FILE", "")
		require.NoError(t, os.Unsetenv("SNAPCHECK_TEST_ENV_FILE"))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "loaded", os.Getenv("SNAPCHECK_TEST_ENV_FILE"))
	})
}

func TestAppConfig_String(t *testing.T) {
	cfg := &AppConfig{
		FixturesDir:  "fx",
		ResultsDir:   "out",
		SnapshotPath: "snap.yaml",
		BindingsPath: filepath.Join(t.TempDir(), "missing.yaml"),
		LogLevel:     "debug",
	}

	s := cfg.String()
	assert.Contains(t, s, "Fixtures Dir:  fx")
	assert.Contains(t, s, "(not found)")
	assert.Contains(t, s, "Log Level:     debug")
}
