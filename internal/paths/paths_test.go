package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})

	t.Run("defaults to CWD-relative dir", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultConfigDirName), got)
	})

	t.Run("relative flag is made absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel-config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveFile(t *testing.T) {
	t.Run("flag wins over config and env", func(t *testing.T) {
		t.Setenv(EnvFile, "/tmp/env-inventory.txt")
		got, err := ResolveFile("/tmp/flag-inventory.txt", "/tmp/cfg-inventory.txt")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-inventory.txt", got)
	})

	t.Run("config wins over env", func(t *testing.T) {
		t.Setenv(EnvFile, "/tmp/env-inventory.txt")
		got, err := ResolveFile("", "/tmp/cfg-inventory.txt")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-inventory.txt", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvFile, "/tmp/env-inventory.txt")
		got, err := ResolveFile("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-inventory.txt", got)
	})

	t.Run("defaults to CWD-relative file", func(t *testing.T) {
		t.Setenv(EnvFile, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveFile("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultFileName), got)
	})
}
