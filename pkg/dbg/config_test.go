package dbg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbg.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output = "append"
path = "custom.log"
enabled = false
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "append", config.Output)
	assert.Equal(t, "custom.log", config.Path)
	assert.False(t, config.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbg.toml")
	require.NoError(t, os.WriteFile(path, []byte(`output = "stdout"`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultLogFile, config.Path)
	assert.True(t, config.Enabled)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbg.toml")
	require.NoError(t, os.WriteFile(path, []byte(`output = "file"`), 0644))

	t.Setenv("DBG_OUTPUT", "stdout")
	t.Setenv("DBG_PATH", "env.log")
	t.Setenv("DBG_ENABLED", "false")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "stdout", config.Output)
	assert.Equal(t, "env.log", config.Path)
	assert.False(t, config.Enabled)
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dbg.toml"), []byte(`output = "append"`), 0644))

	path, config, err := FindConfig(child)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "dbg.toml"), path)
	assert.Equal(t, "append", config.Output)
}

func TestFromConfig(t *testing.T) {
	t.Run("file mode truncates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

		p, err := FromConfig(Config{Output: "file", Path: path, Enabled: true})
		require.NoError(t, err)
		defer p.Close()

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("disabled config yields disabled printer", func(t *testing.T) {
		p, err := FromConfig(Config{Output: "stdout"})
		require.NoError(t, err)
		assert.False(t, p.Enabled())
	})

	t.Run("unknown output mode", func(t *testing.T) {
		_, err := FromConfig(Config{Output: "pigeon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pigeon")
	})
}
