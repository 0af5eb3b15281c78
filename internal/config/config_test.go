package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("FERN_TITLE", "columns")
	t.Setenv("FERN_GRID_COLUMNS", "3")
	t.Setenv("FERN_ANIM_MS", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "columns", cfg.Title)
	assert.Equal(t, 3, cfg.GridColumns)
	assert.Equal(t, 50*time.Millisecond, cfg.AnimationTime)
	assert.Equal(t, 600, cfg.WindowHeight)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FERN_GRID_ROWS=2\nFERN_DEMO=Split\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("FERN_GRID_ROWS")
		os.Unsetenv("FERN_DEMO")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.GridRows)
	assert.Equal(t, "Split", cfg.StartDemo)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FERN_WIDTH", "wide")
	_, err := Load("")
	assert.ErrorContains(t, err, "FERN_WIDTH")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridColumns = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ActiveAlpha = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.IdleSize = -1
	assert.ErrorContains(t, cfg.Validate(), "hover square size")

	cfg = DefaultConfig()
	cfg.ActiveSize = -28
	assert.ErrorContains(t, cfg.Validate(), "hover square size")

	cfg = DefaultConfig()
	cfg.GridColumns = 0
	assert.NoError(t, cfg.Validate())
}
