package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.CancelDrag != "esc" {
		t.Errorf("Default CancelDrag key = %s, want esc", defaults.CancelDrag)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(CardsFileEnv, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultRefreshDebounce, cfg.Board.RefreshDebounce)
	assert.Equal(t, DefaultEdgeRatio, cfg.Board.Autoscroll.EdgeRatio)
	assert.False(t, cfg.Board.Watch(), "nothing to watch without a cards file")
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(CardsFileEnv, "")

	configDir := filepath.Join(tempDir, "etapa")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `board:
  autoscroll:
    edge_ratio: 0.2
    max_speed: 8
  refresh_debounce: 250ms
  cards_file: /tmp/cards.yaml
  watch_cards_file: false
key_mappings:
  quit: "x"
theme:
  accent: "#FFFFFF"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "esc", cfg.KeyMappings.CancelDrag, "missing keys fall back to defaults")

	assert.Equal(t, 0.2, cfg.Board.Autoscroll.EdgeRatio)
	assert.Equal(t, DefaultMinSpeed, cfg.Board.Autoscroll.MinSpeed)
	assert.Equal(t, 8.0, cfg.Board.Autoscroll.MaxSpeed)
	assert.Equal(t, 250*time.Millisecond, cfg.Board.RefreshDebounce)
	assert.Equal(t, DefaultFrameInterval, cfg.Board.FrameInterval)
	assert.Equal(t, DefaultDragThreshold, cfg.Board.DragThreshold)
	assert.Equal(t, "/tmp/cards.yaml", cfg.Board.CardsFile)
	assert.False(t, cfg.Board.Watch())

	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
	assert.Equal(t, DefaultColorScheme().Normal, cfg.ColorScheme.Normal)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [not, a, map"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadConfig_CardsFileEnv(t *testing.T) {
	t.Setenv(CardsFileEnv, "/data/pipeline.yaml")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/data/pipeline.yaml", cfg.Board.CardsFile)
	assert.True(t, cfg.Board.Watch())
}

func TestBoardSettings_ApplyDefaults(t *testing.T) {
	b := BoardSettings{
		Autoscroll: AutoscrollSettings{EdgeRatio: 0.9, MinSpeed: 10, MaxSpeed: 4},
	}
	b.applyDefaults()

	assert.Equal(t, DefaultEdgeRatio, b.Autoscroll.EdgeRatio, "zones wider than half the board are rejected")
	assert.Equal(t, 10.0, b.Autoscroll.MinSpeed)
	assert.Equal(t, 10.0, b.Autoscroll.MaxSpeed)
	assert.Equal(t, DefaultFrameInterval, b.FrameInterval)
	require.NotNil(t, b.WatchCardsFile)
	assert.True(t, *b.WatchCardsFile)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv(CardsFileEnv, "")

	cfg := Default()
	cfg.KeyMappings.Quit = "ctrl+q"
	cfg.Board.RefreshDebounce = 300 * time.Millisecond
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+q", loaded.KeyMappings.Quit)
	assert.Equal(t, 300*time.Millisecond, loaded.Board.RefreshDebounce)
}
