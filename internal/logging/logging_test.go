package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDir_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(Discard)

	require.NoError(t, InitDir(dir))
	Logger.Info("drag started", "card_id", "abc")

	data, err := os.ReadFile(filepath.Join(dir, "etapa.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "card_id=abc"), "log line missing: %q", data)
}

func TestDiscard(t *testing.T) {
	Discard()
	assert.NotNil(t, Logger)
	Logger.Info("dropped")
}
