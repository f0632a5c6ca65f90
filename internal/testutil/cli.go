package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/card"
)

// NewTestCLI builds a CLI over an in-memory card set with default config
// and a discarding logger.
func NewTestCLI(t *testing.T, cards ...models.Card) *cli.CLI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := app.New(context.Background(), card.StaticSource(cards), app.WithLogger(logger))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	return &cli.CLI{App: a, Config: config.Default()}
}

// ExecuteCommand runs a cobra command with args and returns its stdout and
// stderr with styling removed. A nil c runs the command without a CLI in
// its context.
func ExecuteCommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	SetupCobraCommand(cmd, args)

	ctx := context.Background()
	if c != nil {
		ctx = cli.WithCLI(ctx, c)
	}
	err := cmd.ExecuteContext(ctx)
	return ansi.Strip(out.String()), ansi.Strip(errOut.String()), err
}

// ParseJSON decodes JSON output from CLI commands into v
func ParseJSON(t *testing.T, output string, v any) {
	t.Helper()

	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
