package stage

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/testutil"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, nil, cmd, args...)
}

// ============================================================================
// stages
// ============================================================================

func TestStages_Human(t *testing.T) {
	out, _, err := execute(t, StagesCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "1. ● Applications Received")
	assert.Contains(t, out, "5. ● Recruited")
	assert.Contains(t, out, "client_waiting")
}

func TestStages_Quiet(t *testing.T) {
	out, _, err := execute(t, StagesCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "received\ninterview_planned\ninterview_completed\nclient_waiting\nrecruited\n", out)
}

func TestStages_JSON(t *testing.T) {
	out, _, err := execute(t, StagesCmd(), "--json")
	require.NoError(t, err)

	var result struct {
		Success bool        `json:"success"`
		Data    []stageView `json:"data"`
	}
	testutil.ParseJSON(t, out, &result)
	assert.True(t, result.Success)
	require.Len(t, result.Data, 5)
	assert.Equal(t, stageView{Index: 3, Key: "client_waiting", Name: "Awaiting Client", Short: "Client", Color: result.Data[3].Color}, result.Data[3])
}

func TestStages_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, StagesCmd(), "extra")
	assert.Error(t, err)
}

// ============================================================================
// preview
// ============================================================================

func TestPreview_ForwardSkip(t *testing.T) {
	out, _, err := execute(t, PreviewCmd(), "received", "client-waiting")
	require.NoError(t, err)

	assert.Contains(t, out, "▶ Received → Client (via Scheduled, Interviewed)")
	assert.Contains(t, out, "Direction: forward")
	assert.Contains(t, out, "Skips: Interview Scheduled, Interview Completed")
}

func TestPreview_SameStage(t *testing.T) {
	out, _, err := execute(t, PreviewCmd(), "recruited", "RECRUITED")
	require.NoError(t, err)
	assert.Contains(t, out, "No stage change")
}

func TestPreview_JSON(t *testing.T) {
	out, _, err := execute(t, PreviewCmd(), "recruited", "interview_planned", "--json")
	require.NoError(t, err)

	var result struct {
		Data previewView `json:"data"`
	}
	testutil.ParseJSON(t, out, &result)
	assert.Equal(t, previewView{
		Change:      true,
		Origin:      "recruited",
		Destination: "interview_planned",
		Direction:   "backward",
		Skipped:     []string{"interview_completed", "client_waiting"},
		Summary:     "Hired → Scheduled (via Interviewed, Client)",
	}, result.Data)
}

func TestPreview_Quiet(t *testing.T) {
	out, _, err := execute(t, PreviewCmd(), "received", "interview_planned", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "Received → Scheduled\n", out)

	out, _, err = execute(t, PreviewCmd(), "received", "received", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestPreview_UnknownStage(t *testing.T) {
	_, errOut, err := execute(t, PreviewCmd(), "received", "rejected")
	require.Error(t, err)

	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, errOut, "unknown pipeline stage")
	assert.Contains(t, errOut, "etapa stages")
}

func TestPreview_ArgCount(t *testing.T) {
	_, _, err := execute(t, PreviewCmd(), "received")
	assert.Error(t, err)
}
