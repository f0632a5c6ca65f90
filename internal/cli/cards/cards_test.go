package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/testutil"
)

func execute(t *testing.T, c *cli.CLI, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, c, CardsCmd(), args...)
}

var testCards = []models.Card{
	{ID: "a", Name: "Ada", Role: "Engineer", Company: "Acme", Stage: models.StageReceived},
	{ID: "b", Name: "Bob", Stage: models.StageRecruited},
	{ID: "c", Name: "Cy", Role: "Designer", Stage: models.StageReceived},
}

func TestCards_Human(t *testing.T) {
	out, _, err := execute(t, testutil.NewTestCLI(t, testCards...))
	require.NoError(t, err)

	assert.Contains(t, out, "Applications Received (2)")
	assert.Contains(t, out, "a  Ada · Engineer at Acme")
	assert.Contains(t, out, "c  Cy · Designer")
	assert.Contains(t, out, "Awaiting Client (0)")
	assert.Contains(t, out, "No candidates")
}

func TestCards_Quiet(t *testing.T) {
	out, _, err := execute(t, testutil.NewTestCLI(t, testCards...), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "a\nc\nb\n", out, "ids in board order")
}

func TestCards_StageFilter(t *testing.T) {
	out, _, err := execute(t, testutil.NewTestCLI(t, testCards...), "--stage", "RECRUITED", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "b\n", out)
}

func TestCards_JSON(t *testing.T) {
	out, _, err := execute(t, testutil.NewTestCLI(t, testCards...), "--json")
	require.NoError(t, err)

	var result struct {
		Success bool         `json:"success"`
		Data    []columnView `json:"data"`
	}
	testutil.ParseJSON(t, out, &result)
	require.Len(t, result.Data, 5)
	assert.Equal(t, "received", result.Data[0].Stage)
	assert.Equal(t, 2, result.Data[0].Count)
	assert.Equal(t, "Ada", result.Data[0].Cards[0].Name)
	assert.NotNil(t, result.Data[1].Cards, "empty stages encode as []")
	assert.Empty(t, result.Data[1].Cards)
}

func TestCards_UnknownStage(t *testing.T) {
	_, errOut, err := execute(t, testutil.NewTestCLI(t, testCards...), "--stage", "offer")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, errOut, "unknown pipeline stage")
}

func TestCards_NoCLI(t *testing.T) {
	_, _, err := execute(t, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrNoCLI)
}
