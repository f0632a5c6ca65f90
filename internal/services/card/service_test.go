package card

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, cards ...models.Card) Service {
	t.Helper()
	if len(cards) == 0 {
		cards = DemoCards()
	}
	svc, err := NewService(context.Background(), StaticSource(cards), quietLogger())
	require.NoError(t, err)
	return svc
}

// ============================================================================
// Read Tests
// ============================================================================

func TestList_ReturnsSeedOrder(t *testing.T) {
	svc := newTestService(t)

	cards, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, len(DemoCards()))
	assert.Equal(t, "c-001", cards[0].ID)
}

func TestList_ReturnsCopy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cards, err := svc.List(ctx)
	require.NoError(t, err)
	cards[0].Name = "mutated"

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", again[0].Name)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestList_CancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ============================================================================
// MoveToStage Tests
// ============================================================================

func TestMoveToStage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MoveToStage(ctx, "c-001", models.StageClientWaiting))

	card, err := svc.Get(ctx, "c-001")
	require.NoError(t, err)
	assert.Equal(t, models.StageClientWaiting, card.Stage)

	cards, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c-001", cards[len(cards)-1].ID, "moved card goes to the end of its column")
}

func TestMoveToStage_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		cardID string
		stage  models.Stage
		want   error
	}{
		{name: "empty id", cardID: "", stage: models.StageRecruited, want: models.ErrEmptyCardID},
		{name: "unknown stage", cardID: "c-001", stage: models.Stage("rejected"), want: models.ErrUnknownStage},
		{name: "no stage", cardID: "c-001", stage: models.StageNone, want: models.ErrUnknownStage},
		{name: "missing card", cardID: "nope", stage: models.StageRecruited, want: models.ErrCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.MoveToStage(ctx, tt.cardID, tt.stage)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	card, err := svc.Get(ctx, "c-001")
	require.NoError(t, err)
	assert.Equal(t, models.StageReceived, card.Stage, "failed moves leave the card untouched")
}

// ============================================================================
// Replace / Reload Tests
// ============================================================================

func TestReplace_AssignsIDsAndDefaultStage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.Replace(ctx, []models.Card{{Name: "No ID"}})
	require.NoError(t, err)

	cards, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.NotEmpty(t, cards[0].ID)
	assert.Equal(t, models.StageReceived, cards[0].Stage)
}

func TestReplace_RejectsDuplicatesAndUnknownStages(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.Replace(ctx, []models.Card{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateCardID)

	err = svc.Replace(ctx, []models.Card{{ID: "a", Stage: "offer"}})
	assert.ErrorIs(t, err, models.ErrUnknownStage)

	cards, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, len(DemoCards()), "rejected replace keeps previous cards")
}

func TestReload_DiscardsMoves(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MoveToStage(ctx, "c-002", models.StageRecruited))
	require.NoError(t, svc.Reload(ctx))

	card, err := svc.Get(ctx, "c-002")
	require.NoError(t, err)
	assert.Equal(t, models.StageReceived, card.Stage)
}

// ============================================================================
// Seed Tests
// ============================================================================

func TestParseSeed(t *testing.T) {
	data := []byte(`
cards:
  - id: x1
    name: Linus Torvalds
    role: Kernel Maintainer
    stage: interview_planned
  - name: Ken Thompson
`)
	cards, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "x1", cards[0].ID)
	assert.Equal(t, models.StageInterviewPlanned, cards[0].Stage)
	assert.Equal(t, "Ken Thompson", cards[1].Name)
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := ParseSeed([]byte("cards: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidCardsFile)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  - id: f1\n    name: From File\n    stage: recruited\n"), 0o644))

	svc, err := NewService(context.Background(), NewSource(path), quietLogger())
	require.NoError(t, err)

	card, err := svc.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, models.StageRecruited, card.Stage)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewService(context.Background(), NewSource(filepath.Join(t.TempDir(), "nope.yaml")), quietLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSource_EmptyPathUsesDemo(t *testing.T) {
	cards, err := NewSource("").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DemoCards(), cards)
}
