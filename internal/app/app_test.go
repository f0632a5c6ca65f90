package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/card"
)

type failingSource struct{}

func (failingSource) Load(context.Context) ([]models.Card, error) {
	return nil, errors.New("disk on fire")
}

// ============================================================================
// Container Tests
// ============================================================================

func TestNew(t *testing.T) {
	a, err := New(context.Background(), card.StaticSource(card.DemoCards()))
	require.NoError(t, err)

	require.NotNil(t, a.Cards)
	require.NotNil(t, a.Stats)
	require.NotNil(t, a.Logger)

	cards, err := a.Cards.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, len(card.DemoCards()))
}

func TestNew_Options(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	stats := NewStats()

	a, err := New(context.Background(), card.StaticSource(nil), WithLogger(logger), WithStats(stats))
	require.NoError(t, err)

	assert.Same(t, logger, a.Logger)
	assert.Same(t, stats, a.Stats)
}

func TestNew_SourceError(t *testing.T) {
	_, err := New(context.Background(), failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize cards")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestClose_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	a, err := New(context.Background(), card.StaticSource(nil), WithLogger(logger))
	require.NoError(t, err)
	a.Stats.IncStageChanges()

	require.NoError(t, a.Close())
	assert.Contains(t, buf.String(), "board session finished")
	assert.Contains(t, buf.String(), "stats.stage_changes=1")
}

// ============================================================================
// Stats Tests
// ============================================================================

func TestNewStats(t *testing.T) {
	s := NewStats()

	snap := s.Snapshot()
	assert.Zero(t, snap.DragsStarted)
	assert.Zero(t, snap.StageChanges)
	assert.Zero(t, snap.Cancelled)
	assert.Zero(t, snap.Activations)
	assert.Zero(t, snap.MoveFailures)
	assert.Zero(t, snap.Reloads)
	assert.WithinDuration(t, time.Now(), s.StartTime, time.Second)
}

func TestStats_Counters(t *testing.T) {
	s := NewStats()

	s.IncDragsStarted()
	s.IncDragsStarted()
	s.IncStageChanges()
	s.IncCancelled()
	s.IncActivations()
	s.IncMoveFailures()
	s.IncReloads()
	s.IncReloads()
	s.IncReloads()

	snap := s.Snapshot()
	assert.Equal(t, int64(2), snap.DragsStarted)
	assert.Equal(t, int64(1), snap.StageChanges)
	assert.Equal(t, int64(1), snap.Cancelled)
	assert.Equal(t, int64(1), snap.Activations)
	assert.Equal(t, int64(1), snap.MoveFailures)
	assert.Equal(t, int64(3), snap.Reloads)
}

func TestStats_ConcurrentIncrements(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.IncReloads()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), s.Snapshot().Reloads)
}
