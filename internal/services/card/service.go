package card

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Service defines all card-related operations of the mock data layer
type Service interface {
	// Read operations
	List(ctx context.Context) ([]models.Card, error)
	Get(ctx context.Context, cardID string) (models.Card, error)

	// Write operations
	MoveToStage(ctx context.Context, cardID string, stage models.Stage) error
	Replace(ctx context.Context, cards []models.Card) error

	// Reload re-reads the seed source, discarding in-memory changes
	Reload(ctx context.Context) error
}

// Source produces the initial card set
type Source interface {
	Load(ctx context.Context) ([]models.Card, error)
}

// service implements Service over an in-memory slice.
// The mutex guards cards because the file watcher reloads from its own goroutine.
type service struct {
	mu     sync.RWMutex
	cards  []models.Card
	source Source
	logger *slog.Logger
}

// NewService creates a card service seeded from source
func NewService(ctx context.Context, source Source, logger *slog.Logger) (Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{source: source, logger: logger}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns every card in seed order
func (s *service) List(ctx context.Context) ([]models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards), nil
}

// Get returns one card by id
func (s *service) Get(ctx context.Context, cardID string) (models.Card, error) {
	if err := ctx.Err(); err != nil {
		return models.Card{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(cardID)
	if idx < 0 {
		return models.Card{}, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	return s.cards[idx], nil
}

// MoveToStage moves a card to another pipeline stage.
// The card is appended to the end of its new column.
func (s *service) MoveToStage(ctx context.Context, cardID string, stage models.Stage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.validateMove(cardID, stage); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(cardID)
	if idx < 0 {
		return fmt.Errorf("failed to move card: %w: %s", models.ErrCardNotFound, cardID)
	}

	moved := s.cards[idx]
	from := moved.Stage
	moved.Stage = stage
	s.cards = append(slices.Delete(s.cards, idx, idx+1), moved)

	s.logger.Info("card moved", "card_id", cardID, "from", from, "to", stage)
	return nil
}

// Replace swaps the whole card set
func (s *service) Replace(ctx context.Context, cards []models.Card) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalized, err := normalize(cards)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cards = normalized
	s.mu.Unlock()
	return nil
}

// Reload re-reads the seed source
func (s *service) Reload(ctx context.Context) error {
	cards, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}
	if err := s.Replace(ctx, cards); err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}
	s.logger.Debug("cards loaded", "count", len(cards))
	return nil
}

func (s *service) validateMove(cardID string, stage models.Stage) error {
	if cardID == "" {
		return models.ErrEmptyCardID
	}
	if _, err := models.StageIndex(stage); err != nil {
		return fmt.Errorf("failed to move card %s: %w", cardID, err)
	}
	return nil
}

// indexOf must be called with mu held
func (s *service) indexOf(cardID string) int {
	return slices.IndexFunc(s.cards, func(c models.Card) bool {
		return c.ID == cardID
	})
}
