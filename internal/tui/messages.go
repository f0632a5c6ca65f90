package tui

import (
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
)

// CardsFileChangedMsg is sent by the file watcher when the seed file changes
type CardsFileChangedMsg struct{}

// CardsFileErrorMsg is sent by the file watcher when watching fails or the
// seed file is removed. The board keeps its current cards.
type CardsFileErrorMsg struct {
	Err error
}

// cardsLoadedMsg carries a fresh card set from the service
type cardsLoadedMsg struct {
	cards []models.Card
	err   error
}

// cardMovedMsg reports the result of a committed stage change
type cardMovedMsg struct {
	cardID string
	stage  models.Stage
	err    error
}

// refreshMsg fires once a geometry refresh debounce window has elapsed
type refreshMsg struct {
	token dragdrop.RefreshToken
}

// frameMsg drives autoscroll while a card is held near the board edge
type frameMsg struct{}
