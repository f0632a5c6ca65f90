package card

import "errors"

// Card store errors
var (
	// ErrInvalidCardsFile indicates a cards file that is not valid YAML
	ErrInvalidCardsFile = errors.New("invalid cards file")

	// ErrDuplicateCardID indicates two cards in one set share an id
	ErrDuplicateCardID = errors.New("duplicate id")
)
