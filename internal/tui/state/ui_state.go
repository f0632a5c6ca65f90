package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	BoardMode  Mode = iota // Default mode: drag cards, scroll the board
	DetailMode             // Candidate detail overlay
	HelpMode               // Displaying help screen
)

// Board chrome in terminal rows
const (
	HeaderHeight    = 1 // app title row above the columns
	StatusBarHeight = 1 // status bar row below the columns
)

// UIState manages the user interface state: terminal dimensions,
// the interaction mode and the card shown in the detail overlay.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// detailCardID is the card shown while in DetailMode
	detailCardID string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: BoardMode}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize records new terminal dimensions, clamping negatives to zero
func (s *UIState) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Ready reports whether the terminal size is known
func (s *UIState) Ready() bool {
	return s.width > 0 && s.height > 0
}

// BoardTop returns the first terminal row of the columns
func (s *UIState) BoardTop() int {
	return HeaderHeight
}

// BoardHeight returns the outer height available to each column
func (s *UIState) BoardHeight() int {
	return max(s.height-HeaderHeight-StatusBarHeight, 0)
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches mode; leaving DetailMode forgets the detail card
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
	if mode != DetailMode {
		s.detailCardID = ""
	}
}

// OpenDetail shows cardID in the detail overlay
func (s *UIState) OpenDetail(cardID string) {
	s.mode = DetailMode
	s.detailCardID = cardID
}

// DetailCardID returns the card in the detail overlay, if any
func (s *UIState) DetailCardID() string {
	return s.detailCardID
}
