package dragdrop

import "github.com/thenoetrevino/etapa/internal/models"

// StageChangeFunc is the external collaborator that persists a stage change.
// The engine does not wait for it and never rolls back.
type StageChangeFunc func(cardID string, stage models.Stage)

// ShouldCommit reports whether a finished session represents a stage change
func ShouldCommit(snap Snapshot) bool {
	return snap.HasHover() && snap.Hovered != snap.Origin
}

// Commit invokes onChange exactly once when snap moved the card to another
// stage. Ending outside every column or back over the origin is a cancel.
func Commit(snap Snapshot, onChange StageChangeFunc) bool {
	if !ShouldCommit(snap) {
		return false
	}
	if onChange != nil {
		onChange(snap.CardID, snap.Hovered)
	}
	return true
}
