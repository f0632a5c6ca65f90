package models

import (
	"fmt"
	"strings"
)

// Stage is one fixed step of the recruitment pipeline.
// The set of stages is closed and totally ordered; see Stages.
type Stage string

// Pipeline stages, in board order.
const (
	StageReceived           Stage = "received"
	StageInterviewPlanned   Stage = "interview_planned"
	StageInterviewCompleted Stage = "interview_completed"
	StageClientWaiting      Stage = "client_waiting"
	StageRecruited          Stage = "recruited"
)

// StageNone is the zero Stage. It never appears in the registry.
const StageNone Stage = ""

// StageInfo holds the display metadata of a stage
type StageInfo struct {
	Stage Stage  // Registry key
	Name  string // Column title
	Short string // Compact label used in the move indicator
	Color string // Hex color for the column header
}

// registry is the ordered stage table. Order drives the board layout,
// the pointer resolver tie-break and the move indicator's skipped stages.
var registry = []StageInfo{
	{Stage: StageReceived, Name: "Applications Received", Short: "Received", Color: "#5F87D7"},
	{Stage: StageInterviewPlanned, Name: "Interview Scheduled", Short: "Scheduled", Color: "#D7AF5F"},
	{Stage: StageInterviewCompleted, Name: "Interview Completed", Short: "Interviewed", Color: "#AF87D7"},
	{Stage: StageClientWaiting, Name: "Awaiting Client", Short: "Client", Color: "#FF875F"},
	{Stage: StageRecruited, Name: "Recruited", Short: "Hired", Color: "#5FD75F"},
}

// Stages returns the pipeline stages in registry order.
// The returned slice is a copy and may be modified by the caller.
func Stages() []Stage {
	stages := make([]Stage, len(registry))
	for i, info := range registry {
		stages[i] = info.Stage
	}
	return stages
}

// StageInfos returns the display metadata of every stage in registry order
func StageInfos() []StageInfo {
	infos := make([]StageInfo, len(registry))
	copy(infos, registry)
	return infos
}

// LookupStage returns the display metadata for a stage.
// Returns ErrUnknownStage if s is not part of the enumeration.
func LookupStage(s Stage) (StageInfo, error) {
	idx, err := StageIndex(s)
	if err != nil {
		return StageInfo{}, err
	}
	return registry[idx], nil
}

// StageIndex returns the registry position of s
func StageIndex(s Stage) (int, error) {
	for i, info := range registry {
		if info.Stage == s {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownStage, string(s))
}

// ParseStage converts a user-supplied key (case-insensitive, "-" accepted for "_")
// into a Stage.
func ParseStage(raw string) (Stage, error) {
	key := Stage(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if !key.Valid() {
		return StageNone, fmt.Errorf("%w: %q", ErrUnknownStage, raw)
	}
	return key, nil
}

// Valid reports whether s is part of the pipeline enumeration
func (s Stage) Valid() bool {
	_, err := StageIndex(s)
	return err == nil
}

// String implements fmt.Stringer
func (s Stage) String() string {
	return string(s)
}

// DisplayName returns the column title for s, or the raw key for unknown stages
func (s Stage) DisplayName() string {
	info, err := LookupStage(s)
	if err != nil {
		return string(s)
	}
	return info.Name
}
