package models

// Card is a draggable unit representing one candidate's position in the pipeline.
// Stage is the single source of truth for which column renders the card.
type Card struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Company string `yaml:"company" json:"company"`
	Notes   string `yaml:"notes" json:"notes"` // Markdown, shown in the detail view
	Stage   Stage  `yaml:"stage" json:"stage"`
}

// CardsByStage groups cards by stage, preserving input order within each stage.
// Cards with an unknown stage are dropped.
func CardsByStage(cards []Card) map[Stage][]Card {
	grouped := make(map[Stage][]Card, len(registry))
	for _, c := range cards {
		if !c.Stage.Valid() {
			continue
		}
		grouped[c.Stage] = append(grouped[c.Stage], c)
	}
	return grouped
}
