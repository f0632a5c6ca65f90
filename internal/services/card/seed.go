package card

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/thenoetrevino/etapa/internal/models"
	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk layout of a cards file
type seedFile struct {
	Cards []models.Card `yaml:"cards"`
}

// FileSource loads cards from a YAML seed file
type FileSource struct {
	Path string
}

// Load reads and parses the seed file
func (f FileSource) Load(ctx context.Context) ([]models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(data)
}

// ParseSeed parses the YAML seed format:
//
//	cards:
//	  - name: Ada Lovelace
//	    stage: received
func ParseSeed(data []byte) ([]models.Card, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCardsFile, err)
	}
	return seed.Cards, nil
}

// StaticSource serves a fixed card set
type StaticSource []models.Card

// Load returns a copy of the static cards
func (s StaticSource) Load(ctx context.Context) ([]models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cards := make([]models.Card, len(s))
	copy(cards, s)
	return cards, nil
}

// NewSource returns a FileSource for path, or the demo cards when path is empty
func NewSource(path string) Source {
	if path == "" {
		return StaticSource(DemoCards())
	}
	return FileSource{Path: path}
}

// normalize assigns ids to cards without one and rejects unknown stages
// and duplicate ids.
func normalize(cards []models.Card) ([]models.Card, error) {
	out := make([]models.Card, 0, len(cards))
	seen := make(map[string]bool, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("card %d: %w %q", i, ErrDuplicateCardID, c.ID)
		}
		seen[c.ID] = true

		if c.Stage == models.StageNone {
			c.Stage = models.StageReceived
		}
		if _, err := models.StageIndex(c.Stage); err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, c.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// DemoCards returns the built-in sample pipeline
func DemoCards() []models.Card {
	return []models.Card{
		{ID: "c-001", Name: "Ada Lovelace", Role: "Staff Engineer", Company: "Analytical Works", Stage: models.StageReceived,
			Notes: "## Summary\nStrong systems background.\n\n- Referred by **Charles**\n- Open to relocation"},
		{ID: "c-002", Name: "Grace Hopper", Role: "Engineering Manager", Company: "Compiler Co", Stage: models.StageReceived,
			Notes: "Wants a hybrid role. Salary expectations in range."},
		{ID: "c-003", Name: "Alan Turing", Role: "Research Scientist", Company: "Bletchley Labs", Stage: models.StageInterviewPlanned,
			Notes: "Interview **Tuesday 10:00** with the hiring panel."},
		{ID: "c-004", Name: "Katherine Johnson", Role: "Data Scientist", Company: "Orbit Analytics", Stage: models.StageInterviewPlanned},
		{ID: "c-005", Name: "Edsger Dijkstra", Role: "Backend Engineer", Company: "Shortest Path", Stage: models.StageInterviewCompleted,
			Notes: "Excellent technical round.\n\n> Prefers written communication."},
		{ID: "c-006", Name: "Barbara Liskov", Role: "Principal Engineer", Company: "Substitution Inc", Stage: models.StageClientWaiting,
			Notes: "Client reviewing feedback, answer expected **Friday**."},
		{ID: "c-007", Name: "Margaret Hamilton", Role: "Flight Software Lead", Company: "Apollo Systems", Stage: models.StageRecruited,
			Notes: "Start date confirmed."},
		{ID: "c-008", Name: "Donald Knuth", Role: "Technical Writer", Company: "TeX Press", Stage: models.StageReceived},
	}
}
