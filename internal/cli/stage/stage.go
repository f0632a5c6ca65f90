package stage

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
)

// stageView is the JSON shape of one registry entry
type stageView struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Short string `json:"short"`
	Color string `json:"color"`
}

// StagesCmd returns the stages subcommand
func StagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List pipeline stages in order",
		Long: `List the recruitment pipeline stages in board order.

Examples:
  # Human-readable list
  etapa stages

  # JSON output for agents
  etapa stages --json

  # Quiet mode (one stage key per line)
  etapa stages --quiet
`,
		Args: cobra.NoArgs,
		RunE: runStages,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (stage keys only)")

	return cmd
}

func runStages(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	infos := models.StageInfos()
	if formatter.Quiet {
		for _, info := range infos {
			formatter.Println(string(info.Stage))
		}
		return nil
	}

	if formatter.JSON {
		views := make([]stageView, len(infos))
		for i, info := range infos {
			views[i] = stageView{Index: i, Key: string(info.Stage), Name: info.Name, Short: info.Short, Color: info.Color}
		}
		return formatter.Success(views)
	}

	formatter.Printf("%s\n\n", styles.TitleStyle.Render("Pipeline stages"))
	for i, info := range infos {
		formatter.Printf("  %d. %s %s %s\n", i+1, styles.Swatch(info.Color),
			styles.ValueStyle.Render(fmt.Sprintf("%-22s", info.Name)),
			styles.SubtitleStyle.Render(string(info.Stage)))
	}
	return nil
}

// previewView is the JSON shape of a move preview
type previewView struct {
	Change      bool     `json:"change"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Direction   string   `json:"direction,omitempty"`
	Skipped     []string `json:"skipped"`
	Summary     string   `json:"summary,omitempty"`
}

// GetID implements cli.IDGetter so --quiet prints the summary
func (p previewView) GetID() string {
	if !p.Change {
		return "none"
	}
	return p.Summary
}

// PreviewCmd returns the preview subcommand
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview FROM TO",
		Short: "Preview the move indicator for a stage change",
		Long: `Show what dragging a card from one stage to another would display:
the direction of the move and the stages it skips.

Stage names accept the keys printed by 'etapa stages' (dashes allowed).

Examples:
  etapa preview received client-waiting
  etapa preview recruited interview_planned --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runPreview,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (summary line only)")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	from, err := models.ParseStage(args[0])
	if err != nil {
		return reportUnknownStage(formatter, err)
	}
	to, err := models.ParseStage(args[1])
	if err != nil {
		return reportUnknownStage(formatter, err)
	}

	indicator, err := dragdrop.ComputeMoveIndicator(from, to)
	if err != nil {
		return reportUnknownStage(formatter, err)
	}

	view := previewView{Origin: string(from), Destination: string(to), Skipped: []string{}}
	if indicator != nil {
		view.Change = true
		view.Direction = indicator.Direction.String()
		view.Summary = indicator.String()
		for _, s := range indicator.Skipped {
			view.Skipped = append(view.Skipped, string(s))
		}
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	if indicator == nil {
		formatter.Printf("%s\n", styles.SubtitleStyle.Render("No stage change: card stays in "+from.DisplayName()))
		return nil
	}

	formatter.Printf("%s %s\n", styles.LabelStyle.Render(indicator.Direction.Glyph()), styles.ValueStyle.Render(indicator.String()))
	formatter.Printf("%s %s\n", styles.LabelStyle.Render("Direction:"), indicator.Direction)
	if len(indicator.Skipped) > 0 {
		names := make([]string, len(indicator.Skipped))
		for i, s := range indicator.Skipped {
			names[i] = s.DisplayName()
		}
		formatter.Printf("%s %s\n", styles.LabelStyle.Render("Skips:"), strings.Join(names, ", "))
	}
	return nil
}

func reportUnknownStage(formatter *cli.OutputFormatter, err error) error {
	_ = formatter.ErrorWithSuggestion("UNKNOWN_STAGE", err.Error(), "Run 'etapa stages' to list valid stages")
	return cli.Exit(cli.ExitValidation, err)
}
