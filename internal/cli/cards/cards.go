package cards

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/models"
)

// columnView is the JSON shape of one stage column
type columnView struct {
	Stage string        `json:"stage"`
	Name  string        `json:"name"`
	Count int           `json:"count"`
	Cards []models.Card `json:"cards"`
}

// CardsCmd returns the cards subcommand
func CardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List candidate cards grouped by stage",
		Long: `List the candidate cards the board would show, grouped by pipeline stage.

Cards come from board.cards_file (or $ETAPA_CARDS_FILE); without one the
built-in demo pipeline is used.

Examples:
  etapa cards
  etapa cards --stage interview-planned
  etapa cards --json
  etapa cards --quiet
`,
		Args: cobra.NoArgs,
		RunE: runCards,
	}

	cmd.Flags().String("stage", "", "Only list cards in this stage")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card IDs only)")

	return cmd
}

func runCards(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}

	stages := models.Stages()
	if raw, _ := cmd.Flags().GetString("stage"); raw != "" {
		stage, err := models.ParseStage(raw)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("UNKNOWN_STAGE", err.Error(),
				"Run 'etapa stages' to list valid stages"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.Exit(cli.ExitValidation, err)
		}
		stages = []models.Stage{stage}
	}

	all, err := cliInstance.Cards.List(ctx)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}
	byStage := models.CardsByStage(all)

	if formatter.Quiet {
		for _, stage := range stages {
			for _, c := range byStage[stage] {
				formatter.Println(c.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		columns := make([]columnView, 0, len(stages))
		for _, stage := range stages {
			cards := byStage[stage]
			if cards == nil {
				cards = []models.Card{}
			}
			columns = append(columns, columnView{
				Stage: string(stage),
				Name:  stage.DisplayName(),
				Count: len(cards),
				Cards: cards,
			})
		}
		return formatter.Success(columns)
	}

	for i, stage := range stages {
		if i > 0 {
			formatter.Printf("\n")
		}
		cards := byStage[stage]
		formatter.Printf("%s %s\n", styles.SectionStyle.Render(stage.DisplayName()),
			styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(cards))))
		if len(cards) == 0 {
			formatter.Printf("  %s\n", styles.SubtitleStyle.Render("No candidates"))
			continue
		}
		for _, c := range cards {
			formatter.Printf("  %s  %s\n", styles.SubtitleStyle.Render(c.ID), describe(c))
		}
	}
	return nil
}

func describe(c models.Card) string {
	out := styles.ValueStyle.Render(c.Name)
	switch {
	case c.Role != "" && c.Company != "":
		out += styles.SubtitleStyle.Render(fmt.Sprintf(" · %s at %s", c.Role, c.Company))
	case c.Role != "":
		out += styles.SubtitleStyle.Render(" · " + c.Role)
	case c.Company != "":
		out += styles.SubtitleStyle.Render(" · " + c.Company)
	}
	return out
}
