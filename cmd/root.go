package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/cards"
	"github.com/thenoetrevino/etapa/internal/cli/setup"
	"github.com/thenoetrevino/etapa/internal/cli/stage"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/launcher"
	"github.com/thenoetrevino/etapa/internal/logging"
)

const (
	// needsCards marks commands that read the card set
	needsCards = "needs_cards"
	// skipConfig marks commands that must run even when the config is broken
	skipConfig = "skip_config"
)

// NewRootCmd builds the etapa command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "etapa",
		Short: "Etapa - a recruitment pipeline board",
		Long: `Etapa is a terminal kanban board for recruitment pipelines.

Drag candidate cards between stages with the mouse; hold a card near the
board edge to scroll. Run without a subcommand to open the board.`,
		Annotations:       map[string]string{needsCards: "true"},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: prepare,
		RunE:              runBoard,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/etapa/config.yaml)")
	rootCmd.PersistentFlags().String("cards", "", "Cards YAML file (overrides board.cards_file and $"+config.CardsFileEnv+")")

	cardsCmd := cards.CardsCmd()
	cardsCmd.Annotations = map[string]string{needsCards: "true"}

	rootCmd.AddCommand(stage.StagesCmd())
	rootCmd.AddCommand(stage.PreviewCmd())
	rootCmd.AddCommand(cardsCmd)

	setupCmd := setup.SetupCmd()
	setupCmd.Annotations = map[string]string{skipConfig: "true"}
	rootCmd.AddCommand(setupCmd)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func prepare(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
		return cli.Exit(cli.ExitDataErr, err)
	}
	styles.Init(cfg.ColorScheme)

	if cmd.Annotations[needsCards] != "true" {
		return nil
	}

	c, err := cli.NewCLI(cmd.Context(), cfg, logging.Logger)
	if err != nil {
		code := cli.ExitDataErr
		if errors.Is(err, os.ErrNotExist) {
			code = cli.ExitNotFound
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
		return cli.Exit(code, err)
	}
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cardsFile, _ := cmd.Flags().GetString("cards"); cardsFile != "" {
		cfg.Board.CardsFile = cardsFile
	}
	return cfg, nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return launcher.Launch(cmd.Context(), c)
}
