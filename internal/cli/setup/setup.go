package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/config"
)

// ErrConfigExists is returned when setup would overwrite a config file
var ErrConfigExists = errors.New("config file already exists")

// setupView is the JSON shape of a setup result
type setupView struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Written bool   `json:"written"`
}

// GetID implements cli.IDGetter
func (v setupView) GetID() string {
	return v.Path
}

// SetupCmd returns the setup subcommand
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a default config file",
		Long: `Write the default configuration to the config file so it can be edited.

The file goes to --config when given, otherwise to
$XDG_CONFIG_HOME/etapa/config.yaml (or ~/.config/etapa/config.yaml).

Examples:
  # Create the default config
  etapa setup

  # Show where the config lives and whether it exists
  etapa setup --check

  # Reset an existing config to defaults
  etapa setup --force
`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	cmd.Flags().Bool("check", false, "Only report the config path and whether it exists")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (config path only)")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	checkOnly, _ := cmd.Flags().GetBool("check")
	force, _ := cmd.Flags().GetBool("force")

	custom, _ := cmd.Flags().GetString("config")
	path := custom
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			_ = formatter.Error("CONFIG_PATH", err.Error())
			return cli.Exit(cli.ExitError, err)
		}
	}

	_, statErr := os.Stat(path)
	view := setupView{Path: path, Exists: statErr == nil}

	if checkOnly {
		return report(formatter, view)
	}

	if view.Exists && !force {
		err := fmt.Errorf("%w: %s", ErrConfigExists, path)
		_ = formatter.ErrorWithSuggestion("CONFIG_EXISTS", err.Error(), "Use --force to reset it to defaults")
		return cli.Exit(cli.ExitValidation, err)
	}

	cfg := config.Default()
	var err error
	if custom != "" {
		err = cfg.SaveFile(custom)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		err = fmt.Errorf("failed to write config: %w", err)
		_ = formatter.Error("CONFIG_WRITE", err.Error())
		return cli.Exit(cli.ExitError, err)
	}

	view.Written = true
	view.Exists = true
	return report(formatter, view)
}

func report(formatter *cli.OutputFormatter, view setupView) error {
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	switch {
	case view.Written:
		formatter.Printf("✓ Wrote default config to %s\n", styles.ValueStyle.Render(view.Path))
	case view.Exists:
		formatter.Printf("%s %s\n", styles.LabelStyle.Render("Config file:"), styles.ValueStyle.Render(view.Path))
	default:
		formatter.Printf("%s %s %s\n", styles.LabelStyle.Render("Config file:"), styles.ValueStyle.Render(view.Path),
			styles.SubtitleStyle.Render("(not created, run 'etapa setup')"))
	}
	return nil
}
