package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aminator9000/xenko/cmd/xenko-platforms/output"
	"github.com/Aminator9000/xenko/cmd/xenko-platforms/ui"
	"github.com/Aminator9000/xenko/gameproject"
	"github.com/Aminator9000/xenko/observability"
	"github.com/Aminator9000/xenko/platforms"
	"github.com/Aminator9000/xenko/templates"
)

// UpdateOptions holds the configuration for the update command.
type UpdateOptions struct {
	ProjectPath string
	Platforms   []string
}

// NewUpdateCommand creates the 'update' subcommand.
func NewUpdateCommand(console *output.Console) *cobra.Command {
	opts := &UpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the platforms a game project builds for",
		Long: `Update the platforms a game project builds for.

Regenerates the per-platform build projects and merges the new target
framework declarations into the game project file. Without --platform
the current selection is edited interactively.

Examples:
  xenko-platforms update
  xenko-platforms update --platform Windows --platform Android
  xenko-platforms update --project SpaceEscape.csproj --platform iOS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, console, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ProjectPath, "project", "", "The game project file to operate on (defaults to current directory)")
	cmd.Flags().StringArrayVarP(&opts.Platforms, "platform", "p", nil, "Target platform to enable (repeatable)")

	return cmd
}

func runUpdate(cmd *cobra.Command, console *output.Console, opts *UpdateOptions) error {
	applyVerbosity(cmd, console)

	projectPath := opts.ProjectPath
	if projectPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		foundPath, err := gameproject.FindProjectFile(currentDir)
		if err != nil {
			return err
		}
		projectPath = foundPath
	}

	proj, err := gameproject.Load(projectPath)
	if err != nil {
		return err
	}

	selected, err := resolveSelection(cmd, proj, opts)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			console.Println("Canceled.")
			return nil
		}
		return err
	}

	updater := &gameproject.Updater{
		Log:      commandLogger(cmd),
		Renderer: templates.Renderer{},
	}
	if err := updater.Update(proj, selected); err != nil {
		return err
	}

	names := make([]string, len(selected))
	for i, p := range selected {
		names[i] = p.String()
	}
	console.Success("Updated '%s' for platforms: %s", projectPath, strings.Join(names, ", "))
	return nil
}

// resolveSelection takes the platform list from flags, or prompts when
// running interactively on a terminal.
func resolveSelection(cmd *cobra.Command, proj *gameproject.GameProject, opts *UpdateOptions) ([]platforms.Platform, error) {
	if len(opts.Platforms) > 0 {
		var selected []platforms.Platform
		for _, name := range opts.Platforms {
			p, err := platforms.Parse(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, p)
		}
		return selected, nil
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if nonInteractive || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no --platform given and not running interactively")
	}

	return ui.SelectPlatforms(platforms.All(), proj.Platforms())
}

func applyVerbosity(cmd *cobra.Command, console *output.Console) {
	verbosity, _ := cmd.Flags().GetString("verbosity")
	switch verbosity {
	case "quiet":
		console.SetVerbosity(output.VerbosityQuiet)
	case "detailed":
		console.SetVerbosity(output.VerbosityDetailed)
	default:
		console.SetVerbosity(output.VerbosityNormal)
	}
}

func commandLogger(cmd *cobra.Command) observability.Logger {
	verbosity, _ := cmd.Flags().GetString("verbosity")
	switch verbosity {
	case "quiet":
		return observability.NewNullLogger()
	case "detailed":
		return observability.NewLogger(os.Stderr, observability.DebugLevel)
	default:
		return observability.NewLogger(os.Stderr, observability.WarnLevel)
	}
}
