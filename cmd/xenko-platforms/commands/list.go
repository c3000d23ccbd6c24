package commands

import (
	"github.com/spf13/cobra"

	"github.com/Aminator9000/xenko/cmd/xenko-platforms/output"
	"github.com/Aminator9000/xenko/gameproject"
	"github.com/Aminator9000/xenko/platforms"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(console *output.Console) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported target platforms",
		Long: `List supported target platforms with their target framework and
default graphics API. With --project, marks the platforms the project
currently builds for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			var current []platforms.Platform
			if projectPath != "" {
				proj, err := gameproject.Load(projectPath)
				if err != nil {
					return err
				}
				current = proj.Platforms()
			}

			console.Printf("%-10s %-30s %-12s %s\n", "PLATFORM", "TARGET FRAMEWORK", "GRAPHICS", "ENABLED")
			for _, p := range platforms.All() {
				enabled := ""
				for _, c := range current {
					if c == p {
						enabled = "*"
					}
				}
				console.Printf("%-10s %-30s %-12s %s\n", p, p.TargetFramework(), p.GraphicsPlatform(), enabled)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "Game project file to inspect")

	return cmd
}
