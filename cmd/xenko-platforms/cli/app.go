// cmd/xenko-platforms/cli/app.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aminator9000/xenko/cmd/xenko-platforms/output"
)

var rootCmd = &cobra.Command{
	Use:   "xenko-platforms",
	Short: "Reconfigure the target platforms of a Xenko game project",
	Long: `xenko-platforms regenerates per-platform build projects and patches a
game project's target framework declarations to match a new platform
selection.

Complete documentation is available at https://github.com/Aminator9000/xenko`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringP("verbosity", "", "normal", "Display verbosity (quiet, normal, detailed)")
	rootCmd.PersistentFlags().BoolP("non-interactive", "", false, "Do not prompt for user input or confirmations")
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
