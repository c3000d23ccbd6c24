// cmd/xenko-platforms/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aminator9000/xenko/cmd/xenko-platforms/cli"
	"github.com/Aminator9000/xenko/cmd/xenko-platforms/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date
	cli.SetupVersion()

	cli.AddCommand(commands.NewUpdateCommand(cli.Console))
	cli.AddCommand(commands.NewListCommand(cli.Console))

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		os.Exit(130) // 128 + SIGINT
	}()

	if err := cli.Execute(); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
