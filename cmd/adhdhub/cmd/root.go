package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adhdhub",
	Short: "ADHD Hub web server",
	Long: `ADHD Hub serves an ADHD information page with a per-visit message board.

Available commands:
  serve              Start the HTTP server
  content validate   Check a content catalog before deploying it
  version            Print the version

Use "adhdhub [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
