// Command stelaro is the CLI front end for the stelaro compiler: tokenize,
// parse, and check subcommands over the lex/parse/lower/resolve/check
// pipeline in internal/driver, plus a version command.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stelaro",
	Short: "stelaro language front-end",
	Long:  "stelaro tokenizes, parses, and type-checks .stelo source files.",
}

func main() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
