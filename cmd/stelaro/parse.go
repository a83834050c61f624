package main

import (
	"github.com/spf13/cobra"

	"stelaro/internal/driver"
	"stelaro/internal/symbol"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.stelo>",
	Short: "Parse a stelo source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	symbol.InstallSession(symbol.New())
	defer symbol.TeardownSession()

	cfg := driver.Config{Input: driver.FileInput(args[0]), MaxDiagnostics: maxDiagnostics}
	result, err := driver.ParseOnly(cfg, nil)
	if err != nil {
		return err
	}

	if err := emitDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	dumpStelo(cmd.OutOrStdout(), result.Stelo)
	return exitIfErrors(result.Bag)
}
