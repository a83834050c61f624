package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stelaro/internal/driver"
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.stelo>",
	Short: "Tokenize a stelo source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	symbol.InstallSession(symbol.New())
	defer symbol.TeardownSession()

	cfg := driver.Config{Input: driver.FileInput(args[0]), MaxDiagnostics: maxDiagnostics}
	result, err := driver.Tokenize(cfg, nil)
	if err != nil {
		return err
	}

	if err := emitDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tok := range result.Tokens {
		if tok.Kind == token.Ident || tok.Kind.IsLiteral() {
			fmt.Fprintf(out, "%-16s %q\n", tok.Kind.String(), tok.Symbol.String())
		} else {
			fmt.Fprintf(out, "%-16s\n", tok.Kind.String())
		}
	}
	return exitIfErrors(result.Bag)
}
