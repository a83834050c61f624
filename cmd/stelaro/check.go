package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stelaro/internal/diag"
	"stelaro/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [file.stelo]",
	Short: "Run the full pipeline (lex, parse, resolve, lower, check) and report diagnostics",
	Long: "Run the full pipeline (lex, parse, resolve, lower, check) and report diagnostics.\n" +
		"With no file argument, discovers stelaro.toml in the current directory or an\n" +
		"ancestor and compiles its [run].main entry.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	input, err := resolveCheckInput(args)
	if err != nil {
		return err
	}

	cfg := driver.Config{Input: input, MaxDiagnostics: maxDiagnostics}
	result, err := driver.Compile(cfg, nil, nil)
	if err != nil {
		return err
	}

	if err := emitDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	if showTimings {
		for _, p := range result.Timings.Phases {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %7.2f ms\n", p.Name, p.DurationMS)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %7.2f ms\n", "total", result.Timings.TotalMS)
	}

	errors := countSeverity(result.Bag, diag.SevError)
	warnings := countSeverity(result.Bag, diag.SevWarning) - errors
	fmt.Fprintln(cmd.OutOrStdout(), driver.Summary(errors, warnings))

	return exitIfErrors(result.Bag)
}

// resolveCheckInput builds the InputSpec to compile: the explicit file
// argument if given, otherwise the [run].main entry of a discovered
// stelaro.toml.
func resolveCheckInput(args []string) (driver.InputSpec, error) {
	if len(args) == 1 {
		return driver.FileInput(args[0]), nil
	}

	manifest, ok, err := driver.DiscoverManifest(".")
	if err != nil {
		return driver.InputSpec{}, err
	}
	if !ok {
		return driver.InputSpec{}, fmt.Errorf("no file given and no stelaro.toml found")
	}
	return manifest.InputSpec()
}
