package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stelaro/internal/diag"
	"stelaro/internal/driver"
	"stelaro/internal/source"
)

// emitDiagnostics sorts bag, then renders it through a TermEmitter honoring
// the --color persistent flag.
func emitDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	bag.Sort()
	emitter := driver.NewTermEmitter(os.Stderr, fs, colorMode)
	for _, d := range bag.Items() {
		emitter.Emit(*d)
	}
	return nil
}

func countSeverity(bag *diag.Bag, min diag.Severity) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= min {
			n++
		}
	}
	return n
}

// exitIfErrors returns a non-nil error (causing main to exit 1) when bag
// holds any SevError-or-above diagnostic, without re-printing anything —
// the diagnostics themselves were already emitted by emitDiagnostics.
func exitIfErrors(bag *diag.Bag) error {
	if bag.HasErrors() {
		return fmt.Errorf("%d error(s)", countSeverity(bag, diag.SevError))
	}
	return nil
}
