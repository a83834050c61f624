package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stelaro/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the stelaro build version",
	Run: func(cmd *cobra.Command, args []string) {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stelaro %s\n", v)
		if commit := strings.TrimSpace(version.GitCommit); commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		}
		if date := strings.TrimSpace(version.BuildDate); date != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
		}
	},
}
