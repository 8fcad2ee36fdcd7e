package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langid/internal/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		bi := version.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "langid-client %s\n", bi.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Git Commit: %s\n", bi.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Build Date: %s\n", bi.Date)
		fmt.Fprintf(cmd.OutOrStdout(), "Go Version: %s\n", bi.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
