package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "doccover",
	Short:        "Documentation coverage for Java API snapshots",
	Long:         `doccover measures how much of a Java API is documented, from a structural snapshot of its packages, types and members.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
