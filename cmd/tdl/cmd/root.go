package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tdl",
	Short: "Front end for the type declaration language",
	Long: `tdl parses type declaration files into a declaration tree.

The tree describes the public shape of code (functions, classes,
interfaces and their types) and is consumed by downstream tooling for
type checking or stub generation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
