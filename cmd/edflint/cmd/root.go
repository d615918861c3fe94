// Package cmd holds the edflint command tree: a package of
// *cobra.Command values registered onto a shared root command.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "edflint",
	Short: "Parse and lint .env-style (EDF) configuration files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level scanner tracing")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(lintCmd)
}

// Execute runs the edflint command tree.
func Execute() error {
	return rootCmd.Execute()
}
