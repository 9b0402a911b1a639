package main

import (
	"strings"

	"github.com/aretw0/proptree"
	"github.com/aretw0/proptree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of proptree",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(proptree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
