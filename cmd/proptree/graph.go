package main

import (
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph FILE [PATH]",
	Short: "Print the tree as a Mermaid flowchart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		highlight, _ := cmd.Flags().GetStringSlice("highlight")
		return newApp(cmd).Graph(args[0], optionalPath(args), highlight)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "Paths to highlight, relative to PATH")
}
