package main

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Re-encode a document, expanding includes",
	Long:  `Loads IN and writes it to OUT. Files ending in .yaml or .yml are YAML, anything else is JSON.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Convert(args[0], args[1])
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Render a table of every value in a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Describe(args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(describeCmd)
}
