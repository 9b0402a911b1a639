package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get FILE PATH",
	Short: "Print the scalar at PATH",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Get(args[0], args[1])
	},
}

var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE",
	Short: "Store a string scalar at PATH and save the document",
	Long: `Creates any missing nodes along PATH, stores VALUE as a string and writes
FILE back. Included documents are expanded into FILE and comments are lost.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Set(args[0], args[1], args[2])
	},
}

var lenCmd = &cobra.Command{
	Use:   "len FILE PATH",
	Short: "Print the number of elements of the list at PATH",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Len(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(lenCmd)
}
