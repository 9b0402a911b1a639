package main

import (
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree FILE [PATH]",
	Short: "Print a document as an indented tree",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Tree(args[0], optionalPath(args))
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls FILE [PATH]",
	Short: "List the children of a node",
	Long:  `Lists the children of the node at PATH. List elements are shown as name[index].`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).List(args[0], optionalPath(args))
	},
}

func optionalPath(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return "/"
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(lsCmd)
}
