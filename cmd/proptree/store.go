package main

import (
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push FILE NAME",
	Short: "Save a document into the store under NAME",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := signalContext()
		defer cancel()
		return newApp(cmd).Push(ctx, store, args[0], args[1])
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull NAME OUT",
	Short: "Write the stored document NAME to OUT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := signalContext()
		defer cancel()
		return newApp(cmd).Pull(ctx, store, args[0], args[1])
	},
}

var storedCmd = &cobra.Command{
	Use:   "stored",
	Short: "List the documents held by the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := signalContext()
		defer cancel()
		return newApp(cmd).Stored(ctx, store)
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(storedCmd)
}
