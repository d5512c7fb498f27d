package main

import (
	"fmt"
	"folio/internal/di"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Load a dump written by export into the document store",
	Long: `Restore upserts every document of the dump, keeping its id. Documents
that exist in the store but not in the dump are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, cleanup, err := di.InitFileManager(&flags)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := fm.LoadFromFile(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored from %s\n", args[0])
		return nil
	},
}
