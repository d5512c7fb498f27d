package main

import (
	"fmt"
	"folio/internal/di"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a zstd compressed dump of every collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, cleanup, err := di.InitFileManager(&flags)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := fm.SaveToFile(cmd.Context(), exportOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "folio-export.json.zst", "Destination file")
}
