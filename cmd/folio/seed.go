package main

import (
	"fmt"
	"folio/internal/di"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default catalog into the document store",
	Long: `Seed writes personal info and every default list into the configured
document store. It does not check for existing records, so running it
twice duplicates list content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seeder, cleanup, err := di.InitSeeder(&flags)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := seeder.SeedAll(cmd.Context())
		for _, name := range slices.Sorted(maps.Keys(report)) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d\n", name, report[name])
		}
		return err
	},
}
