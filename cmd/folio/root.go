package main

import (
	"fmt"
	"folio/internal/structures"
	"os"

	"github.com/spf13/cobra"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio content service",
	Long: `Folio serves a personal portfolio from a document store, falling back
to a built-in default catalog, and exposes an admin API to edit it.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Mirror logs to the console")
	rootCmd.AddCommand(serveCmd, seedCmd, exportCmd, restoreCmd)
}
