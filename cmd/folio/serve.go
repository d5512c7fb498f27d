package main

import (
	"folio/internal/di"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, cleanup, err := di.InitApp(&flags)
		if err != nil {
			fatal("Error initializing app", err)
		}
		defer cleanup()

		if err := app.Run(); err != nil {
			cleanup()
			fatal("Server stopped", err)
		}
	},
}
