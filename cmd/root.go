package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/reelmates/reelmates-client/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "reelmates-client",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			app.RestoreSession,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
