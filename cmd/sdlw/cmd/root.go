// Package cmd implements the sdlw CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TomekTTX/sdlw/pkg/app"
)

var rootCmd = &cobra.Command{
	Use:           "sdlw",
	Short:         "sdlw - a retained-widget GUI toolkit",
	Long:          "sdlw renders a retained component tree onto a pixel surface.\nThe demo command builds a showcase window against the software backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sdlw: %v\n", err)
		return err
	}
	return nil
}

// newLogger builds a console logger at the given level; an empty or
// unknown level disables logging.
func newLogger(level string) zerolog.Logger {
	if level == "" || level == "disabled" {
		return zerolog.Nop()
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop()
	}
	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	return zerolog.New(console).Level(parsed).With().Timestamp().Logger()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the toolkit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sdlw", app.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
