package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/landkit/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "landkit",
	Short: "Landing pages with a live contact form",
	Long: `landkit renders marketing landing pages from a site catalogue and
handles their contact forms: live validation over datastar, rate limiting and
delivery to email, webhooks, a local lead inbox and S3.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before the process environment")

	rootCmd.AddCommand(serveCmd, submitCmd, leadsCmd)
}

func loadConfig() (appConfig, error) {
	return config.Load[appConfig](config.WithEnvFiles(envFiles...))
}
