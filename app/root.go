// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "crawldesk",
	Short: "CrawlDesk is the admin dashboard of the crawler and knowledge base platform",
	Long: `CrawlDesk is the admin dashboard of the crawler and knowledge base platform.
It serves the dashboard screens with their breadcrumb navigation and lets you
inspect the configured route table from the command line.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
