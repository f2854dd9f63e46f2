// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webfolio",
	Short: "Webfolio is a web-based portfolio content management system",
	Long: `Webfolio is a web-based portfolio content management system
that serves a public portfolio site and provides an admin panel for
managing sections, projects, links, messages and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
