// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/pim-suite/mycontacts/internal/config"
)

var (
	configPath string // directory holding main.toml

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mycontacts",
	Short: "mycontacts serves the settings pages of the My Contacts module",
	Long: `mycontacts serves the settings pages of the My Contacts module.
It manages contact types and contact groups and keeps the contact type
entries embedded in every contact in sync when a type is renamed.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
