package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pim-suite/mycontacts/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump the config as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, including the environment override",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			var out string
			if dumpJSON {
				out, err = config.DumpConfigJSON(&c)
			} else {
				out, err = config.DumpConfig(&c)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
