package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Config prints the settings after defaults, the config file, .env and
MOODART_* environment variables have been applied. The output is a valid
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path := c.configFile
				if path == "" {
					path = config.DefaultPath()
				}
				printKeyValue("config", path)
				return nil
			}
			return c.Config.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file location instead")
	return cmd
}
