package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
// Loading already rejects invalid files, so reaching RunE means the file is valid.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax of the known sections
- Server URL scheme and host
- Page size and page size options`,
		Example: `  # Validate current configuration
  filterpanel config validate

  # Validate and show the effective settings
  filterpanel config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			cmd.Println("✅ Configuration is valid")

			if verbose {
				cmd.Printf("\nConfiguration file: %s\n", cfg.Path())
				cmd.Printf("Server: %s\n", cfg.Server.URL)
				cmd.Printf("Timeout: %s\n", cfg.Server.Timeout)
				cmd.Printf("Page size: %d (options %v)\n", cfg.UI.PageSize, cfg.UI.PageSizeOptions)
				cmd.Printf("Locale: %s\n", cfg.UI.Locale)
				cmd.Printf("Log level: %s\n", cfg.Logging.Level)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed configuration")

	return cmd
}
