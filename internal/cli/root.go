package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/config"
	"github.com/rshade/filterpanel/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the filterpanel CLI.
// It loads configuration, wires up logging and tracing, and adds the filters
// and config command groups.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
		serverURL  string
		locale     string
	)

	cmd := &cobra.Command{
		Use:           "filterpanel",
		Short:         "Manage DNS filter lists of an AdGuard Home compatible server",
		Long:          "filterpanel: browse, add, edit and remove DNS blocklists and allowlists",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if serverURL != "" {
				cfg.Server.URL = serverURL
			}
			if locale != "" {
				cfg.UI.Locale = locale
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the configuration file (default $FILTERPANEL_HOME/config.yaml)")
	cmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"control API base URL, overrides the configuration file and "+config.EnvServerURL)
	cmd.PersistentFlags().StringVar(&locale, "locale", "", "interface language, e.g. en or de")

	cmd.AddCommand(NewFiltersCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # List blocklists, 20 per page, sorted by rule count
  filterpanel filters list --page-size 20 --sort rules:desc

  # List allowlists as JSON
  filterpanel filters list --allowlist --output json

  # Subscribe to a list
  filterpanel filters add --name "My hosts" --url https://example.org/hosts.txt

  # Subscribe to well-known lists from the built-in catalog
  filterpanel filters add --catalog adaway,urlhaus

  # Check all lists for updates
  filterpanel filters refresh

  # Browse lists interactively
  filterpanel filters tui

  # Initialize configuration
  filterpanel config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
