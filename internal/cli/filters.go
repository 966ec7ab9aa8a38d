package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/api"
	"github.com/rshade/filterpanel/internal/config"
	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/logging"
)

// ErrUnknownSortField is returned for a --sort field that names no sortable column.
var ErrUnknownSortField = errors.New("unknown sort field")

// sortFields maps accepted --sort names to column keys.
//
//nolint:gochecknoglobals // Static lookup table.
var sortFields = map[string]string{
	"name":         filtering.ColumnName,
	"url":          filtering.ColumnURL,
	"rules":        filtering.ColumnRulesCount,
	"rulescount":   filtering.ColumnRulesCount,
	"rules_count":  filtering.ColumnRulesCount,
	"updated":      filtering.ColumnLastUpdated,
	"lastupdated":  filtering.ColumnLastUpdated,
	"last_updated": filtering.ColumnLastUpdated,
}

// NewFiltersCmd creates the filters command group. Every subcommand works on
// blocklists unless --allowlist is given.
func NewFiltersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filters",
		Aliases: []string{"filter", "lists"},
		Short:   "Manage DNS blocklists and allowlists",
		Long: `Browse and change the filter list subscriptions of the server.

Blocklists are managed by default; pass --allowlist to work on allowlists.`,
	}

	cmd.PersistentFlags().Bool("allowlist", false, "manage allowlists instead of blocklists")

	cmd.AddCommand(
		newFiltersListCmd(),
		newFiltersAddCmd(),
		newFiltersEditCmd(),
		newFiltersEnableCmd(true),
		newFiltersEnableCmd(false),
		newFiltersRemoveCmd(),
		newFiltersRefreshCmd(),
		newFiltersCatalogCmd(),
		newFiltersTUICmd(),
	)

	return cmd
}

// kindFromFlags returns the list kind selected by --allowlist.
func kindFromFlags(cmd *cobra.Command) filtering.Kind {
	if allow, _ := cmd.Flags().GetBool("allowlist"); allow {
		return filtering.KindAllowlist
	}
	return filtering.KindBlocklist
}

// screenConfig tunes a screen built for one command.
type screenConfig struct {
	// pageSize overrides the configured and saved page size when positive.
	pageSize   int
	selectable bool
}

// newClient builds a control API client from the server configuration.
func newClient() *api.Client {
	server := config.GetServerConfig()
	opts := []api.Option{api.WithTimeout(server.Timeout)}
	if server.Username != "" {
		opts = append(opts, api.WithBasicAuth(server.Username, server.Password))
	}
	return api.NewClient(server.URL, opts...)
}

// newScreen builds the screen of kind against the configured server. A
// positive sc.pageSize is applied for this run only; otherwise the page size
// is read from and saved to the preference store.
func newScreen(cmd *cobra.Command, kind filtering.Kind, sc screenConfig) (*filtering.Screen, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	ui := config.GetUIConfig()

	cat, err := filtering.DefaultCatalog()
	if err != nil {
		log.Warn().Ctx(ctx).Str("component", "cli").Err(err).Msg("list catalog unavailable")
	}

	opts := filtering.ScreenOptions{
		Kind:            kind,
		Localizer:       intl.New(ui.Locale),
		Catalog:         cat,
		PageSize:        ui.PageSize,
		PageSizeOptions: ui.PageSizeOptions,
		Selectable:      sc.selectable,
	}

	if sc.pageSize > 0 {
		opts.PageSize = sc.pageSize
	} else {
		prefs, prefsErr := config.OpenPrefsStore("")
		if prefsErr != nil {
			log.Warn().Ctx(ctx).Str("component", "cli").Err(prefsErr).Msg("could not read preferences")
		}
		if prefs != nil {
			opts.Prefs = prefs
		}
	}

	return filtering.NewScreen(ctx, newClient(), opts)
}

// loadScreen builds and loads a screen.
func loadScreen(cmd *cobra.Command, sc screenConfig) (*filtering.Screen, error) {
	screen, err := newScreen(cmd, kindFromFlags(cmd), sc)
	if err != nil {
		return nil, err
	}
	if err := screen.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return screen, nil
}

// promptConfirm returns a ConfirmFunc reading the answer from the command's input,
// or nil when assumeYes is set.
func promptConfirm(cmd *cobra.Command, assumeYes bool) filtering.ConfirmFunc {
	if assumeYes {
		return nil
	}
	return func(message string) bool {
		return Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), message).Accepted
	}
}

// sortColumn resolves a --sort field to a column key.
func sortColumn(field string) (string, error) {
	key, ok := sortFields[strings.ToLower(field)]
	if !ok {
		return "", fmt.Errorf("%w: %q (use name, url, rules or updated)", ErrUnknownSortField, field)
	}
	return key, nil
}

// formError adds the localized validation message to form errors.
func formError(loc *intl.Localizer, err error) error {
	if msg := filtering.ValidationMessage(loc, err); msg != "" {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}
