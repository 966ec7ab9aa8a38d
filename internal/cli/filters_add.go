package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/intl"
)

// ErrUnknownCatalogID is returned when --catalog names an id missing from the catalog.
var ErrUnknownCatalogID = errors.New("unknown catalog id")

func newFiltersAddCmd() *cobra.Command {
	var (
		form       = filtering.DefaultFormValues()
		catalogIDs []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Subscribe to a filter list",
		Long: `Subscribes to a list given by URL or absolute path, or to entries of the
built-in catalog. Catalog entries that are already subscribed are skipped.`,
		Example: `  # Add a custom blocklist
  filterpanel filters add --name "My hosts" --url https://example.org/hosts.txt

  # Add a local allowlist
  filterpanel filters add --allowlist --name local --url /etc/dns/allow.txt

  # Add catalog entries (see "filterpanel filters catalog")
  filterpanel filters add --catalog adaway,urlhaus`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(catalogIDs) > 0 {
				if cmd.Flags().Changed("url") {
					return errors.New("--catalog and --url are mutually exclusive")
				}
				return runAddFromCatalog(cmd, catalogIDs)
			}
			return runAddManual(cmd, form)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "display name of the list")
	cmd.Flags().StringVar(&form.URL, "url", "", "URL or absolute path of the list")
	cmd.Flags().StringSliceVar(&catalogIDs, "catalog", nil, "catalog ids to subscribe to")

	return cmd
}

func runAddManual(cmd *cobra.Command, form filtering.FormValues) error {
	screen, err := loadScreen(cmd, screenConfig{})
	if err != nil {
		return err
	}
	loc := screen.Localizer()

	if err := screen.Add(cmd.Context(), form); err != nil {
		return formError(loc, err)
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = strings.TrimSpace(form.URL)
	}
	cmd.Println(loc.Get(intl.FilterAdded, name))
	return nil
}

func runAddFromCatalog(cmd *cobra.Command, ids []string) error {
	screen, err := loadScreen(cmd, screenConfig{})
	if err != nil {
		return err
	}
	cat := screen.Catalog()
	if cat == nil {
		return filtering.ErrCatalogUnavailable
	}

	values := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := cat.Filters[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCatalogID, id)
		}
		values[id] = true
	}

	added, err := screen.AddFromCatalog(cmd.Context(), values)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		cmd.Println("All selected lists are already subscribed")
		return nil
	}

	loc := screen.Localizer()
	for _, f := range added {
		cmd.Println(loc.Get(intl.FilterAdded, f.Name))
	}
	return nil
}

func newFiltersEditCmd() *cobra.Command {
	var (
		name    string
		newURL  string
		enabled bool
	)

	cmd := &cobra.Command{
		Use:   "edit <url>",
		Short: "Rename, move or toggle a subscribed list",
		Long: `Updates the list currently subscribed at <url>. Only the given flags change;
the other values are kept.`,
		Example: `  # Rename a list
  filterpanel filters edit https://example.org/hosts.txt --name "Example hosts"

  # Point a list at a new location
  filterpanel filters edit https://example.org/hosts.txt --url https://example.org/v2/hosts.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := loadScreen(cmd, screenConfig{})
			if err != nil {
				return err
			}

			current, ok := filtering.FindByURL(screen.Filters(), args[0])
			if !ok {
				return fmt.Errorf("%w: %s", filtering.ErrFilterNotFound, args[0])
			}

			form := filtering.FormValues{Name: current.Name, URL: current.URL, Enabled: current.Enabled}
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("url") {
				form.URL = newURL
			}
			if cmd.Flags().Changed("enabled") {
				form.Enabled = enabled
			}

			loc := screen.Localizer()
			if err := screen.Edit(cmd.Context(), current.URL, form); err != nil {
				return formError(loc, err)
			}

			label := strings.TrimSpace(form.Name)
			if label == "" {
				label = current.URL
			}
			cmd.Println(loc.Get(intl.FilterUpdated, label))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&newURL, "url", "", "new URL or absolute path")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the list is applied")

	return cmd
}
