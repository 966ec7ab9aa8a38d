package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/render"
	"github.com/rshade/filterpanel/internal/table"
)

// newFiltersEnableCmd creates "enable" or "disable".
func newFiltersEnableCmd(enable bool) *cobra.Command {
	use, short := "enable <url>", "Apply a subscribed list"
	if !enable {
		use, short = "disable <url>", "Stop applying a subscribed list without removing it"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := loadScreen(cmd, screenConfig{})
			if err != nil {
				return err
			}
			current, ok := filtering.FindByURL(screen.Filters(), args[0])
			if !ok {
				return fmt.Errorf("%w: %s", filtering.ErrFilterNotFound, args[0])
			}
			if err := screen.SetEnabled(cmd.Context(), current.URL, enable); err != nil {
				return err
			}
			cmd.Println(screen.Localizer().Get(intl.FilterUpdated, current.Name))
			return nil
		},
	}
}

func newFiltersRemoveCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "remove <url>...",
		Aliases: []string{"rm", "delete"},
		Short:   "Unsubscribe from one or more lists",
		Example: `  # Remove a list after confirmation
  filterpanel filters remove https://example.org/hosts.txt

  # Remove two allowlists without asking
  filterpanel filters remove --allowlist --yes /etc/dns/a.txt /etc/dns/b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := loadScreen(cmd, screenConfig{selectable: true})
			if err != nil {
				return err
			}

			filters := screen.Filters()
			for _, url := range args {
				if _, ok := filtering.FindByURL(filters, url); !ok {
					return fmt.Errorf("%w: %s", filtering.ErrFilterNotFound, url)
				}
			}
			screen.WithTable(func(t *table.Table[filtering.Filter]) {
				for _, url := range args {
					t.SelectRow(table.StringID(url), true)
				}
			})

			removed, err := screen.RemoveSelected(cmd.Context(), promptConfirm(cmd, assumeYes))
			if removed == 0 && err == nil {
				cmd.Println("Cancelled")
				return nil
			}
			cmd.Println(screen.Localizer().Get(intl.FiltersRemoved, removed))
			return err
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newFiltersRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Check subscribed lists for updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			screen, err := newScreen(cmd, kindFromFlags(cmd), screenConfig{})
			if err != nil {
				return err
			}
			updated, err := screen.HandleRefresh(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(screen.Localizer().Get(intl.FiltersUpdated, updated))
			return nil
		},
	}
}

// catalogRow is one line of the catalog listing.
type catalogRow struct {
	ID         string
	Name       string
	Category   string
	Source     string
	Subscribed bool
}

func catalogColumns() []table.Column[catalogRow] {
	return []table.Column[catalogRow]{
		{Key: "id", Header: "ID", Accessor: table.Field[catalogRow]("ID")},
		{Key: "name", Header: "Name", Accessor: table.Field[catalogRow]("Name")},
		{Key: "category", Header: "Category", Accessor: table.Field[catalogRow]("Category")},
		{
			Key:        "subscribed",
			Header:     "Subscribed",
			Accessor:   table.Field[catalogRow]("Subscribed"),
			Unsortable: true,
			Render: func(v any, _ catalogRow, _ int) any {
				if on, _ := v.(bool); on {
					return "yes"
				}
				return ""
			},
		},
		{Key: "source", Header: "Source", Accessor: table.Field[catalogRow]("Source")},
	}
}

func newFiltersCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the built-in catalog of well-known lists",
		Long: `Shows the lists that can be added with "filters add --catalog <id>",
marking the ones already subscribed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			screen, err := loadScreen(cmd, screenConfig{})
			if err != nil {
				return err
			}
			cat := screen.Catalog()
			if cat == nil {
				return errors.New("the built-in catalog could not be read")
			}

			subscribed := cat.SelectedValues(screen.Filters())
			ids := cat.IDs()
			rows := make([]catalogRow, 0, len(ids))
			for _, id := range ids {
				f := cat.Filters[id]
				rows = append(rows, catalogRow{
					ID:         id,
					Name:       f.Name,
					Category:   cat.Categories[f.CategoryID].Name,
					Source:     f.Source,
					Subscribed: subscribed.FilterIDs[id],
				})
			}

			t := table.New(rows, catalogColumns(), table.Options[catalogRow]{
				DisablePagination: true,
				DisableSort:       true,
				ClassName:         "catalog",
			})
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Catalog version %s\n", cat.Version)
			_, _ = fmt.Fprintln(out, render.NewText(out).Table(t.View()))
			return nil
		},
	}
}
