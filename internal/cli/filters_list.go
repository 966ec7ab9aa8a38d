package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/pagination"
	"github.com/rshade/filterpanel/internal/render"
	"github.com/rshade/filterpanel/internal/table"
)

// Output formats of the list command.
const (
	outputText = "text"
	outputHTML = "html"
	outputJSON = "json"
)

// ErrInvalidOutput is returned for an unsupported --output value.
var ErrInvalidOutput = errors.New("output must be 'text', 'html' or 'json'")

// listResult is the JSON form of a listing.
type listResult struct {
	Kind       string             `json:"kind"`
	Filters    []filtering.Filter `json:"filters"`
	Pagination pagination.Meta    `json:"pagination"`
}

func newFiltersListCmd() *cobra.Command {
	params := pagination.NewParams()
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribed filter lists",
		Long: `Shows one page of the subscribed lists with their state, rule count and
last update time.

Page size defaults to the last size chosen in the interactive view. An explicit
--page-size applies to this run only.`,
		Example: `  # First page of blocklists
  filterpanel filters list

  # Third page of 20 allowlists
  filterpanel filters list --allowlist --page 3 --page-size 20

  # Largest lists first
  filterpanel filters list --sort rules:desc

  # Machine readable output with paging metadata
  filterpanel filters list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFiltersList(cmd, *params, output)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "page number to show (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "rows per page (default: saved preference)")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort by field[:asc|desc]: name, url, rules, updated")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, html or json")

	return cmd
}

func runFiltersList(cmd *cobra.Command, params pagination.Params, output string) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if output != outputText && output != outputHTML && output != outputJSON {
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, output)
	}

	var (
		sortKey string
		sortDir table.SortDirection
	)
	if field, order, _ := pagination.ParseSort(params.Sort); field != "" {
		key, err := sortColumn(field)
		if err != nil {
			return err
		}
		dir, err := table.ParseSortDirection(order)
		if err != nil {
			return err
		}
		sortKey, sortDir = key, dir
	}

	screen, err := loadScreen(cmd, screenConfig{pageSize: params.PageSize})
	if err != nil {
		return err
	}

	var (
		view     table.View
		rows     []filtering.Filter
		pageSize int
	)
	screen.WithTable(func(t *table.Table[filtering.Filter]) {
		if sortKey != "" {
			t.SortBy(sortKey, sortDir)
		}
		t.SetPage(params.PageIndex())
		view = t.View()
		pageSize = t.State().PageSize
		for _, row := range t.VisibleRows() {
			rows = append(rows, row.Data)
		}
	})

	out := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		return writeListJSON(out, screen.Kind(), view, rows, pageSize)
	case outputHTML:
		r, htmlErr := render.NewHTML()
		if htmlErr != nil {
			return htmlErr
		}
		r.LoadingText = screen.Localizer().Get(intl.LoadingText)
		return r.Table(out, view)
	default:
		text := render.NewText(out)
		_, _ = fmt.Fprintln(out, screen.Title())
		_, _ = fmt.Fprintln(out, text.Table(view))
		return nil
	}
}

func writeListJSON(w io.Writer, kind filtering.Kind, view table.View, rows []filtering.Filter, pageSize int) error {
	result := listResult{
		Kind:    kind.String(),
		Filters: rows,
	}
	if result.Filters == nil {
		result.Filters = []filtering.Filter{}
	}
	if view.Pager != nil {
		result.Pagination = pagination.NewMeta(*view.Pager)
	} else {
		result.Pagination = pagination.Meta{PageSize: pageSize}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
