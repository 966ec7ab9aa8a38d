package render

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/google/uuid"

	"github.com/rshade/filterpanel/internal/pagination"
	"github.com/rshade/filterpanel/internal/table"
	"github.com/rshade/filterpanel/internal/tabs"
)

//go:embed templates/*
var templateFS embed.FS

// DefaultLoadingText is shown in place of a loading table.
const DefaultLoadingText = "Loading..."

// HTMLer is implemented by cell and tab contents that render themselves.
type HTMLer interface {
	HTML() safehtml.HTML
}

// HTML renders snapshots to HTML fragments.
type HTML struct {
	tmpl *template.Template

	// LoadingText replaces DefaultLoadingText when set.
	LoadingText string

	newID func() string
}

// NewHTML parses the embedded templates.
func NewHTML() (*HTML, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tmpl, err := template.New("filterpanel").ParseFS(trustedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &HTML{tmpl: tmpl, newID: uuid.NewString}, nil
}

type htmlHeader struct {
	Key            string
	Label          string
	Class          string
	Style          *safehtml.Style
	Sortable       bool
	Indicator      string
	IndicatorClass string
}

type htmlCell struct {
	Class   string
	Content safehtml.HTML
}

type htmlRow struct {
	ID       string
	Class    string
	Selected bool
	Cells    []htmlCell
}

type htmlPager struct {
	Controls []pagination.Control
	Info     string
	Sizes    []pagination.SizeOption
}

type htmlTable struct {
	ID            safehtml.Identifier
	Class         string
	TableClass    string
	Loading       bool
	LoadingText   string
	Selectable    bool
	HeaderChecked bool
	Headers       []htmlHeader
	Rows          []htmlRow
	Empty         bool
	EmptyMessage  string
	ColSpan       int
	Pager         *htmlPager
}

type htmlNav struct {
	ID    string
	Label string
	Class string
}

type htmlTabs struct {
	ID      safehtml.Identifier
	Class   string
	Nav     []htmlNav
	Content safehtml.HTML
}

// Table writes the table snapshot, including its pager, to w.
func (r *HTML) Table(w io.Writer, v table.View) error {
	if err := r.tmpl.ExecuteTemplate(w, "table", r.tableModel(v)); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

// TableHTML renders the table snapshot as trusted HTML, for embedding in a tab.
func (r *HTML) TableHTML(v table.View) (safehtml.HTML, error) {
	out, err := r.tmpl.Lookup("table").ExecuteToHTML(r.tableModel(v))
	if err != nil {
		return safehtml.HTML{}, fmt.Errorf("rendering table: %w", err)
	}
	return out, nil
}

// Pager writes a standalone pager control to w.
func (r *HTML) Pager(w io.Writer, p pagination.Pager) error {
	if err := r.tmpl.ExecuteTemplate(w, "pager", pagerModel(p)); err != nil {
		return fmt.Errorf("rendering pager: %w", err)
	}
	return nil
}

// Tabs writes the tab strip and the active tab's content to w.
func (r *HTML) Tabs(w io.Writer, v tabs.View) error {
	m := htmlTabs{
		ID:      safehtml.IdentifierFromConstantPrefix("tabs", r.newID()),
		Class:   v.ClassName,
		Nav:     make([]htmlNav, 0, len(v.Nav)),
		Content: contentHTML(v.Content),
	}
	for _, item := range v.Nav {
		class := "tabs__nav-item"
		if item.Active {
			class += " tabs__nav-item--active"
		}
		m.Nav = append(m.Nav, htmlNav{ID: item.ID, Label: item.Label, Class: class})
	}

	if err := r.tmpl.ExecuteTemplate(w, "tabs", m); err != nil {
		return fmt.Errorf("rendering tabs: %w", err)
	}
	return nil
}

func (r *HTML) tableModel(v table.View) htmlTable {
	m := htmlTable{
		ID:    safehtml.IdentifierFromConstantPrefix("table", r.newID()),
		Class: v.ClassName,
	}
	if v.Loading {
		m.Loading = true
		m.LoadingText = r.LoadingText
		if m.LoadingText == "" {
			m.LoadingText = DefaultLoadingText
		}
		return m
	}

	m.TableClass = tableClass(v.Appearance)
	m.Selectable = v.Selectable
	m.HeaderChecked = v.HeaderChecked
	m.Empty = v.Empty
	m.EmptyMessage = v.EmptyMessage
	m.ColSpan = v.ColSpan

	m.Headers = make([]htmlHeader, 0, len(v.Headers))
	for _, h := range v.Headers {
		indicatorClass := "table__sort-indicator"
		if !h.Active {
			indicatorClass += " table__sort-indicator--inactive"
		}
		m.Headers = append(m.Headers, htmlHeader{
			Key:            h.Key,
			Label:          h.Header,
			Class:          h.ClassName,
			Style:          widthStyle(h),
			Sortable:       h.Sortable,
			Indicator:      h.Indicator(),
			IndicatorClass: indicatorClass,
		})
	}

	m.Rows = make([]htmlRow, 0, len(v.Rows))
	for _, row := range v.Rows {
		hr := htmlRow{ID: row.ID.String(), Selected: row.Selected, Cells: make([]htmlCell, 0, len(row.Cells))}
		if row.Selected {
			hr.Class = "table-active"
		}
		for _, c := range row.Cells {
			hr.Cells = append(hr.Cells, htmlCell{Class: c.ClassName, Content: contentHTML(c.Value)})
		}
		m.Rows = append(m.Rows, hr)
	}

	if v.Pager != nil {
		p := pagerModel(*v.Pager)
		m.Pager = &p
	}
	return m
}

func pagerModel(p pagination.Pager) htmlPager {
	return htmlPager{Controls: p.Controls(), Info: p.Info(), Sizes: p.SizeOptions()}
}

// widthStyle returns the pixel sizing of a header cell, or nil when the column
// sets none.
func widthStyle(h table.HeaderView) *safehtml.Style {
	var b strings.Builder
	for _, p := range []struct {
		name string
		px   int
	}{
		{"width", h.Width},
		{"min-width", h.MinWidth},
		{"max-width", h.MaxWidth},
	} {
		if p.px > 0 {
			fmt.Fprintf(&b, "%s:%dpx;", p.name, p.px)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	// Only fixed property names and integers are written above.
	style := uncheckedconversions.StyleFromStringKnownToSatisfyTypeContract(b.String())
	return &style
}

func tableClass(a table.Appearance) string {
	classes := []string{"table"}
	if a.Striped {
		classes = append(classes, "table-striped")
	}
	if a.Bordered {
		classes = append(classes, "table-bordered")
	}
	if a.Hover {
		classes = append(classes, "table-hover")
	}
	return strings.Join(classes, " ")
}

// contentHTML converts a cell or tab value to HTML, escaping anything that is not
// already trusted.
func contentHTML(v any) safehtml.HTML {
	switch c := v.(type) {
	case nil:
		return safehtml.HTML{}
	case safehtml.HTML:
		return c
	case HTMLer:
		return c.HTML()
	case string:
		return safehtml.HTMLEscaped(c)
	default:
		return safehtml.HTMLEscaped(fmt.Sprint(c))
	}
}
