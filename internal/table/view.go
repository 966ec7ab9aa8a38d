package table

import "github.com/rshade/filterpanel/internal/pagination"

// Sort indicators shown next to sortable headers.
const (
	IndicatorAsc  = "▲"
	IndicatorDesc = "▼"
)

// HeaderView is a rendered column header.
type HeaderView struct {
	Key       string
	Header    string
	Sortable  bool
	Active    bool
	Direction SortDirection
	Width     int
	MinWidth  int
	MaxWidth  int
	ClassName string
}

// Indicator returns the sort arrow for the header, or "" for unsortable columns.
// Inactive sortable headers get the ascending arrow; renderers dim it.
func (h HeaderView) Indicator() string {
	if !h.Sortable {
		return ""
	}
	if h.Active && h.Direction == SortDesc {
		return IndicatorDesc
	}
	return IndicatorAsc
}

// CellView is a rendered cell.
type CellView struct {
	Value     any
	ClassName string
}

// RowView is a rendered body row.
type RowView struct {
	ID       RowID
	Index    int
	Selected bool
	Cells    []CellView
}

// View is a renderer-neutral snapshot of the table.
type View struct {
	// Loading means only a loading placeholder should be shown; no other field
	// except ClassName is populated.
	Loading bool

	ClassName  string
	Appearance Appearance
	Selectable bool

	// HeaderChecked is the state of the select-all checkbox.
	HeaderChecked bool

	Headers []HeaderView
	Rows    []RowView

	// Empty means the body consists of EmptyMessage spanning ColSpan columns.
	Empty        bool
	EmptyMessage string
	ColSpan      int

	// Pager is nil when no pager control should be shown.
	Pager *pagination.Pager
}

// View derives the renderable snapshot of the table.
func (t *Table[T]) View() View {
	if t.opts.Loading {
		return View{Loading: true, ClassName: t.opts.ClassName}
	}

	appearance := DefaultAppearance()
	if t.opts.Appearance != nil {
		appearance = *t.opts.Appearance
	}

	v := View{
		ClassName:    t.opts.ClassName,
		Appearance:   appearance,
		Selectable:   t.opts.Selectable,
		EmptyMessage: t.opts.EmptyMessage,
		ColSpan:      len(t.columns),
	}
	if v.EmptyMessage == "" {
		v.EmptyMessage = DefaultEmptyMessage
	}
	if v.Selectable {
		v.ColSpan++
	}

	v.Headers = make([]HeaderView, 0, len(t.columns))
	for _, c := range t.columns {
		v.Headers = append(v.Headers, HeaderView{
			Key:       c.Key,
			Header:    c.Header,
			Sortable:  t.CanSort(c.Key),
			Active:    t.state.SortKey == c.Key,
			Direction: t.state.SortDirection,
			Width:     c.Width,
			MinWidth:  c.MinWidth,
			MaxWidth:  c.MaxWidth,
			ClassName: c.ClassName,
		})
	}

	rows := t.VisibleRows()
	v.Empty = len(rows) == 0
	v.Rows = make([]RowView, 0, len(rows))
	for _, row := range rows {
		cells := make([]CellView, 0, len(t.columns))
		for _, c := range t.columns {
			cells = append(cells, CellView{Value: c.Cell(row.Data, row.Index), ClassName: c.ClassName})
		}
		v.Rows = append(v.Rows, RowView{
			ID:       row.ID,
			Index:    row.Index,
			Selected: row.Selected,
			Cells:    cells,
		})
	}
	v.HeaderChecked = t.AllVisibleSelected()

	if pager, ok := t.Pager(); ok {
		v.Pager = &pager
	}
	return v
}
