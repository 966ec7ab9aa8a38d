package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/filterpanel/internal/pagination"
)

// SortDirection is the order of the active sort.
type SortDirection string

const (
	// SortAsc sorts smallest first.
	SortAsc SortDirection = "asc"
	// SortDesc sorts largest first.
	SortDesc SortDirection = "desc"
)

// ErrInvalidSortDirection is returned when a direction is neither "asc" nor "desc".
var ErrInvalidSortDirection = errors.New("sort direction must be 'asc' or 'desc'")

// ParseSortDirection parses "asc" or "desc", case-insensitively.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortDirection, s)
	}
}

// SortSpec names a sort column and direction.
type SortSpec struct {
	Key       string
	Direction SortDirection
}

// Defaults applied by New.
const (
	DefaultPageSize     = 10
	DefaultEmptyMessage = "No data available"
)

// Appearance holds cosmetic flags passed through to renderers.
type Appearance struct {
	Striped  bool
	Bordered bool
	Hover    bool
}

// DefaultAppearance returns the appearance used when Options.Appearance is nil.
func DefaultAppearance() Appearance {
	return Appearance{Striped: true, Bordered: true, Hover: true}
}

// Options configures a Table. The zero value is a paginated, sortable,
// non-selectable table with ten rows per page.
type Options[T any] struct {
	// Loading replaces the whole table body with a loading placeholder.
	Loading bool

	// EmptyMessage is shown as the only body row when there are no rows.
	EmptyMessage string

	// ClassName is an extra styling hint for renderers.
	ClassName string

	// DisablePagination renders every sorted row on a single page.
	DisablePagination bool

	// PageSize is the initial page size; PageSizeOptions the sizes offered.
	PageSize        int
	PageSizeOptions []int

	// OnPageSizeChange is called after the user picks a page size. Persisting the
	// choice is up to the caller.
	OnPageSizeChange func(size int)

	// DisableSort turns header sorting off for every column.
	DisableSort bool

	// DefaultSort seeds the initial sort.
	DefaultSort *SortSpec

	// OnSortChange is called with the new key and direction after every sort change.
	OnSortChange func(key string, direction SortDirection)

	// Selectable enables row selection.
	Selectable bool

	// SelectedRows seeds the selection. The table keeps its own copy.
	SelectedRows Selection

	// OnSelectionChange is called with the full updated selection after each change.
	OnSelectionChange func(selected Selection)

	// GetRowID derives a row's id from the row and its position in the sorted rows.
	// When nil the position itself is used.
	GetRowID func(row T, index int) RowID

	// Appearance controls striping, borders and hover; nil means DefaultAppearance.
	Appearance *Appearance

	// PagerLabels overrides the pager texts.
	PagerLabels pagination.Labels
}

// State is the table's view state.
type State struct {
	CurrentPage   int
	PageSize      int
	SortKey       string
	SortDirection SortDirection
	Selected      Selection
}

// Row is a visible row together with its derived identity.
type Row[T any] struct {
	Data T

	// Index is the row's position on the visible page.
	Index int

	// Position is the row's position in the full sorted list.
	Position int

	ID       RowID
	Selected bool
}

// Table is a sortable, paginated, selectable view over caller-owned rows.
// It is not safe for concurrent use.
type Table[T any] struct {
	data    []T
	columns []Column[T]
	opts    Options[T]
	state   State

	sorted      []T
	sortedValid bool
}

// New creates a table over data with the given column schema.
func New[T any](data []T, columns []Column[T], opts Options[T]) *Table[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	t := &Table[T]{
		data:    data,
		columns: columns,
		opts:    opts,
		state: State{
			PageSize:      pageSize,
			SortDirection: SortAsc,
			Selected:      opts.SelectedRows.Clone(),
		},
	}

	if opts.DefaultSort != nil {
		t.state.SortKey = opts.DefaultSort.Key
		if opts.DefaultSort.Direction == SortDesc {
			t.state.SortDirection = SortDesc
		}
	}

	t.reconcile()
	return t
}

// Data returns the rows as supplied by the caller, unsorted.
func (t *Table[T]) Data() []T {
	return t.data
}

// Columns returns the column schema.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// State returns a snapshot of the view state.
func (t *Table[T]) State() State {
	st := t.state
	st.Selected = t.state.Selected.Clone()
	return st
}

// Loading reports whether the table is in loading mode.
func (t *Table[T]) Loading() bool {
	return t.opts.Loading
}

// SetLoading switches loading mode on or off.
func (t *Table[T]) SetLoading(loading bool) {
	t.opts.Loading = loading
}

// SetData replaces the rows. The current page is re-clamped; selection is kept.
func (t *Table[T]) SetData(data []T) {
	t.data = data
	t.reconcile()
}

// SetColumns replaces the column schema. A sort key whose column is gone or no
// longer sortable reverts to unsorted, and the current page is re-clamped.
func (t *Table[T]) SetColumns(columns []Column[T]) {
	t.columns = columns
	t.reconcile()
}

// reconcile restores the state invariants after any change.
func (t *Table[T]) reconcile() {
	t.sortedValid = false
	if t.state.SortKey != "" {
		if c, ok := t.column(t.state.SortKey); !ok || !c.Sortable() {
			t.state.SortKey = ""
			t.state.SortDirection = SortAsc
		}
	}
	t.state.CurrentPage = pagination.Clamp(t.state.CurrentPage, t.TotalPages())
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, c := range t.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// CanSort reports whether a header click on key would sort.
func (t *Table[T]) CanSort(key string) bool {
	if t.opts.DisableSort {
		return false
	}
	c, ok := t.column(key)
	return ok && c.Sortable()
}

// Sort handles a click on the header of column key. A new key sorts ascending;
// clicking the active ascending key flips to descending and the active descending
// key flips back to ascending. The page resets to the first one. Clicks on
// unknown or unsortable columns change nothing and return false.
func (t *Table[T]) Sort(key string) bool {
	if !t.CanSort(key) {
		return false
	}

	dir := SortAsc
	if t.state.SortKey == key && t.state.SortDirection == SortAsc {
		dir = SortDesc
	}
	return t.applySort(key, dir)
}

// SortBy sets the sort key and direction directly, as a restored or
// command-line supplied sort would. It follows the same rules as Sort.
func (t *Table[T]) SortBy(key string, dir SortDirection) bool {
	if !t.CanSort(key) || (dir != SortAsc && dir != SortDesc) {
		return false
	}
	return t.applySort(key, dir)
}

func (t *Table[T]) applySort(key string, dir SortDirection) bool {
	t.state.SortKey = key
	t.state.SortDirection = dir
	t.state.CurrentPage = 0
	t.sortedValid = false

	if t.opts.OnSortChange != nil {
		t.opts.OnSortChange(key, dir)
	}
	return true
}

// SetPage moves to page, clamped to the available pages. It returns whether the
// current page changed.
func (t *Table[T]) SetPage(page int) bool {
	page = pagination.Clamp(page, t.TotalPages())
	if page == t.state.CurrentPage {
		return false
	}
	t.state.CurrentPage = page
	return true
}

// SetPageSize changes the page size, resets to the first page and reports the new
// size through OnPageSizeChange. Non-positive sizes are ignored.
func (t *Table[T]) SetPageSize(size int) bool {
	if size <= 0 {
		return false
	}
	t.state.PageSize = size
	t.state.CurrentPage = 0

	if t.opts.OnPageSizeChange != nil {
		t.opts.OnPageSizeChange(size)
	}
	return true
}

// SelectRow adds or removes a single id. It does nothing on a non-selectable table.
func (t *Table[T]) SelectRow(id RowID, selected bool) bool {
	if !t.opts.Selectable {
		return false
	}
	if selected {
		t.state.Selected[id] = struct{}{}
	} else {
		delete(t.state.Selected, id)
	}
	t.notifySelection()
	return true
}

// SelectAll adds or removes the ids of the rows on the visible page. Rows on other
// pages keep their selection state. An empty page changes nothing and reports false.
func (t *Table[T]) SelectAll(selected bool) bool {
	if !t.opts.Selectable {
		return false
	}
	rows := t.VisibleRows()
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if selected {
			t.state.Selected[row.ID] = struct{}{}
		} else {
			delete(t.state.Selected, row.ID)
		}
	}
	t.notifySelection()
	return true
}

func (t *Table[T]) notifySelection() {
	if t.opts.OnSelectionChange != nil {
		t.opts.OnSelectionChange(t.state.Selected.Clone())
	}
}

// IsSelected reports whether id is selected.
func (t *Table[T]) IsSelected(id RowID) bool {
	return t.state.Selected.Has(id)
}

// AllVisibleSelected reports whether the visible page is non-empty and every row
// on it is selected. It drives the header checkbox.
func (t *Table[T]) AllVisibleSelected() bool {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if !row.Selected {
			return false
		}
	}
	return true
}

// SortedRows returns all rows in sort order. When nothing is sorted, sorting is
// disabled or the active column cannot be sorted, the caller's order is kept.
// The returned slice must not be modified.
func (t *Table[T]) SortedRows() []T {
	if t.sortedValid {
		return t.sorted
	}
	t.sorted = t.sortRows()
	t.sortedValid = true
	return t.sorted
}

func (t *Table[T]) sortRows() []T {
	if t.opts.DisableSort || t.state.SortKey == "" {
		return t.data
	}
	c, ok := t.column(t.state.SortKey)
	if !ok || !c.Sortable() {
		return t.data
	}

	sorted := slices.Clone(t.data)
	dir := t.state.SortDirection
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareSortValues(c.Accessor.Value(a), c.Accessor.Value(b), dir)
	})
	return sorted
}

// TotalRows returns the number of rows after sorting.
func (t *Table[T]) TotalRows() int {
	return len(t.SortedRows())
}

// TotalPages returns ceil(TotalRows / PageSize).
func (t *Table[T]) TotalPages() int {
	return pagination.TotalPages(t.TotalRows(), t.state.PageSize)
}

// VisibleRows returns the rows on the current page, or every sorted row when
// pagination is disabled.
func (t *Table[T]) VisibleRows() []Row[T] {
	sorted := t.SortedRows()
	start, end := 0, len(sorted)
	if !t.opts.DisablePagination {
		start, end = pagination.Bounds(t.state.CurrentPage, t.state.PageSize, len(sorted))
	}

	rows := make([]Row[T], 0, end-start)
	for pos := start; pos < end; pos++ {
		id := t.rowID(sorted[pos], pos)
		rows = append(rows, Row[T]{
			Data:     sorted[pos],
			Index:    pos - start,
			Position: pos,
			ID:       id,
			Selected: t.state.Selected.Has(id),
		})
	}
	return rows
}

func (t *Table[T]) rowID(row T, position int) RowID {
	if t.opts.GetRowID != nil {
		return t.opts.GetRowID(row, position)
	}
	return IntID(int64(position))
}

// Pager returns the pager control for the current state. It reports false when
// pagination is disabled or there are no pages.
func (t *Table[T]) Pager() (pagination.Pager, bool) {
	if t.opts.DisablePagination {
		return pagination.Pager{}, false
	}
	total := t.TotalPages()
	if total == 0 {
		return pagination.Pager{}, false
	}

	opts := t.opts.PageSizeOptions
	if len(opts) == 0 {
		opts = pagination.DefaultPageSizeOptions()
	}

	return pagination.Pager{
		CurrentPage:     t.state.CurrentPage,
		TotalPages:      total,
		PageSize:        t.state.PageSize,
		TotalItems:      t.TotalRows(),
		PageSizeOptions: opts,
		Labels:          t.opts.PagerLabels,
		OnPageChange:    func(page int) { t.SetPage(page) },
		OnPageSizeChange: func(size int) {
			t.SetPageSize(size)
		},
	}, true
}
