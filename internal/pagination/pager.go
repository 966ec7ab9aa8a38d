package pagination

import (
	"fmt"
	"strconv"
)

// Default pager labels.
const (
	DefaultPreviousText = "Previous"
	DefaultNextText     = "Next"
	DefaultPageText     = "Page"
	DefaultRowsText     = "rows"
	FirstText           = "<<"
	LastText            = ">>"
)

// DefaultPageSizeOptions returns the page sizes offered when the caller supplies none.
func DefaultPageSizeOptions() []int {
	return []int{10, 20, 30, 40, 50}
}

// Action identifies one of the pager navigation buttons.
type Action int

const (
	// ActionFirst jumps to the first page.
	ActionFirst Action = iota
	// ActionPrevious moves one page back.
	ActionPrevious
	// ActionNext moves one page forward.
	ActionNext
	// ActionLast jumps to the last page.
	ActionLast
)

// Labels holds the user-visible pager texts. Empty fields fall back to the defaults.
type Labels struct {
	Previous string
	Next     string
	Page     string
	Rows     string
}

func (l Labels) withDefaults() Labels {
	if l.Previous == "" {
		l.Previous = DefaultPreviousText
	}
	if l.Next == "" {
		l.Next = DefaultNextText
	}
	if l.Page == "" {
		l.Page = DefaultPageText
	}
	if l.Rows == "" {
		l.Rows = DefaultRowsText
	}
	return l
}

// Pager is the pager control. It holds no state of its own: the owner passes the
// current values in and receives the user's intent back through OnPageChange and
// OnPageSizeChange. Choosing a new page size can change TotalPages, so the owner is
// responsible for re-clamping or resetting its current page afterwards.
type Pager struct {
	CurrentPage     int
	TotalPages      int
	PageSize        int
	TotalItems      int
	PageSizeOptions []int
	Labels          Labels

	OnPageChange     func(page int)
	OnPageSizeChange func(size int)
}

// Control describes a single navigation button.
type Control struct {
	Action   Action
	Label    string
	Target   int
	Disabled bool
}

// SizeOption describes one entry of the page-size selector.
type SizeOption struct {
	Size     int
	Label    string
	Selected bool
}

// CanPrevious reports whether the first/previous controls are enabled.
func (p Pager) CanPrevious() bool {
	return p.CurrentPage > 0
}

// CanNext reports whether the next/last controls are enabled.
func (p Pager) CanNext() bool {
	return p.CurrentPage < p.TotalPages-1
}

// Target returns the page an action navigates to and whether the action is enabled.
// The page is always within [0, TotalPages-1], or 0 when there are no pages.
func (p Pager) Target(action Action) (int, bool) {
	var page int
	var ok bool
	switch action {
	case ActionFirst:
		page, ok = 0, p.CanPrevious()
	case ActionPrevious:
		page, ok = p.CurrentPage-1, p.CanPrevious()
	case ActionNext:
		page, ok = p.CurrentPage+1, p.CanNext()
	case ActionLast:
		page, ok = p.TotalPages-1, p.CanNext()
	default:
		page = p.CurrentPage
	}
	return Clamp(page, p.TotalPages), ok
}

// Press performs a navigation action. Disabled actions do nothing and return false.
func (p Pager) Press(action Action) bool {
	page, ok := p.Target(action)
	if !ok {
		return false
	}
	if p.OnPageChange != nil {
		p.OnPageChange(page)
	}
	return true
}

// First jumps to the first page.
func (p Pager) First() bool { return p.Press(ActionFirst) }

// Previous moves one page back.
func (p Pager) Previous() bool { return p.Press(ActionPrevious) }

// Next moves one page forward.
func (p Pager) Next() bool { return p.Press(ActionNext) }

// Last jumps to the last page.
func (p Pager) Last() bool { return p.Press(ActionLast) }

// SelectPageSize reports a page-size choice to the owner. Non-positive sizes are ignored.
func (p Pager) SelectPageSize(size int) bool {
	if size <= 0 {
		return false
	}
	if p.OnPageSizeChange != nil {
		p.OnPageSizeChange(size)
	}
	return true
}

// Info returns the summary line, e.g. "Page 2 / 3 | rows: 25".
func (p Pager) Info() string {
	l := p.Labels.withDefaults()
	return fmt.Sprintf("%s %d / %d | %s: %d", l.Page, p.CurrentPage+1, p.TotalPages, l.Rows, p.TotalItems)
}

// Controls returns the four navigation buttons in display order.
func (p Pager) Controls() []Control {
	l := p.Labels.withDefaults()
	labels := []struct {
		action Action
		label  string
	}{
		{ActionFirst, FirstText},
		{ActionPrevious, l.Previous},
		{ActionNext, l.Next},
		{ActionLast, LastText},
	}

	controls := make([]Control, 0, len(labels))
	for _, item := range labels {
		target, ok := p.Target(item.action)
		controls = append(controls, Control{
			Action:   item.action,
			Label:    item.label,
			Target:   target,
			Disabled: !ok,
		})
	}
	return controls
}

// SizeOptions returns the page-size selector entries.
func (p Pager) SizeOptions() []SizeOption {
	l := p.Labels.withDefaults()
	opts := p.PageSizeOptions
	if len(opts) == 0 {
		opts = DefaultPageSizeOptions()
	}
	out := make([]SizeOption, 0, len(opts))
	for _, size := range opts {
		out = append(out, SizeOption{
			Size:     size,
			Label:    strconv.Itoa(size) + " " + l.Rows,
			Selected: size == p.PageSize,
		})
	}
	return out
}

// TotalPages returns ceil(totalItems / pageSize). It returns 0 for an empty set or
// a non-positive page size.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// Clamp confines page to [0, totalPages). With no pages it returns 0.
func Clamp(page, totalPages int) int {
	if totalPages <= 0 || page < 0 {
		return 0
	}
	if page >= totalPages {
		return totalPages - 1
	}
	return page
}

// Bounds returns the half-open slice range [start, end) of a page, clamped to totalItems.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func Bounds(page, pageSize, totalItems int) (start, end int) {
	if page < 0 || pageSize <= 0 {
		return 0, 0
	}
	start = page * pageSize
	if start > totalItems {
		start = totalItems
	}
	end = start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
