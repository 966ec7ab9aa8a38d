package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/rshade/filterpanel/internal/pagination"
	"github.com/rshade/filterpanel/internal/table"
	"github.com/rshade/filterpanel/internal/tabs"
)

// Texter is implemented by cell contents with a dedicated terminal form.
type Texter interface {
	Text() string
}

// PixelsPerCell maps column widths, given in CSS pixels, to terminal cells.
const PixelsPerCell = 8

// Checkbox markers for selectable tables.
const (
	CheckboxOn  = "[x]"
	CheckboxOff = "[ ]"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle   = cellStyle.Foreground(lipgloss.Color("252"))
	evenRowStyle  = cellStyle.Foreground(lipgloss.Color("245"))
	selectedStyle = cellStyle.Reverse(true)
	cursorStyle   = cellStyle.Bold(true).Foreground(lipgloss.Color("39"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Text renders snapshots for a terminal.
type Text struct {
	// Styled enables colors and emphasis. Plain output is used for pipes and tests.
	Styled bool

	// Cursor highlights the visible row with this index; -1 disables it.
	Cursor int

	// LoadingText replaces DefaultLoadingText when set.
	LoadingText string
}

// NewText returns a text renderer that styles its output only when w is a terminal.
func NewText(w io.Writer) *Text {
	return &Text{Styled: IsTerminal(w), Cursor: -1}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// Table renders the table snapshot with its pager line.
func (r *Text) Table(v table.View) string {
	if v.Loading {
		if r.LoadingText != "" {
			return r.LoadingText
		}
		return DefaultLoadingText
	}

	headers := make([]string, 0, len(v.Headers)+1)
	if v.Selectable {
		headers = append(headers, checkbox(v.HeaderChecked))
	}
	for _, h := range v.Headers {
		headers = append(headers, r.headerLabel(h))
	}

	rows := make([][]string, 0, len(v.Rows))
	if v.Empty {
		rows = append(rows, r.emptyRow(v))
	}
	for _, row := range v.Rows {
		cells := make([]string, 0, len(row.Cells)+1)
		if v.Selectable {
			cells = append(cells, checkbox(row.Selected))
		}
		for _, c := range row.Cells {
			cells = append(cells, cellText(c.Value))
		}
		rows = append(rows, cells)
	}

	t := ltable.New().
		Headers(headers...).
		Rows(rows...).
		BorderRow(false).
		BorderColumn(v.Appearance.Bordered).
		BorderLeft(v.Appearance.Bordered).
		BorderRight(v.Appearance.Bordered).
		BorderTop(v.Appearance.Bordered).
		BorderBottom(v.Appearance.Bordered)
	if v.Appearance.Bordered {
		t = t.Border(lipgloss.RoundedBorder())
	} else {
		t = t.Border(lipgloss.HiddenBorder())
	}

	base := func(int, int) lipgloss.Style { return cellStyle }
	if r.Styled {
		t = t.BorderStyle(borderStyle)
		base = r.styleFunc(v)
	}
	t = t.StyleFunc(sizedStyle(base, columnWidths(v, headers, rows)))

	var b strings.Builder
	b.WriteString(t.Render())
	if v.Pager != nil {
		b.WriteString("\n")
		b.WriteString(r.Pager(*v.Pager))
	}
	return b.String()
}

func (r *Text) styleFunc(v table.View) ltable.StyleFunc {
	return func(row, _ int) lipgloss.Style {
		switch {
		case row == ltable.HeaderRow:
			return headerStyle
		case v.Empty:
			return faintStyle.Padding(0, 1)
		case row == r.Cursor:
			return cursorStyle
		case row < len(v.Rows) && v.Rows[row].Selected:
			return selectedStyle
		case v.Appearance.Striped && row%2 == 1:
			return evenRowStyle
		default:
			return oddRowStyle
		}
	}
}

// sizedStyle fixes the width of every column with a non-zero entry in widths.
func sizedStyle(base ltable.StyleFunc, widths []int) ltable.StyleFunc {
	return func(row, col int) lipgloss.Style {
		s := base(row, col)
		if col < len(widths) && widths[col] > 0 {
			s = s.Width(widths[col] + s.GetHorizontalPadding())
		}
		return s
	}
}

// columnWidths returns the content width in cells of each rendered column, or 0
// where the column sets no sizing. Width replaces the natural content width;
// MinWidth and MaxWidth then bound it.
func columnWidths(v table.View, headers []string, rows [][]string) []int {
	offset := 0
	if v.Selectable {
		offset = 1
	}
	widths := make([]int, len(headers))
	for i, h := range v.Headers {
		if h.Width <= 0 && h.MinWidth <= 0 && h.MaxWidth <= 0 {
			continue
		}
		col := i + offset
		w := lipgloss.Width(headers[col])
		for _, row := range rows {
			if col < len(row) {
				w = max(w, lipgloss.Width(row[col]))
			}
		}
		if h.Width > 0 {
			w = cells(h.Width)
		}
		if h.MinWidth > 0 {
			w = max(w, cells(h.MinWidth))
		}
		if h.MaxWidth > 0 {
			w = min(w, cells(h.MaxWidth))
		}
		widths[col] = w
	}
	return widths
}

func cells(px int) int {
	return (px + PixelsPerCell - 1) / PixelsPerCell
}

func (r *Text) headerLabel(h table.HeaderView) string {
	indicator := h.Indicator()
	if indicator == "" {
		return h.Header
	}
	if !h.Active {
		if !r.Styled {
			return h.Header
		}
		indicator = faintStyle.Render(indicator)
	}
	return h.Header + " " + indicator
}

// emptyRow places the message in the first column; lipgloss tables have no
// column spans.
func (r *Text) emptyRow(v table.View) []string {
	row := make([]string, max(v.ColSpan, 1))
	row[0] = v.EmptyMessage
	return row
}

// Pager renders the pager as a single status line.
func (r *Text) Pager(p pagination.Pager) string {
	parts := make([]string, 0, 5)
	for _, c := range p.Controls() {
		label := c.Label
		if c.Disabled && r.Styled {
			label = faintStyle.Render(label)
		}
		parts = append(parts, label)
	}
	parts = append(parts, p.Info())
	return strings.Join(parts, "  ")
}

// Tabs renders the tab strip followed by the active content.
func (r *Text) Tabs(v tabs.View) string {
	labels := make([]string, 0, len(v.Nav))
	for _, item := range v.Nav {
		switch {
		case !r.Styled && item.Active:
			labels = append(labels, "["+item.Label+"]")
		case !r.Styled:
			labels = append(labels, " "+item.Label+" ")
		case item.Active:
			labels = append(labels, activeTab.Render(item.Label))
		default:
			labels = append(labels, inactiveTab.Render(item.Label))
		}
	}

	nav := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	content := cellText(v.Content)
	if content == "" {
		return nav
	}
	return nav + "\n" + content
}

func checkbox(on bool) string {
	if on {
		return CheckboxOn
	}
	return CheckboxOff
}

func cellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case Texter:
		return c.Text()
	default:
		return fmt.Sprint(c)
	}
}
