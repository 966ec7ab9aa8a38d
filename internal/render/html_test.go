package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/safehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/filterpanel/internal/table"
	"github.com/rshade/filterpanel/internal/tabs"
)

type entry struct {
	Name  string
	Count int
}

type link struct{ text string }

func (l link) HTML() safehtml.HTML {
	return safehtml.HTMLConcat(safehtml.HTMLEscaped("<"), safehtml.HTMLEscaped(l.text), safehtml.HTMLEscaped(">"))
}

func entryColumns() []table.Column[entry] {
	return []table.Column[entry]{
		{Key: "name", Header: "Name", Accessor: table.Field[entry]("Name")},
		{Key: "count", Header: "Count", Accessor: table.Field[entry]("Count")},
		{Key: "actions", Header: "Actions", Unsortable: true, Render: func(_ any, e entry, _ int) any {
			return link{text: "edit " + e.Name}
		}},
	}
}

func newTestHTML(t *testing.T) *HTML {
	t.Helper()
	r, err := NewHTML()
	require.NoError(t, err)
	r.newID = func() string { return "fixed" }
	return r
}

func TestHTML_Table(t *testing.T) {
	r := newTestHTML(t)
	data := []entry{{Name: "<b>bold</b>", Count: 2}, {Name: "plain", Count: 1}}
	tbl := table.New(data, entryColumns(), table.Options[entry]{Selectable: true, PageSize: 1})
	require.True(t, tbl.Sort("count"))
	require.True(t, tbl.SelectRow(table.IntID(0), true))

	var buf bytes.Buffer
	require.NoError(t, r.Table(&buf, tbl.View()))
	out := buf.String()

	assert.Contains(t, out, `id="table-fixed"`)
	assert.Contains(t, out, "table table-striped table-bordered table-hover")
	assert.Contains(t, out, "&lt;edit plain&gt;")
	assert.NotContains(t, out, "<b>bold</b>")
	assert.Contains(t, out, `class="table-active"`)
	assert.Contains(t, out, table.IndicatorAsc)
	assert.Contains(t, out, "table__sort-indicator--inactive")
	assert.Contains(t, out, "Page 1 / 2 | rows: 2")
	assert.Contains(t, out, "disabled")
}

func TestHTML_TableEscapesCells(t *testing.T) {
	r := newTestHTML(t)
	tbl := table.New([]entry{{Name: "<script>x</script>"}}, entryColumns(), table.Options[entry]{})

	var buf bytes.Buffer
	require.NoError(t, r.Table(&buf, tbl.View()))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestHTML_TableEmptyAndLoading(t *testing.T) {
	r := newTestHTML(t)

	var buf bytes.Buffer
	empty := table.New(nil, entryColumns(), table.Options[entry]{EmptyMessage: "No blocklists", Selectable: true})
	require.NoError(t, r.Table(&buf, empty.View()))
	assert.Contains(t, buf.String(), `colspan="4"`)
	assert.Contains(t, buf.String(), "No blocklists")
	assert.NotContains(t, buf.String(), "pagination")

	buf.Reset()
	loading := table.New([]entry{{Name: "a"}}, entryColumns(), table.Options[entry]{Loading: true})
	require.NoError(t, r.Table(&buf, loading.View()))
	assert.Contains(t, buf.String(), DefaultLoadingText)
	assert.NotContains(t, buf.String(), "<table")
}

func TestHTML_PlainAppearance(t *testing.T) {
	r := newTestHTML(t)
	tbl := table.New([]entry{{Name: "a"}}, entryColumns(), table.Options[entry]{Appearance: &table.Appearance{}})

	var buf bytes.Buffer
	require.NoError(t, r.Table(&buf, tbl.View()))
	assert.Contains(t, buf.String(), `<table class="table">`)
}

func TestHTML_TableColumnWidths(t *testing.T) {
	r := newTestHTML(t)
	cols := entryColumns()
	cols[0].Width, cols[0].MinWidth, cols[0].MaxWidth = 120, 80, 200
	cols[2].MaxWidth = 90
	tbl := table.New([]entry{{Name: "a"}}, cols, table.Options[entry]{})

	var buf bytes.Buffer
	require.NoError(t, r.Table(&buf, tbl.View()))
	out := buf.String()

	assert.Contains(t, out, `style="width:120px;min-width:80px;max-width:200px;"`)
	assert.Contains(t, out, `style="max-width:90px;"`)
	assert.Equal(t, 2, strings.Count(out, "style="), "unsized columns carry no style")
}

func TestHTML_Tabs(t *testing.T) {
	r := newTestHTML(t)
	tbl := table.New([]entry{{Name: "inner"}}, entryColumns(), table.Options[entry]{})
	content, err := r.TableHTML(tbl.View())
	require.NoError(t, err)

	strip := tabs.New([]tabs.Item[safehtml.HTML]{
		{ID: "blocklists", Label: "Blocklists", Content: content},
		{ID: "allowlists", Label: "Allowlists"},
	}, tabs.Options{})

	var buf bytes.Buffer
	require.NoError(t, r.Tabs(&buf, strip.View()))
	out := buf.String()
	assert.Contains(t, out, `id="tabs-fixed"`)
	assert.Contains(t, out, "tabs__nav-item tabs__nav-item--active")
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "inner")
}

func TestContentHTML(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "<a>", "&lt;a&gt;"},
		{"number", 42, "42"},
		{"trusted", safehtml.HTMLEscaped("x"), "x"},
		{"htmler", link{text: "y"}, "&lt;y&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentHTML(tt.in).String())
		})
	}
}
