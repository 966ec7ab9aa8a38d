package table

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   int
	Name *string
}

func strp(s string) *string { return &s }

func people(n int) []person {
	out := make([]person, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, person{ID: i, Name: strp(fmt.Sprintf("name-%02d", i))})
	}
	return out
}

func personColumns() []Column[person] {
	return []Column[person]{
		{Key: "id", Header: "ID", Accessor: Field[person]("ID")},
		{Key: "name", Header: "Name", Accessor: Field[person]("Name")},
		{Key: "actions", Header: "Actions", Unsortable: true, Accessor: Field[person]("ID")},
	}
}

func byID(p person, _ int) RowID { return IntID(int64(p.ID)) }

func ids(rows []person) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func visibleIDs[T any](rows []Row[T], id func(T) int) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r.Data))
	}
	return out
}

func personID(p person) int { return p.ID }

func TestNew_Defaults(t *testing.T) {
	tbl := New(people(3), personColumns(), Options[person]{})

	st := tbl.State()
	assert.Equal(t, 0, st.CurrentPage)
	assert.Equal(t, DefaultPageSize, st.PageSize)
	assert.Empty(t, st.SortKey)
	assert.Equal(t, SortAsc, st.SortDirection)
	assert.Equal(t, 0, st.Selected.Len())
}

func TestNew_DefaultSortSeedsState(t *testing.T) {
	tbl := New(people(3), personColumns(), Options[person]{
		DefaultSort: &SortSpec{Key: "id", Direction: SortDesc},
	})

	assert.Equal(t, "id", tbl.State().SortKey)
	assert.Equal(t, SortDesc, tbl.State().SortDirection)
	assert.Equal(t, []int{3, 2, 1}, ids(tbl.SortedRows()))
}

func TestNew_DefaultSortOnUnknownColumnIsDropped(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"unknown column", "missing"},
		{"unsortable column", "actions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(people(3), personColumns(), Options[person]{
				DefaultSort: &SortSpec{Key: tt.key, Direction: SortDesc},
			})
			st := tbl.State()
			assert.Empty(t, st.SortKey)
			assert.Equal(t, SortAsc, st.SortDirection)
			assert.Equal(t, []int{1, 2, 3}, ids(tbl.SortedRows()))
		})
	}
}

func TestSetColumns_DropsSortOnColumnMadeUnsortable(t *testing.T) {
	tbl := New(people(3), personColumns(), Options[person]{})
	require.True(t, tbl.Sort("name"))

	cols := personColumns()
	cols[1].Unsortable = true
	tbl.SetColumns(cols)

	assert.Empty(t, tbl.State().SortKey)
}

func TestSort_NullsAndPagesScenario(t *testing.T) {
	data := []person{
		{ID: 1, Name: strp("b")},
		{ID: 2, Name: strp("a")},
		{ID: 3, Name: nil},
	}
	tbl := New(data, personColumns(), Options[person]{PageSize: 2})

	require.True(t, tbl.Sort("name"))

	assert.Equal(t, []int{2, 1}, visibleIDs(tbl.VisibleRows(), personID))
	require.True(t, tbl.SetPage(1))
	assert.Equal(t, []int{3}, visibleIDs(tbl.VisibleRows(), personID))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	data := []person{{ID: 2, Name: strp("b")}, {ID: 1, Name: strp("a")}}
	tbl := New(data, personColumns(), Options[person]{})

	tbl.Sort("name")
	assert.Equal(t, []int{1, 2}, ids(tbl.SortedRows()))
	assert.Equal(t, []int{2, 1}, ids(data))
}

func TestSort_ToggleCycle(t *testing.T) {
	type change struct {
		key string
		dir SortDirection
	}
	var changes []change
	tbl := New(people(3), personColumns(), Options[person]{
		OnSortChange: func(key string, dir SortDirection) {
			changes = append(changes, change{key, dir})
		},
	})

	tbl.Sort("name")
	tbl.Sort("name")
	tbl.Sort("name")
	tbl.Sort("id")

	assert.Equal(t, []change{
		{"name", SortAsc},
		{"name", SortDesc},
		{"name", SortAsc},
		{"id", SortAsc},
	}, changes)
}

func TestSort_NonSortableColumnIsNoOp(t *testing.T) {
	called := false
	tbl := New(people(25), personColumns(), Options[person]{
		PageSize:     10,
		OnSortChange: func(string, SortDirection) { called = true },
	})
	tbl.SetPage(1)
	before := tbl.State()

	assert.False(t, tbl.Sort("actions"))
	assert.False(t, tbl.Sort("does-not-exist"))

	assert.False(t, called)
	assert.Equal(t, before, tbl.State())
}

func TestSort_ColumnWithoutAccessorIsNotSortable(t *testing.T) {
	cols := append(personColumns(), Column[person]{Key: "blank", Header: "Blank"})
	tbl := New(people(3), cols, Options[person]{})

	assert.False(t, tbl.CanSort("blank"))
	assert.False(t, tbl.Sort("blank"))
}

func TestSort_GloballyDisabled(t *testing.T) {
	data := []person{{ID: 2, Name: strp("b")}, {ID: 1, Name: strp("a")}}
	tbl := New(data, personColumns(), Options[person]{
		DisableSort: true,
		DefaultSort: &SortSpec{Key: "name"},
	})

	assert.False(t, tbl.Sort("name"))
	assert.Equal(t, []int{2, 1}, ids(tbl.SortedRows()))
}

func TestSort_ResetsPage(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10})
	require.True(t, tbl.SetPage(2))

	require.True(t, tbl.Sort("name"))
	assert.Equal(t, 0, tbl.State().CurrentPage)
}

func TestSortBy(t *testing.T) {
	tbl := New(people(3), personColumns(), Options[person]{})

	assert.True(t, tbl.SortBy("id", SortDesc))
	assert.Equal(t, []int{3, 2, 1}, ids(tbl.SortedRows()))
	assert.False(t, tbl.SortBy("actions", SortAsc))
	assert.False(t, tbl.SortBy("id", SortDirection("sideways")))
}

func TestSort_AbsentValuesLastInBothDirections(t *testing.T) {
	data := []person{
		{ID: 1, Name: nil},
		{ID: 2, Name: strp("c")},
		{ID: 3, Name: nil},
		{ID: 4, Name: strp("a")},
	}
	tbl := New(data, personColumns(), Options[person]{})

	tbl.Sort("name")
	assert.Equal(t, []int{4, 2, 1, 3}, ids(tbl.SortedRows()))

	tbl.Sort("name")
	assert.Equal(t, []int{2, 4, 1, 3}, ids(tbl.SortedRows()))
}

func TestSort_CaseInsensitiveAndStable(t *testing.T) {
	data := []person{
		{ID: 1, Name: strp("beta")},
		{ID: 2, Name: strp("Alpha")},
		{ID: 3, Name: strp("BETA")},
		{ID: 4, Name: strp("alpha")},
	}
	tbl := New(data, personColumns(), Options[person]{})

	tbl.Sort("name")
	assert.Equal(t, []int{2, 4, 1, 3}, ids(tbl.SortedRows()))

	tbl.Sort("name")
	assert.Equal(t, []int{1, 3, 2, 4}, ids(tbl.SortedRows()))
}

// TestSort_DescendingReversesGroups checks that a descending sort is the ascending
// order with equal-value groups reversed, each group keeping input order, and
// absent values trailing in input order.
func TestSort_DescendingReversesGroups(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	names := []string{"a", "b", "c", "d"}

	data := make([]person, 0, 60)
	for i := 1; i <= 60; i++ {
		p := person{ID: i}
		if k := rng.IntN(len(names) + 1); k < len(names) {
			p.Name = strp(names[k])
		}
		data = append(data, p)
	}

	tbl := New(data, personColumns(), Options[person]{})
	tbl.Sort("name")
	asc := tbl.SortedRows()
	tbl.Sort("name")
	desc := tbl.SortedRows()

	group := func(rows []person) (map[string][]int, []int) {
		g := map[string][]int{}
		var absent []int
		for _, r := range rows {
			if r.Name == nil {
				absent = append(absent, r.ID)
				continue
			}
			g[*r.Name] = append(g[*r.Name], r.ID)
		}
		return g, absent
	}

	var want []int
	inputGroups, inputAbsent := group(data)
	for i := len(names) - 1; i >= 0; i-- {
		want = append(want, inputGroups[names[i]]...)
	}
	want = append(want, inputAbsent...)
	assert.Equal(t, want, ids(desc))

	ascGroups, ascAbsent := group(asc)
	assert.Equal(t, inputGroups, ascGroups)
	assert.Equal(t, inputAbsent, ascAbsent)
}

func TestPagination_PagesReconstructSortedRows(t *testing.T) {
	data := people(23)
	for _, size := range []int{1, 2, 5, 7, 10, 23, 50} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			tbl := New(data, personColumns(), Options[person]{PageSize: size})
			tbl.SortBy("name", SortDesc)

			var got []int
			for page := range tbl.TotalPages() {
				tbl.SetPage(page)
				got = append(got, visibleIDs(tbl.VisibleRows(), personID)...)
			}
			assert.Equal(t, ids(tbl.SortedRows()), got)
		})
	}
}

func TestPagination_TwentyFiveRows(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10})

	assert.Equal(t, 3, tbl.TotalPages())
	require.True(t, tbl.SetPage(2))
	assert.Equal(t, []int{21, 22, 23, 24, 25}, visibleIDs(tbl.VisibleRows(), personID))
}

func TestPagination_SetPageClamps(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10})

	assert.True(t, tbl.SetPage(99))
	assert.Equal(t, 2, tbl.State().CurrentPage)
	assert.True(t, tbl.SetPage(-3))
	assert.Equal(t, 0, tbl.State().CurrentPage)
	assert.False(t, tbl.SetPage(0))
}

func TestPagination_PageSizeResetsPage(t *testing.T) {
	var sizes []int
	tbl := New(people(25), personColumns(), Options[person]{
		PageSize:         10,
		OnPageSizeChange: func(size int) { sizes = append(sizes, size) },
	})
	tbl.SetPage(2)

	require.True(t, tbl.SetPageSize(5))
	assert.Equal(t, 0, tbl.State().CurrentPage)
	assert.Equal(t, 5, tbl.State().PageSize)
	assert.Equal(t, 5, tbl.TotalPages())
	assert.Equal(t, []int{5}, sizes)

	assert.False(t, tbl.SetPageSize(0))
	assert.Equal(t, []int{5}, sizes)
}

func TestPagination_Disabled(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10, DisablePagination: true})

	assert.Len(t, tbl.VisibleRows(), 25)
	_, ok := tbl.Pager()
	assert.False(t, ok)
}

func TestPager_DrivesTable(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10})

	pager, ok := tbl.Pager()
	require.True(t, ok)
	assert.Equal(t, 3, pager.TotalPages)
	assert.Equal(t, 25, pager.TotalItems)
	assert.False(t, pager.CanPrevious())

	require.True(t, pager.Last())
	assert.Equal(t, 2, tbl.State().CurrentPage)

	pager, _ = tbl.Pager()
	require.True(t, pager.SelectPageSize(20))
	assert.Equal(t, 0, tbl.State().CurrentPage)
	assert.Equal(t, 20, tbl.State().PageSize)
}

func TestSetData_ReclampsPage(t *testing.T) {
	tbl := New(people(25), personColumns(), Options[person]{PageSize: 10})
	tbl.SetPage(2)

	tbl.SetData(people(12))
	assert.Equal(t, 1, tbl.State().CurrentPage)

	tbl.SetData(nil)
	assert.Equal(t, 0, tbl.State().CurrentPage)
}

func TestSetColumns_DropsMissingSortKey(t *testing.T) {
	tbl := New(people(3), personColumns(), Options[person]{})
	tbl.SortBy("name", SortDesc)

	tbl.SetColumns(personColumns()[:1])
	assert.Empty(t, tbl.State().SortKey)
	assert.Equal(t, []int{1, 2, 3}, ids(tbl.SortedRows()))
}

func TestSelection_SelectAllIsPageScoped(t *testing.T) {
	var last Selection
	tbl := New(people(25), personColumns(), Options[person]{
		PageSize:          10,
		Selectable:        true,
		GetRowID:          byID,
		OnSelectionChange: func(s Selection) { last = s },
	})

	require.True(t, tbl.SelectAll(true))
	assert.Equal(t, 10, last.Len())
	assert.True(t, tbl.AllVisibleSelected())
	for i := 1; i <= 10; i++ {
		assert.True(t, last.Has(IntID(int64(i))))
	}

	tbl.SetPage(1)
	assert.False(t, tbl.AllVisibleSelected())
	require.True(t, tbl.SelectRow(IntID(15), true))
	assert.Equal(t, 11, last.Len())

	tbl.SetPage(0)
	require.True(t, tbl.SelectAll(false))
	assert.Equal(t, []RowID{IntID(15)}, last.IDs())
	assert.False(t, tbl.AllVisibleSelected())
}

func TestSelection_SurvivesSortWithStableIDs(t *testing.T) {
	tbl := New(people(5), personColumns(), Options[person]{Selectable: true, GetRowID: byID})

	tbl.SelectRow(IntID(2), true)
	tbl.SortBy("id", SortDesc)

	rows := tbl.VisibleRows()
	require.Len(t, rows, 5)
	assert.Equal(t, 2, rows[3].Data.ID)
	assert.True(t, rows[3].Selected)
}

func TestSelection_DefaultIDIsSortedPosition(t *testing.T) {
	tbl := New(people(12), personColumns(), Options[person]{PageSize: 5, Selectable: true})
	tbl.SetPage(1)

	rows := tbl.VisibleRows()
	require.Len(t, rows, 5)
	assert.Equal(t, IntID(5), rows[0].ID)
	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, 5, rows[0].Position)
}

func TestSelection_RowToggle(t *testing.T) {
	calls := 0
	tbl := New(people(3), personColumns(), Options[person]{
		Selectable:        true,
		GetRowID:          byID,
		SelectedRows:      NewSelection(IntID(1)),
		OnSelectionChange: func(Selection) { calls++ },
	})

	assert.True(t, tbl.IsSelected(IntID(1)))
	tbl.SelectRow(IntID(3), true)
	tbl.SelectRow(IntID(1), false)

	assert.Equal(t, []RowID{IntID(3)}, tbl.State().Selected.IDs())
	assert.Equal(t, 2, calls)
}

func TestSelection_CallbackGetsCopy(t *testing.T) {
	var got Selection
	tbl := New(people(3), personColumns(), Options[person]{
		Selectable:        true,
		GetRowID:          byID,
		OnSelectionChange: func(s Selection) { got = s },
	})

	tbl.SelectRow(IntID(1), true)
	delete(got, IntID(1))
	assert.True(t, tbl.IsSelected(IntID(1)))
}

func TestSelection_NotSelectable(t *testing.T) {
	called := false
	tbl := New(people(3), personColumns(), Options[person]{
		OnSelectionChange: func(Selection) { called = true },
	})

	assert.False(t, tbl.SelectRow(IntID(0), true))
	assert.False(t, tbl.SelectAll(true))
	assert.False(t, called)
}

func TestSelection_HeaderUncheckedOnEmptyPage(t *testing.T) {
	calls := 0
	tbl := New[person](nil, personColumns(), Options[person]{
		Selectable:        true,
		OnSelectionChange: func(Selection) { calls++ },
	})

	assert.False(t, tbl.SelectAll(true))
	assert.False(t, tbl.SelectAll(false))
	assert.False(t, tbl.AllVisibleSelected())
	assert.Zero(t, calls)
}
