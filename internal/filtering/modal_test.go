package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/filterpanel/internal/intl"
)

func TestParseModalType(t *testing.T) {
	got, ok := ParseModalType("EDIT_FILTERS")
	assert.True(t, ok)
	assert.Equal(t, ModalEditFilters, got)

	got, ok = ParseModalType("edit")
	assert.False(t, ok)
	assert.Equal(t, ModalNone, got)
}

func TestModal_ShowsSave(t *testing.T) {
	assert.True(t, Modal{Type: ModalEditFilters}.ShowsSave())
	assert.True(t, Modal{Type: ModalSelectType, ActiveTab: TabManual}.ShowsSave())
	assert.False(t, Modal{Type: ModalSelectType, ActiveTab: TabList}.ShowsSave())
}

func TestTitle(t *testing.T) {
	loc := intl.New("en")
	tests := []struct {
		name  string
		kind  Kind
		modal ModalType
		want  string
	}{
		{"choose list", KindBlocklist, ModalChooseList, "Choose from the list"},
		{"edit blocklist", KindBlocklist, ModalEditFilters, "Edit blocklist"},
		{"edit allowlist", KindAllowlist, ModalEditFilters, "Edit allowlist"},
		{"add blocklist", KindBlocklist, ModalAddFilters, "Add blocklist"},
		{"add allowlist", KindAllowlist, ModalSelectType, "Add allowlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(loc, tt.kind, tt.modal))
		})
	}
}

func TestInitialValues(t *testing.T) {
	c := mustCatalog(t)
	filters := []Filter{
		{URL: "https://lists.example/guard.txt", Name: "Guard", Enabled: false},
	}

	edit := InitialValues(ModalEditFilters, filters, c, "https://lists.example/guard.txt")
	assert.Equal(t, FormValues{Name: "Guard", URL: "https://lists.example/guard.txt"}, edit.Form)
	assert.Nil(t, edit.Catalog)

	missing := InitialValues(ModalEditFilters, filters, c, "nope")
	assert.Equal(t, DefaultFormValues(), missing.Form)

	choose := InitialValues(ModalChooseList, filters, c, "")
	assert.Equal(t, map[string]bool{"guard": true}, choose.Catalog)

	noCatalog := InitialValues(ModalSelectType, filters, nil, "")
	assert.Nil(t, noCatalog.Catalog)
}
