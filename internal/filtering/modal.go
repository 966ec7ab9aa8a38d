package filtering

import "github.com/rshade/filterpanel/internal/intl"

// ModalType names the content of the add/edit dialog.
type ModalType string

// Modal types.
const (
	ModalNone        ModalType = ""
	ModalSelectType  ModalType = "SELECT_MODAL_TYPE"
	ModalChooseList  ModalType = "CHOOSE_FILTERING_LIST"
	ModalAddFilters  ModalType = "ADD_FILTERS"
	ModalEditFilters ModalType = "EDIT_FILTERS"
)

// Tabs of the select-type dialog.
const (
	TabList   = "list"
	TabManual = "manual"
)

// ParseModalType parses a modal type name.
func ParseModalType(s string) (ModalType, bool) {
	switch t := ModalType(s); t {
	case ModalSelectType, ModalChooseList, ModalAddFilters, ModalEditFilters:
		return t, true
	default:
		return ModalNone, false
	}
}

// Modal is the dialog state of a screen.
type Modal struct {
	Open bool
	Type ModalType

	// FilterURL is the list being edited.
	FilterURL string

	// ActiveTab is the tab of the select-type dialog, TabList or TabManual.
	ActiveTab string
}

// ShowsSave reports whether the dialog offers a save button. The list tab of
// the select-type dialog submits through its own checkboxes.
func (m Modal) ShowsSave() bool {
	return m.Type != ModalSelectType || m.ActiveTab == TabManual
}

// Title returns the dialog title.
func Title(loc *intl.Localizer, kind Kind, modal ModalType) string {
	switch {
	case modal == ModalChooseList:
		return loc.Get(intl.BlocklistsAddList)
	case modal == ModalEditFilters && kind == KindAllowlist:
		return loc.Get(intl.AllowlistEdit)
	case modal == ModalEditFilters:
		return loc.Get(intl.BlocklistEdit)
	case kind == KindAllowlist:
		return loc.Get(intl.AllowlistsAdd)
	default:
		return loc.Get(intl.BlocklistsAdd)
	}
}

// Initial is the starting state of the dialog form.
type Initial struct {
	Form FormValues

	// Catalog holds the ticked catalog ids for the list chooser.
	Catalog map[string]bool
}

// InitialValues derives the dialog's initial form. Editing starts from the
// filter at url; the list chooser starts with subscribed catalog entries ticked.
func InitialValues(modal ModalType, filters []Filter, cat *Catalog, url string) Initial {
	init := Initial{Form: DefaultFormValues()}
	switch modal {
	case ModalEditFilters:
		if f, ok := FindByURL(filters, url); ok {
			init.Form = FormValues{Name: f.Name, URL: f.URL, Enabled: f.Enabled}
		}
	case ModalSelectType, ModalChooseList:
		if cat != nil {
			init.Catalog = cat.SelectedValues(filters).FilterIDs
		}
	}
	return init
}
