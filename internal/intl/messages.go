package intl

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

//nolint:gochecknoglobals // Static message tables.
var english = map[string]string{
	BlocklistsTitle:      "DNS blocklists",
	AllowlistsTitle:      "DNS allowlists",
	NoBlocklistAdded:     "No blocklists added",
	NoAllowlistAdded:     "No allowlists added",
	ListConfirmDelete:    "Are you sure you want to delete this list?",
	EnabledTableHeader:   "Enabled",
	NameLabel:            "Name",
	URLLabel:             "URL",
	RulesLabel:           "Rules count",
	LastUpdatedLabel:     "Last updated",
	ActionsLabel:         "Actions",
	ChecksumTableHeader:  "Checksum",
	BlocklistsAdd:        "Add blocklist",
	BlocklistEdit:        "Edit blocklist",
	BlocklistsAddList:    "Choose from the list",
	AllowlistsAdd:        "Add allowlist",
	AllowlistEdit:        "Edit allowlist",
	AddBlocklist:         "Add blocklist",
	AddAllowlist:         "Add allowlist",
	CheckUpdatesBtn:      "Check for updates",
	FiltersAndHostsHint:  "Basic adblock rules and hosts file syntax are supported.",
	BlocklistAddFromList: "Choose from the list",
	BlocklistAddManual:   "Add a custom list",
	EnterNameHint:        "Enter name",
	EnterURLOrPathHint:   "Enter a URL or an absolute path of the list",
	EnterValidBlocklist:  "Enter a valid URL or file path to the blocklist.",
	EnterValidAllowlist:  "Enter a valid URL or file path to the allowlist.",
	FormErrorRequired:    "Required field",
	FormErrorURLOrPath:   "Invalid URL or absolute path of the list",
	CancelBtn:            "Cancel",
	SaveBtn:              "Save",
	EditBtn:              "Edit",
	DeleteBtn:            "Delete",
	FilterAdded:          "The list %s has been successfully added",
	FilterRemoved:        "The list %s has been successfully removed",
	FilterUpdated:        "The list %s has been successfully updated",
	LoadingText:          "Loading...",
	NoDataAvailable:      "No data available",
	PreviousBtn:          "Previous",
	NextBtn:              "Next",
	PageFooterText:       "Page",
	RowsFooterText:       "rows",
	YesBtn:               "Yes",
	NoBtn:                "No",
}

//nolint:gochecknoglobals // Static message tables.
var german = map[string]string{
	BlocklistsTitle:     "DNS-Sperrlisten",
	AllowlistsTitle:     "DNS-Zulassungslisten",
	NoBlocklistAdded:    "Keine Sperrlisten hinzugefügt",
	NoAllowlistAdded:    "Keine Zulassungslisten hinzugefügt",
	ListConfirmDelete:   "Möchten Sie diese Liste wirklich löschen?",
	EnabledTableHeader:  "Aktiviert",
	NameLabel:           "Name",
	RulesLabel:          "Anzahl der Regeln",
	LastUpdatedLabel:    "Zuletzt aktualisiert",
	ActionsLabel:        "Aktionen",
	ChecksumTableHeader: "Prüfsumme",
	AddBlocklist:        "Sperrliste hinzufügen",
	AddAllowlist:        "Zulassungsliste hinzufügen",
	CheckUpdatesBtn:     "Nach Updates suchen",
	CancelBtn:           "Abbrechen",
	SaveBtn:             "Speichern",
	PreviousBtn:         "Zurück",
	NextBtn:             "Weiter",
	PageFooterText:      "Seite",
	RowsFooterText:      "Zeilen",
	YesBtn:              "Ja",
	NoBtn:               "Nein",
}

// newCatalog builds the message catalog. Keys missing from a translation fall
// back to English.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	tables := []struct {
		tag      language.Tag
		messages map[string]string
	}{
		{language.English, english},
		{language.German, german},
	}
	for _, table := range tables {
		for key, msg := range table.messages {
			if err := b.SetString(table.tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	plurals := []struct {
		tag  language.Tag
		key  string
		zero string
		one  string
		more string
	}{
		{language.English, FiltersUpdated, "All lists are already up-to-date", "%d list updated", "%d lists updated"},
		{language.German, FiltersUpdated, "Alle Listen sind bereits auf dem neuesten Stand", "%d Liste aktualisiert", "%d Listen aktualisiert"},
		{language.English, FiltersRemoved, "No lists removed", "%d list removed", "%d lists removed"},
		{language.German, FiltersRemoved, "Keine Listen entfernt", "%d Liste entfernt", "%d Listen entfernt"},
	}
	for _, p := range plurals {
		err := b.Set(p.tag, p.key, plural.Selectf(1, "%d",
			"=0", p.zero,
			plural.One, p.one,
			plural.Other, p.more,
		))
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}
