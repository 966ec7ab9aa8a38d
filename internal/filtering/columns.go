package filtering

import (
	"time"

	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/table"
)

// Column keys.
const (
	ColumnEnabled     = "enabled"
	ColumnName        = "name"
	ColumnURL         = "url"
	ColumnRulesCount  = "rulesCount"
	ColumnLastUpdated = "lastUpdated"
	ColumnActions     = "actions"
)

// Fixed sizing of the control columns, in pixels.
const (
	SwitchColumnWidth     = 90
	ActionsColumnWidth    = 180
	ActionsColumnMinWidth = 150
)

// EmptyCell is shown for lists that were never downloaded.
const EmptyCell = "–"

// Handlers receive the row actions of the filter table.
type Handlers struct {
	OnToggle func(url string, data ToggleData)
	OnEdit   func(url string)
	OnDelete func(url, name string)
}

// Columns returns the filter table schema. While processing is set the switches
// and action buttons are disabled.
func Columns(loc *intl.Localizer, h Handlers, processing bool) []table.Column[Filter] {
	return []table.Column[Filter]{
		{
			Key:        ColumnEnabled,
			Header:     loc.Get(intl.EnabledTableHeader),
			Accessor:   table.Field[Filter]("Enabled"),
			Unsortable: true,
			Width:      SwitchColumnWidth,
			Render: func(_ any, row Filter, _ int) any {
				return Switch{
					URL:      row.URL,
					Checked:  row.Enabled,
					Disabled: processing,
					toggle: func() {
						if h.OnToggle != nil {
							h.OnToggle(row.URL, ToggleData{Name: row.Name, URL: row.URL, Enabled: !row.Enabled})
						}
					},
				}
			},
		},
		{
			Key:      ColumnName,
			Header:   loc.Get(intl.NameLabel),
			Accessor: table.Field[Filter]("Name"),
			Render: func(value any, row Filter, _ int) any {
				name, _ := value.(string)
				return NameCell{Name: name, Checksum: row.Checksum, ChecksumLabel: loc.Get(intl.ChecksumTableHeader)}
			},
		},
		{
			Key:      ColumnURL,
			Header:   loc.Get(intl.URLLabel),
			Accessor: table.Field[Filter]("URL"),
			Render: func(value any, _ Filter, _ int) any {
				url, _ := value.(string)
				return TextCell{Value: url, Title: url}
			},
		},
		{
			Key:      ColumnRulesCount,
			Header:   loc.Get(intl.RulesLabel),
			Accessor: table.Field[Filter]("RulesCount"),
			Render: func(value any, _ Filter, _ int) any {
				n, _ := value.(int64)
				return loc.Number(n)
			},
		},
		{
			Key:      ColumnLastUpdated,
			Header:   loc.Get(intl.LastUpdatedLabel),
			Accessor: table.Field[Filter]("LastUpdated"),
			Render: func(value any, _ Filter, _ int) any {
				t, ok := value.(time.Time)
				if !ok || t.IsZero() {
					return EmptyCell
				}
				formatted := loc.DateTime(t)
				return TextCell{Value: formatted, Title: formatted}
			},
		},
		{
			Key:        ColumnActions,
			Header:     loc.Get(intl.ActionsLabel),
			Accessor:   table.Field[Filter]("URL"),
			Unsortable: true,
			Width:      ActionsColumnWidth,
			MinWidth:   ActionsColumnMinWidth,
			Render: func(value any, row Filter, _ int) any {
				url, _ := value.(string)
				return Actions{
					URL:         url,
					Name:        row.Name,
					Disabled:    processing,
					EditLabel:   loc.Get(intl.EditBtn),
					DeleteLabel: loc.Get(intl.DeleteBtn),
					edit: func() {
						if h.OnEdit != nil {
							h.OnEdit(url)
						}
					},
					remove: func() {
						if h.OnDelete != nil {
							h.OnDelete(url, row.Name)
						}
					},
				}
			},
		},
	}
}
