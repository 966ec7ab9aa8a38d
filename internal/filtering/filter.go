// Package filtering implements the blocklist and allowlist screens: the filter
// model, its table columns, the catalog of well-known lists, the add/edit modal
// flow and the controller that ties them to the control API.
package filtering

import (
	"time"

	"github.com/rshade/filterpanel/internal/api"
	"github.com/rshade/filterpanel/internal/config"
	"github.com/rshade/filterpanel/internal/intl"
)

// Filter is one list subscription shown in the table.
type Filter struct {
	ID          int64      `json:"id"`
	Enabled     bool       `json:"enabled"`
	URL         string     `json:"url"`
	Name        string     `json:"name"`
	RulesCount  int64      `json:"rules_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Checksum    string     `json:"checksum,omitempty"`
}

// ToggleData is the payload of an enable/disable switch.
type ToggleData struct {
	Name    string
	URL     string
	Enabled bool
}

// FromAPI converts control API filters.
func FromAPI(in []api.Filter) []Filter {
	out := make([]Filter, 0, len(in))
	for _, f := range in {
		out = append(out, Filter{
			ID:          f.ID,
			Enabled:     f.Enabled,
			URL:         f.URL,
			Name:        f.Name,
			RulesCount:  f.RulesCount,
			LastUpdated: f.LastUpdated,
			Checksum:    f.Checksum,
		})
	}
	return out
}

// FindByURL returns the filter subscribed at url.
func FindByURL(filters []Filter, url string) (Filter, bool) {
	for _, f := range filters {
		if f.URL == url {
			return f, true
		}
	}
	return Filter{}, false
}

// Kind selects between the two list types sharing one screen.
type Kind int

const (
	// KindBlocklist lists block rules.
	KindBlocklist Kind = iota
	// KindAllowlist lists exception rules.
	KindAllowlist
)

// String returns "blocklist" or "allowlist".
func (k Kind) String() string {
	if k == KindAllowlist {
		return "allowlist"
	}
	return "blocklist"
}

// Whitelist reports whether the control API calls this kind a whitelist.
func (k Kind) Whitelist() bool {
	return k == KindAllowlist
}

// PrefKey is the preference key of the kind's persisted page size.
func (k Kind) PrefKey() string {
	if k == KindAllowlist {
		return config.KeyAllowlistPageSize
	}
	return config.KeyBlocklistPageSize
}

// TitleKey is the message key of the screen title.
func (k Kind) TitleKey() string {
	if k == KindAllowlist {
		return intl.AllowlistsTitle
	}
	return intl.BlocklistsTitle
}

// EmptyKey is the message key shown when no list is subscribed.
func (k Kind) EmptyKey() string {
	if k == KindAllowlist {
		return intl.NoAllowlistAdded
	}
	return intl.NoBlocklistAdded
}

// AddKey is the message key of the add button.
func (k Kind) AddKey() string {
	if k == KindAllowlist {
		return intl.AddAllowlist
	}
	return intl.AddBlocklist
}

// ValidHintKey is the message key of the URL hint in the add form.
func (k Kind) ValidHintKey() string {
	if k == KindAllowlist {
		return intl.EnterValidAllowlist
	}
	return intl.EnterValidBlocklist
}
