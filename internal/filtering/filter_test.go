package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/filterpanel/internal/api"
	"github.com/rshade/filterpanel/internal/config"
	"github.com/rshade/filterpanel/internal/intl"
)

func TestFromAPI(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := []api.Filter{
		{ID: 1, Enabled: true, URL: "https://a.example/list.txt", Name: "A", RulesCount: 10, LastUpdated: &now, Checksum: "abc"},
		{ID: 2, URL: "/opt/lists/b.txt", Name: "B"},
	}

	got := FromAPI(in)
	require.Len(t, got, 2)
	assert.Equal(t, Filter{ID: 1, Enabled: true, URL: "https://a.example/list.txt", Name: "A", RulesCount: 10, LastUpdated: &now, Checksum: "abc"}, got[0])
	assert.Nil(t, got[1].LastUpdated)
	assert.Empty(t, FromAPI(nil))
}

func TestFindByURL(t *testing.T) {
	filters := []Filter{{URL: "a", Name: "A"}, {URL: "b", Name: "B"}}

	f, ok := FindByURL(filters, "b")
	assert.True(t, ok)
	assert.Equal(t, "B", f.Name)

	_, ok = FindByURL(filters, "c")
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind      Kind
		name      string
		whitelist bool
		pref      string
		title     string
		empty     string
		add       string
	}{
		{KindBlocklist, "blocklist", false, config.KeyBlocklistPageSize, intl.BlocklistsTitle, intl.NoBlocklistAdded, intl.AddBlocklist},
		{KindAllowlist, "allowlist", true, config.KeyAllowlistPageSize, intl.AllowlistsTitle, intl.NoAllowlistAdded, intl.AddAllowlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.whitelist, tt.kind.Whitelist())
			assert.Equal(t, tt.pref, tt.kind.PrefKey())
			assert.Equal(t, tt.title, tt.kind.TitleKey())
			assert.Equal(t, tt.empty, tt.kind.EmptyKey())
			assert.Equal(t, tt.add, tt.kind.AddKey())
		})
	}
}
