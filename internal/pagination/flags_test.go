package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(),
		},
		{
			name:   "valid page and size",
			params: Params{Page: 3, PageSize: 20, Sort: "name:desc"},
		},
		{
			name:    "page zero",
			params:  Params{Page: 0},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "page size too large",
			params:  Params{Page: 1, PageSize: 5000},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative page size",
			params:  Params{Page: 1, PageSize: -1},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "bad sort order",
			params:  Params{Page: 1, Sort: "name:sideways"},
			wantErr: ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParams_PageIndex(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1}.PageIndex())
	assert.Equal(t, 2, Params{Page: 3}.PageIndex())
	assert.Equal(t, 0, Params{}.PageIndex())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   bool
	}{
		{name: "empty", sortStr: "", wantField: "", wantOrder: DefaultSortOrder},
		{name: "field only", sortStr: "name", wantField: "name", wantOrder: "asc"},
		{name: "field and asc", sortStr: "rulesCount:asc", wantField: "rulesCount", wantOrder: "asc"},
		{name: "field and desc", sortStr: "rulesCount:DESC", wantField: "rulesCount", wantOrder: "desc"},
		{name: "too many parts", sortStr: "a:b:c", wantErr: true},
		{name: "empty field", sortStr: ":asc", wantErr: true},
		{name: "invalid order", sortStr: "name:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}
