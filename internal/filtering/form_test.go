package filtering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/filterpanel/internal/intl"
)

func TestFormValues_Validate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"empty", "", ErrEmptyURL},
		{"blank", "   ", ErrEmptyURL},
		{"https", "https://lists.example/a.txt", nil},
		{"http", "http://10.0.0.1/hosts", nil},
		{"unix path", "/etc/hosts.block", nil},
		{"windows path", `C:\lists\a.txt`, nil},
		{"windows forward slash", "d:/lists/a.txt", nil},
		{"relative path", "lists/a.txt", ErrInvalidURLOrPath},
		{"ftp", "ftp://lists.example/a.txt", ErrInvalidURLOrPath},
		{"missing host", "https://", ErrInvalidURLOrPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FormValues{URL: tt.url}.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormValues_Normalize(t *testing.T) {
	got := FormValues{Name: "  Ads ", URL: "\thttps://a.example/x.txt\n", Enabled: true}.Normalize()
	assert.Equal(t, FormValues{Name: "Ads", URL: "https://a.example/x.txt", Enabled: true}, got)
	assert.True(t, DefaultFormValues().Enabled)
}

func TestValidationMessage(t *testing.T) {
	loc := intl.New("en")
	assert.Equal(t, "Required field", ValidationMessage(loc, ErrEmptyURL))
	assert.Equal(t, "Invalid URL or absolute path of the list", ValidationMessage(loc, ErrInvalidURLOrPath))
	assert.Empty(t, ValidationMessage(loc, errors.New("other")))
}
