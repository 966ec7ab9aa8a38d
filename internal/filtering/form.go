package filtering

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/rshade/filterpanel/internal/intl"
)

// Form validation errors.
var (
	ErrEmptyURL         = errors.New("url is required")
	ErrInvalidURLOrPath = errors.New("url must be an http(s) URL or an absolute path")
)

//nolint:gochecknoglobals // Compiled once.
var windowsAbsPath = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)

// FormValues is the manual add/edit form.
type FormValues struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// DefaultFormValues returns an empty, enabled form.
func DefaultFormValues() FormValues {
	return FormValues{Enabled: true}
}

// Normalize trims surrounding whitespace.
func (v FormValues) Normalize() FormValues {
	v.Name = strings.TrimSpace(v.Name)
	v.URL = strings.TrimSpace(v.URL)
	return v
}

// Validate checks that URL is present and is either an http(s) URL or an
// absolute filesystem path.
func (v FormValues) Validate() error {
	raw := strings.TrimSpace(v.URL)
	if raw == "" {
		return ErrEmptyURL
	}
	if IsAbsPath(raw) {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURLOrPath
	}
	return nil
}

// IsAbsPath reports whether s is an absolute Unix or Windows path.
func IsAbsPath(s string) bool {
	return strings.HasPrefix(s, "/") || windowsAbsPath.MatchString(s)
}

// ValidationMessage returns the localized message for a Validate error, or ""
// for other errors.
func ValidationMessage(loc *intl.Localizer, err error) string {
	switch {
	case errors.Is(err, ErrEmptyURL):
		return loc.Get(intl.FormErrorRequired)
	case errors.Is(err, ErrInvalidURLOrPath):
		return loc.Get(intl.FormErrorURLOrPath)
	default:
		return ""
	}
}
