// Package intl looks up user-facing messages by key and formats numbers and
// dates for the configured locale.
package intl

import (
	"slices"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DateTimeLayout is the detailed date-time format used for "last updated" cells.
const DateTimeLayout = "Jan 2, 2006, 15:04:05"

//nolint:gochecknoglobals // The catalog is immutable once built.
var (
	catalogOnce sync.Once
	builder     *catalog.Builder
	languages   []language.Tag
	matcher     language.Matcher
)

func loadCatalog() {
	catalogOnce.Do(func() {
		b, err := newCatalog()
		if err != nil {
			panic("intl: building message catalog: " + err.Error())
		}
		builder = b
		languages = b.Languages()
		matcher = language.NewMatcher(languages)
	})
}

// Supported returns the languages with translations.
func Supported() []language.Tag {
	loadCatalog()
	return slices.Clone(languages)
}

// Localizer resolves messages for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for locale, e.g. "de" or "en-US". Unknown or
// unsupported locales resolve to English.
func New(locale string) *Localizer {
	loadCatalog()

	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		if _, index, conf := matcher.Match(parsed); conf != language.No {
			tag = languages[index]
		}
	}

	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Get returns the message for key formatted with args. Unknown keys are
// returned as is.
func (l *Localizer) Get(key string, args ...any) string {
	return l.printer.Sprintf(message.Key(key, key), args...)
}

// Number formats n with the locale's digit grouping.
func (l *Localizer) Number(n int64) string {
	return l.printer.Sprintf("%d", n)
}

// DateTime formats t in DateTimeLayout, in local time.
func (l *Localizer) DateTime(t time.Time) string {
	return t.Local().Format(DateTimeLayout)
}
