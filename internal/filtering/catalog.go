package filtering

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

//go:embed catalog.json
var builtinCatalog []byte

// SupportedCatalogVersions is the range of catalog schema versions understood here.
const SupportedCatalogVersions = ">= 1.0.0, < 2.0.0"

// Catalog errors.
var (
	ErrUnsupportedCatalog = errors.New("unsupported catalog version")
	ErrInvalidCatalog     = errors.New("invalid catalog")
)

// Category groups catalog entries.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogFilter is a well-known list that can be subscribed with one click.
type CatalogFilter struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	Homepage   string `json:"homepage"`
	Source     string `json:"source"`
}

// Catalog is the set of well-known lists.
type Catalog struct {
	Version    *semver.Version
	Categories map[string]Category
	Filters    map[string]CatalogFilter

	sourceToID map[string]string
}

type catalogFile struct {
	Version    string                   `json:"version"`
	Categories map[string]Category      `json:"categories"`
	Filters    map[string]CatalogFilter `json:"filters"`
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
}

// ParseCatalog decodes a catalog document and checks its schema version.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	version, err := semver.NewVersion(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %w", ErrInvalidCatalog, raw.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedCatalogVersions)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog constraint: %w", err)
	}
	if !constraint.Check(version) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrUnsupportedCatalog, version, SupportedCatalogVersions)
	}

	c := &Catalog{
		Version:    version,
		Categories: raw.Categories,
		Filters:    make(map[string]CatalogFilter, len(raw.Filters)),
		sourceToID: make(map[string]string, len(raw.Filters)),
	}
	for id, f := range raw.Filters {
		if f.Source == "" {
			return nil, fmt.Errorf("%w: filter %q has no source", ErrInvalidCatalog, id)
		}
		if _, ok := c.Categories[f.CategoryID]; !ok {
			return nil, fmt.Errorf("%w: filter %q has unknown category %q", ErrInvalidCatalog, id, f.CategoryID)
		}
		f.ID = id
		c.Filters[id] = f
		c.sourceToID[f.Source] = id
	}
	return c, nil
}

// IDs returns the filter ids sorted by category, then name.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Filters))
	for id := range c.Filters {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		fa, fb := c.Filters[a], c.Filters[b]
		if n := strings.Compare(fa.CategoryID, fb.CategoryID); n != 0 {
			return n
		}
		return strings.Compare(strings.ToLower(fa.Name), strings.ToLower(fb.Name))
	})
	return ids
}

// IDForSource returns the catalog id whose source is url.
func (c *Catalog) IDForSource(url string) (string, bool) {
	id, ok := c.sourceToID[url]
	return id, ok
}

// Selection describes which catalog entries are already subscribed.
type Selection struct {
	// FilterIDs holds catalog ids whose source is subscribed.
	FilterIDs map[string]bool
	// Sources holds the subscribed catalog sources.
	Sources map[string]bool
}

// SelectedValues maps subscribed filters back to catalog entries.
func (c *Catalog) SelectedValues(filters []Filter) Selection {
	sel := Selection{FilterIDs: map[string]bool{}, Sources: map[string]bool{}}
	for _, f := range filters {
		if id, ok := c.sourceToID[f.URL]; ok {
			sel.FilterIDs[id] = true
			sel.Sources[f.URL] = true
		}
	}
	return sel
}

// ChangedSelections returns the catalog entries ticked in values that are not
// subscribed yet, in IDs order. Unknown ids are ignored.
func (c *Catalog) ChangedSelections(values map[string]bool, subscribed Selection) []CatalogFilter {
	var out []CatalogFilter
	for _, id := range c.IDs() {
		if !values[id] {
			continue
		}
		f := c.Filters[id]
		if subscribed.Sources[f.Source] {
			continue
		}
		out = append(out, f)
	}
	return out
}
