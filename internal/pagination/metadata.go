package pagination

// Meta contains metadata about a paginated listing. Page numbers are one-based.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata from a pager.
func NewMeta(p Pager) Meta {
	current := p.CurrentPage + 1
	if p.TotalPages == 0 {
		current = 0
	}
	return Meta{
		CurrentPage: current,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasPrevious: p.CanPrevious(),
		HasNext:     p.CanNext(),
	}
}
