// Package tabs provides a tab strip whose active tab is either kept internally
// or owned by the caller.
package tabs

// Item is a single tab.
type Item[C any] struct {
	ID      string
	Label   string
	Content C
}

// Options configures a tab strip.
type Options struct {
	// DefaultActive is the initially active tab of an uncontrolled strip. When
	// empty the first tab is active.
	DefaultActive string

	// Active makes the strip controlled: the caller owns the active id and must
	// update it from OnChange. Select never writes through it.
	Active *string

	// OnChange is called with the id of every selected tab.
	OnChange func(id string)

	ClassName string
}

// Tabs is a tab strip over items of content type C.
type Tabs[C any] struct {
	items    []Item[C]
	opts     Options
	internal string
}

// New creates a tab strip.
func New[C any](items []Item[C], opts Options) *Tabs[C] {
	t := &Tabs[C]{items: items, opts: opts, internal: opts.DefaultActive}
	if t.internal == "" && len(items) > 0 {
		t.internal = items[0].ID
	}
	return t
}

// Items returns the tabs in display order.
func (t *Tabs[C]) Items() []Item[C] {
	return t.items
}

// Controlled reports whether the caller owns the active id.
func (t *Tabs[C]) Controlled() bool {
	return t.opts.Active != nil
}

// ActiveID returns the id of the active tab. When nothing is active it falls back
// to the first tab, or "" for an empty strip.
func (t *Tabs[C]) ActiveID() string {
	id := t.internal
	if t.opts.Active != nil {
		id = *t.opts.Active
	}
	if id == "" && len(t.items) > 0 {
		return t.items[0].ID
	}
	return id
}

// ActiveContent returns the content of the active tab. The zero value is
// returned when the active id matches no tab.
func (t *Tabs[C]) ActiveContent() (C, bool) {
	active := t.ActiveID()
	for _, item := range t.items {
		if item.ID == active {
			return item.Content, true
		}
	}
	var zero C
	return zero, false
}

// Select handles a click on tab id. An uncontrolled strip switches to it; a
// controlled one only reports it through OnChange.
func (t *Tabs[C]) Select(id string) {
	if t.opts.Active == nil {
		t.internal = id
	}
	if t.opts.OnChange != nil {
		t.opts.OnChange(id)
	}
}

// Next selects the tab after the active one, wrapping around.
func (t *Tabs[C]) Next() {
	if len(t.items) == 0 {
		return
	}
	t.Select(t.items[(t.index()+1)%len(t.items)].ID)
}

// Previous selects the tab before the active one, wrapping around.
func (t *Tabs[C]) Previous() {
	if len(t.items) == 0 {
		return
	}
	t.Select(t.items[(t.index()-1+len(t.items))%len(t.items)].ID)
}

func (t *Tabs[C]) index() int {
	active := t.ActiveID()
	for i, item := range t.items {
		if item.ID == active {
			return i
		}
	}
	return 0
}

// NavItem is a rendered tab button.
type NavItem struct {
	ID     string
	Label  string
	Active bool
}

// View is a renderer-neutral snapshot of the strip.
type View struct {
	ClassName string
	Nav       []NavItem

	// Content is the active tab's content, nil when no tab matches.
	Content any
}

// View derives the renderable snapshot.
func (t *Tabs[C]) View() View {
	active := t.ActiveID()
	v := View{ClassName: t.opts.ClassName, Nav: make([]NavItem, 0, len(t.items))}
	for _, item := range t.items {
		v.Nav = append(v.Nav, NavItem{ID: item.ID, Label: item.Label, Active: item.ID == active})
	}
	if c, ok := t.ActiveContent(); ok {
		v.Content = c
	}
	return v
}
