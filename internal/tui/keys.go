package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the screen key bindings.
type keyMap struct {
	PrevPage      key.Binding
	NextPage      key.Binding
	FirstPage     key.Binding
	LastPage      key.Binding
	Bigger        key.Binding
	Smaller       key.Binding
	Sort          key.Binding
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	SelectAll     key.Binding
	Toggle        key.Binding
	Delete        key.Binding
	DeleteChecked key.Binding
	Refresh       key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Help          key.Binding
	Quit          key.Binding
	Yes           key.Binding
	No            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
		NextPage:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
		FirstPage:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first page")),
		LastPage:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last page")),
		Bigger:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Smaller:       key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Sort:          key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Toggle:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable/disable")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		DeleteChecked: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete selected")),
		Refresh:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "check updates")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev tab")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Yes:           key.NewBinding(key.WithKeys("y", "Y", "enter")),
		No:            key.NewBinding(key.WithKeys("n", "N", "esc")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Sort, k.Toggle, k.Delete, k.Refresh, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.Bigger, k.Smaller},
		{k.Up, k.Down, k.Sort, k.Select, k.SelectAll},
		{k.Toggle, k.Delete, k.DeleteChecked, k.Refresh},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
