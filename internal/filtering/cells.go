package filtering

import (
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

const cellTemplateText = `
{{define "switch"}}<label class="switch"><input type="checkbox" class="switch__input" value="{{.URL}}"{{if .Checked}} checked{{end}}{{if .Disabled}} disabled{{end}}><span class="switch__slider"></span></label>{{end}}
{{define "name"}}<div><span title="{{.Name}}">{{.Name}}</span>{{if .Checksum}}<div title="{{.Checksum}}">{{.ChecksumLabel}}: {{.Checksum}}</div>{{end}}</div>{{end}}
{{define "text"}}<div><span title="{{.Title}}">{{.Value}}</span></div>{{end}}
{{define "actions"}}<div><button type="button" class="table__action table__action--edit" value="{{.URL}}" title="{{.EditLabel}}"{{if .Disabled}} disabled{{end}}>{{.EditLabel}}</button><button type="button" class="table__action table__action--delete" value="{{.URL}}" title="{{.DeleteLabel}}"{{if .Disabled}} disabled{{end}}>{{.DeleteLabel}}</button></div>{{end}}
`

//nolint:gochecknoglobals // Parsed once from a constant.
var cellTemplates = template.Must(template.New("cells").Parse(cellTemplateText))

func executeCell(name string, data any) safehtml.HTML {
	out, err := cellTemplates.Lookup(name).ExecuteToHTML(data)
	if err != nil {
		return safehtml.HTMLEscaped(err.Error())
	}
	return out
}

// Switch is the enable/disable control of a row.
type Switch struct {
	URL      string
	Checked  bool
	Disabled bool

	toggle func()
}

// Toggle flips the switch unless it is disabled. It reports whether the toggle
// handler ran.
func (s Switch) Toggle() bool {
	if s.Disabled || s.toggle == nil {
		return false
	}
	s.toggle()
	return true
}

// HTML renders a checkbox switch.
func (s Switch) HTML() safehtml.HTML { return executeCell("switch", s) }

// Text renders the switch state.
func (s Switch) Text() string {
	if s.Checked {
		return "[on]"
	}
	return "[off]"
}

// NameCell shows the list name with its checksum underneath.
type NameCell struct {
	Name          string
	Checksum      string
	ChecksumLabel string
}

// HTML renders the name block.
func (n NameCell) HTML() safehtml.HTML { return executeCell("name", n) }

// Text renders the name followed by the checksum.
func (n NameCell) Text() string {
	if n.Checksum == "" {
		return n.Name
	}
	return n.Name + " (" + n.ChecksumLabel + ": " + n.Checksum + ")"
}

// TextCell is a value with a hover title.
type TextCell struct {
	Value string
	Title string
}

// HTML renders the value in a titled span.
func (c TextCell) HTML() safehtml.HTML { return executeCell("text", c) }

// Text returns the value.
func (c TextCell) Text() string { return c.Value }

// Actions are the edit and delete buttons of a row.
type Actions struct {
	URL         string
	Name        string
	Disabled    bool
	EditLabel   string
	DeleteLabel string

	edit   func()
	remove func()
}

// Edit runs the edit handler unless the buttons are disabled.
func (a Actions) Edit() bool {
	if a.Disabled || a.edit == nil {
		return false
	}
	a.edit()
	return true
}

// Delete runs the delete handler unless the buttons are disabled.
func (a Actions) Delete() bool {
	if a.Disabled || a.remove == nil {
		return false
	}
	a.remove()
	return true
}

// HTML renders both buttons.
func (a Actions) HTML() safehtml.HTML { return executeCell("actions", a) }

// Text renders the button labels.
func (a Actions) Text() string {
	return strings.ToLower(a.EditLabel) + " | " + strings.ToLower(a.DeleteLabel)
}
