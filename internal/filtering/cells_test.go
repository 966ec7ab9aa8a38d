package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitch(t *testing.T) {
	calls := 0
	s := Switch{URL: "https://a.example/x.txt", Checked: true, toggle: func() { calls++ }}

	assert.True(t, s.Toggle())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "[on]", s.Text())

	html := s.HTML().String()
	assert.Contains(t, html, `type="checkbox"`)
	assert.Contains(t, html, `value="https://a.example/x.txt"`)
	assert.Contains(t, html, "checked")
	assert.NotContains(t, html, "disabled")

	s.Disabled = true
	s.Checked = false
	assert.False(t, s.Toggle())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "[off]", s.Text())
	assert.Contains(t, s.HTML().String(), "disabled")

	assert.False(t, Switch{}.Toggle())
}

func TestNameCell(t *testing.T) {
	n := NameCell{Name: "Ads", ChecksumLabel: "Checksum"}
	assert.Equal(t, "Ads", n.Text())
	assert.NotContains(t, n.HTML().String(), "Checksum")

	n.Checksum = "f00d"
	assert.Equal(t, "Ads (Checksum: f00d)", n.Text())
	assert.Contains(t, n.HTML().String(), "Checksum: f00d")
}

func TestTextCell_EscapesValue(t *testing.T) {
	c := TextCell{Value: "<b>x</b>", Title: "t"}
	assert.Equal(t, "<b>x</b>", c.Text())
	html := c.HTML().String()
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, html, `title="t"`)
}

func TestActions(t *testing.T) {
	var edited, deleted int
	a := Actions{
		URL:         "u",
		Name:        "n",
		EditLabel:   "Edit",
		DeleteLabel: "Delete",
		edit:        func() { edited++ },
		remove:      func() { deleted++ },
	}

	assert.True(t, a.Edit())
	assert.True(t, a.Delete())
	assert.Equal(t, 1, edited)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, "edit | delete", a.Text())

	html := a.HTML().String()
	assert.Contains(t, html, "table__action--edit")
	assert.Contains(t, html, "table__action--delete")

	a.Disabled = true
	assert.False(t, a.Edit())
	assert.False(t, a.Delete())
	assert.Equal(t, 1, edited)
	assert.Equal(t, 1, deleted)
}
