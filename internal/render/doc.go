// Package render turns table, pager and tab strip snapshots into HTML
// (safehtml/template) or terminal text (lipgloss).
//
// Cell values reach the HTML output escaped unless they are safehtml.HTML or
// implement HTMLer. The terminal renderer uses Texter when available and
// fmt.Sprint otherwise.
package render
