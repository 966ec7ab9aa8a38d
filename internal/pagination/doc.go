// Package pagination provides the pager control and the page arithmetic shared by
// the table, the renderers and the CLI.
//
// This package contains:
//   - Pager: a stateless pager control driven entirely by its fields and callbacks
//   - Meta: serializable pager metadata for machine-readable output
//   - Params: CLI page/sort flag values and validation
//
// Page numbers are zero-based everywhere except in Params and Meta, which face
// users and use one-based numbering.
package pagination
