// Package table implements a generic, renderer-neutral data table: it sorts,
// paginates and tracks row selection over caller-supplied rows and a column schema.
//
// A Table owns its view state (page, page size, sort key and direction, selected
// row ids). The state changes only through the handler methods Sort, SetPage,
// SetPageSize, SelectRow and SelectAll, and is re-clamped whenever the caller
// swaps data or columns. Every handler runs synchronously and reports the change
// through the matching callback in Options, at most once per call.
//
// The table never mutates the slice it is given; sorting works on a copy.
// Rendering is left to other packages, which consume the View snapshot.
//
// Row identity defaults to the row's position in the sorted list. That default
// is only stable while rows are neither re-ordered nor filtered, so callers that
// keep a selection across sorts or data reloads should set Options.GetRowID.
package table
