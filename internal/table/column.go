package table

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldValuer lets a row type resolve field accessors without reflection.
// The boolean result reports whether the field exists and holds a value.
type FieldValuer interface {
	FieldValue(name string) (any, bool)
}

// Accessor extracts a cell value from a row. It is either a field name, resolved
// through FieldValuer, struct fields (by name or json tag) or string-keyed maps,
// or a function of the row. The zero Accessor extracts nothing.
type Accessor[T any] struct {
	field string
	fn    func(T) any
}

// Field returns an accessor reading the named field of a row.
func Field[T any](name string) Accessor[T] {
	return Accessor[T]{field: name}
}

// Func returns an accessor computing a value from a row.
func Func[T any](fn func(T) any) Accessor[T] {
	return Accessor[T]{fn: fn}
}

// IsZero reports whether the accessor extracts nothing.
func (a Accessor[T]) IsZero() bool {
	return a.fn == nil && a.field == ""
}

// IsFunc reports whether the accessor is a function accessor.
func (a Accessor[T]) IsFunc() bool {
	return a.fn != nil
}

// FieldName returns the field name of a field accessor, or "".
func (a Accessor[T]) FieldName() string {
	return a.field
}

// Value returns the accessor's value for row. Absent values (missing fields, nil
// pointers, nil interfaces) are returned as nil; non-nil pointers are dereferenced.
func (a Accessor[T]) Value(row T) any {
	switch {
	case a.fn != nil:
		return normalize(a.fn(row))
	case a.field != "":
		return fieldValue(row, a.field)
	default:
		return nil
	}
}

func fieldValue(row any, name string) any {
	if fv, ok := row.(FieldValuer); ok {
		v, found := fv.FieldValue(name)
		if !found {
			return nil
		}
		return normalize(v)
	}

	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil
		}
		return normalize(v.Interface())
	case reflect.Struct:
		f, ok := structField(rv, name)
		if !ok {
			return nil
		}
		return normalize(f.Interface())
	default:
		return nil
	}
}

// structField finds an exported field by Go name, falling back to its json tag.
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	if sf, ok := rv.Type().FieldByName(name); ok && sf.IsExported() {
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return f, true
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == name {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// normalize maps nil-able empties to nil and dereferences pointers.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
			continue
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return nil
			}
		default:
		}
		return rv.Interface()
	}
}

// Column describes one table column. Key must be unique within a column set.
// A column with no Accessor is display-only: it cannot be sorted and renders
// empty unless Render produces content.
type Column[T any] struct {
	Key      string
	Header   string
	Accessor Accessor[T]

	// Render produces the cell content from the accessor value (nil when absent
	// or when there is no accessor), the row and its index on the visible page.
	Render func(value any, row T, index int) any

	// Unsortable opts the column out of sorting. Columns sort by default.
	Unsortable bool

	Width     int
	MinWidth  int
	MaxWidth  int
	ClassName string
}

// Sortable reports whether clicking the column header may sort by it.
func (c Column[T]) Sortable() bool {
	return !c.Unsortable && !c.Accessor.IsZero()
}

// Cell returns the content of the column's cell for row at visible index.
//
// Render wins when set. Otherwise a function accessor's value is returned as-is,
// a field accessor's value is formatted as a string ("" when absent), and a
// column without accessor yields "".
func (c Column[T]) Cell(row T, index int) any {
	if c.Render != nil {
		var value any
		if !c.Accessor.IsZero() {
			value = c.Accessor.Value(row)
		}
		return c.Render(value, row, index)
	}

	if c.Accessor.IsFunc() {
		return c.Accessor.fn(row)
	}

	if c.Accessor.FieldName() != "" {
		value := c.Accessor.Value(row)
		if value == nil {
			return ""
		}
		return fmt.Sprint(value)
	}

	return ""
}
