package formatty

import (
	"reflect"
	"strconv"
	"strings"
)

// Lookup is implemented by values that resolve named fields themselves. It
// takes precedence over map and struct field access.
type Lookup interface {
	Lookup(name string) (any, bool)
}

// refKind says how the first segment of a field name picks an argument
type refKind int

const (
	refAuto  refKind = iota // empty: next argument from the cursor
	refIndex                // digits: argument at that position
	refName                 // identifier: key of the single keyword argument
)

// fieldRef is a field name parsed once at compile time
type fieldRef struct {
	kind  refKind
	index int
	name  string
	path  []string // attribute segments after the first
}

// parseFieldRef splits a field name into its argument selector and dotted
// attribute path. "", "0", "user", "0.name" and ".name" are all valid.
func parseFieldRef(field string) fieldRef {
	first, rest, hasPath := strings.Cut(field, attrSeparator)
	ref := fieldRef{}
	if hasPath {
		ref.path = strings.Split(rest, attrSeparator)
	}

	switch {
	case first == "":
		ref.kind = refAuto
	case isDigits(first):
		ref.kind = refIndex
		n, err := strconv.Atoi(first)
		if err != nil {
			n = -1 // overflow can never match
		}
		ref.index = n
	default:
		ref.kind = refName
		ref.name = first
	}
	return ref
}

// resolve picks the argument for the reference and walks its attribute path.
// Every miss yields Undefined.
func (r fieldRef) resolve(c *argCursor) any {
	var value any
	switch r.kind {
	case refAuto:
		value = c.next()
	case refIndex:
		value = c.at(r.index)
	case refName:
		value = c.named(r.name)
	}

	for _, seg := range r.path {
		if value == Undefined {
			break
		}
		next, ok := lookupAttr(value, seg)
		if !ok {
			return Undefined
		}
		value = next
	}
	return value
}

// argCursor holds the arguments of one render call and the position of the
// next auto-index argument. Explicit positions never move it.
type argCursor struct {
	args []any
	pos  int
}

func newArgCursor(args []any) *argCursor {
	return &argCursor{args: args}
}

// next consumes the next argument, or returns Undefined when none are left
func (c *argCursor) next() any {
	if c.pos >= len(c.args) {
		return Undefined
	}
	v := c.args[c.pos]
	c.pos++
	return v
}

// at returns the argument at a 0-based position
func (c *argCursor) at(i int) any {
	if i < 0 || i >= len(c.args) {
		return Undefined
	}
	return c.args[i]
}

// named looks name up in the call's only argument. With any other argument
// count there is no keyword table and the field is undefined.
func (c *argCursor) named(name string) any {
	if len(c.args) != 1 {
		return Undefined
	}
	v, ok := lookupAttr(c.args[0], name)
	if !ok {
		return Undefined
	}
	return v
}

// lookupAttr resolves one attribute segment on v: the Lookup interface, a
// string-keyed map, an exported struct field (exact name first, then case
// insensitive) or a slice, array or string index.
func lookupAttr(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if l, ok := v.(Lookup); ok {
		return l.Lookup(key)
	}
	if m, ok := v.(map[string]any); ok {
		val, found := m[key]
		return val, found
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true

	case reflect.Struct:
		field, ok := rv.Type().FieldByName(key)
		if !ok || !field.IsExported() {
			field, ok = rv.Type().FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, key)
			})
		}
		if !ok || !field.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true

	case reflect.String:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			return nil, false
		}
		runes := []rune(rv.String())
		if i >= len(runes) {
			return nil, false
		}
		return string(runes[i]), true
	}
	return nil, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
