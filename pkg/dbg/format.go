package dbg

import (
	"container/list"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Debuggable is implemented by aggregate types that supply their own
// field list for rendering. The conventional implementation is a
// one-liner over Derive:
//
//	func (u User) PrettyPrint(p *dbg.Printer) {
//		p.Derive("name, age", u.name, u.age)
//	}
type Debuggable interface {
	PrettyPrint(p *Printer)
}

// drainer is implemented by the consuming containers in this package.
// drainVals returns the elements of a copy, so the container the caller
// holds is left intact.
type drainer interface {
	drainVals() []any
}

// sharer is implemented by Shared, the shared-ownership box. sharedVal
// reports the boxed value, or ok=false when the box is empty.
type sharer interface {
	sharedVal() (any, bool)
}

// prettyPrint renders a single value at the current indent level. Multi-
// line blocks end with their closing brace at the indent level they
// started at, with no trailing newline; the caller supplies line breaks.
func (p *Printer) prettyPrint(v any) {
	// Typed nil pointers render as nil here, before the interface cases
	// below can dereference them.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		p.write("nil")
		return
	}

	switch x := v.(type) {
	case Debuggable:
		x.PrettyPrint(p)
		return
	case drainer:
		p.printSequence(x.drainVals())
		return
	case sharer:
		elem, ok := x.sharedVal()
		if !ok {
			p.write("nil")
			return
		}
		p.printOwned(elem, true)
		return
	case *list.List:
		p.printLinked(x)
		return
	case string:
		p.write(`"` + x + `"`)
		return
	case nil:
		p.write("nil")
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		p.write(`"` + rv.String() + `"`)
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		p.printSequence(elems)
	case reflect.Map:
		if isSetType(rv.Type()) {
			p.printSequence(setElems(rv))
		} else {
			p.printMap(rv)
		}
	case reflect.Pointer:
		p.printOwned(rv.Elem().Interface(), false)
	case reflect.Struct:
		p.printStructFields(rv)
	default:
		// Scalars: numeric, bool, complex. Literal form, no quoting.
		p.write(fmt.Sprintf("%v", v))
	}
}

// isScalarValue reports whether the value renders inline with no block
// structure. Strings are not scalars here: a sequence of strings takes
// the annotated multi-line form, same as aggregates.
func isScalarValue(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// printSequence renders an ordered sequence: {} when empty, a single
// comma-separated line for scalar elements, and an indexed multi-line
// block with a <TypeLabel> annotation otherwise.
func (p *Printer) printSequence(elems []any) {
	if len(elems) == 0 {
		p.write("{}")
		return
	}

	if isScalarValue(elems[0]) {
		p.write("{")
		for i, e := range elems {
			if i > 0 {
				p.write(", ")
			}
			p.prettyPrint(e)
		}
		p.write("}")
		return
	}

	p.write("{\n")
	p.indented(func() {
		p.write(p.indent + "<" + TypeLabel(elems[0]) + ">\n")
		for i, e := range elems {
			p.write(p.indent + "[" + strconv.Itoa(i) + "] = ")
			p.prettyPrint(e)
			p.write("\n")
		}
	})
	p.write(p.indent + "}")
}

// printLinked renders a container/list.List by walking its nodes.
func (p *Printer) printLinked(l *list.List) {
	elems := make([]any, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		elems = append(elems, e.Value)
	}
	p.printSequence(elems)
}

// printMap renders a key-value mapping as a multi-line block annotated
// with <KeyLabel -> ValueLabel>. Entries come out in sorted key order
// when the key type sorts, so hashed maps render deterministically.
func (p *Printer) printMap(rv reflect.Value) {
	if rv.Len() == 0 {
		p.write("{}")
		return
	}

	t := rv.Type()
	keys := sortedKeys(rv)
	p.write("{\n")
	p.indented(func() {
		p.write(p.indent + "<" + labelForType(t.Key()) + " -> " + labelForType(t.Elem()) + ">\n")
		for _, k := range keys {
			p.write(p.indent + "[")
			p.prettyPrint(k.Interface())
			p.write("] = ")
			p.prettyPrint(rv.MapIndex(k).Interface())
			p.write("\n")
		}
	})
	p.write(p.indent + "}")
}

// printOwned renders the value behind an owning reference. Scalars come
// out inline as {value}; anything else becomes a block whose annotation
// line is < -> TypeLabel> for exclusive ownership and <TypeLabel> for
// shared ownership.
func (p *Printer) printOwned(elem any, shared bool) {
	if isScalarValue(elem) {
		p.write("{")
		p.prettyPrint(elem)
		p.write("}")
		return
	}

	annotation := "< -> " + TypeLabel(elem) + ">"
	if shared {
		annotation = "<" + TypeLabel(elem) + ">"
	}
	p.indented(func() {
		p.write("{\n" + p.indent + annotation + "\n" + p.indent)
		p.prettyPrint(elem)
	})
	p.write("\n" + p.indent + "}")
}

// printStructFields is the fallback for aggregates that do not implement
// Debuggable: the exported fields render in declaration order, in the
// same name: type = value block Derive produces.
func (p *Printer) printStructFields(rv reflect.Value) {
	t := rv.Type()
	p.write("{\n")
	p.indented(func() {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			v := rv.Field(i).Interface()
			p.write(p.indent + f.Name + ": " + TypeLabel(v) + " = ")
			p.prettyPrint(v)
			p.write("\n")
		}
	})
	p.write(p.indent + "}")
}

// isSetType reports whether a map type is a set spelling: struct{}
// values carry no payload, so only the keys render.
func isSetType(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

// setElems returns a map-as-set's keys, sorted when the key type sorts.
func setElems(rv reflect.Value) []any {
	keys := sortedKeys(rv)
	elems := make([]any, len(keys))
	for i, k := range keys {
		elems[i] = k.Interface()
	}
	return elems
}

// sortedKeys returns a map's keys, ordered for numeric, string, and
// bool keys and left in reflection order otherwise.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return lessValue(keys[i], keys[j])
	})
	return keys
}

func lessValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	default:
		return false
	}
}
