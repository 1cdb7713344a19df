package dbg

import (
	"reflect"
	"strings"
)

// typeSpellings maps verbose runtime type spellings to the form users
// actually write.
var typeSpellings = map[string]string{
	"interface {}":        "any",
	"*errors.errorString": "error",
	"*errors.fundamental": "error",
	"*fmt.wrapError":      "error",
	"*list.List":          "list.List",
}

// TypeLabel returns a short human-readable label for the value's type:
// the runtime type name with any generic instantiation suffix stripped,
// normalized through a small substitution table. A nil interface is
// labeled "nil".
func TypeLabel(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return labelForType(t)
}

// labelForType renders the label for a static type. Generic parameters
// are stripped for named types only: "dbg.Stack[int]" becomes
// "dbg.Stack", while composite spellings like "[]int" and
// "map[string]int" keep their brackets. Pointers recurse, so
// "*dbg.Stack[int]" becomes "*dbg.Stack".
func labelForType(t reflect.Type) string {
	name := t.String()
	if short, ok := typeSpellings[name]; ok {
		return short
	}
	if t.Kind() == reflect.Pointer {
		return "*" + labelForType(t.Elem())
	}
	if base := t.Name(); base != "" {
		if i := strings.IndexByte(base, '['); i >= 0 {
			if j := strings.IndexByte(name, '['); j >= 0 {
				name = name[:j]
			}
		}
	}
	return strings.ReplaceAll(name, "interface {}", "any")
}
