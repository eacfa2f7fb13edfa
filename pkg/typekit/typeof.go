package typekit

import (
	"strings"

	"github.com/funvibe/typekit/internal/config"
)

// TypeOf reports whether value satisfies expr. expr is a union type
// expression: one or more type names separated by "|", matched left to
// right with short-circuit success. Empty alternatives, as produced by
// leading, trailing or doubled delimiters, match nothing and raise
// nothing.
//
// Each alternative is checked in order: native category name first,
// then delegation to the value's own Member capability for composite
// values, then enum membership.
func (r *Registry) TypeOf(value any, expr string) bool {
	for _, alt := range strings.Split(expr, config.UnionDelimiter) {
		if alt == "" {
			continue
		}
		if r.matches(value, alt) {
			return true
		}
	}
	return false
}

// matches checks a single non-union type name against value.
func (r *Registry) matches(value any, name string) bool {
	if nativeTypeName(value) == name {
		return true
	}
	if isComposite(value) {
		if m, ok := value.(Member); ok {
			// The value knows its own type membership; its answer is final.
			return m.TypeOf(name)
		}
	}
	if e, ok := r.enums[name]; ok {
		return e.contains(value)
	}
	return false
}

// TypeName returns the specific type name of value: the Typed
// capability result for composite values that provide it, the native
// category otherwise.
func TypeName(value any) string {
	if isComposite(value) {
		if t, ok := value.(Typed); ok {
			return t.Type()
		}
	}
	return nativeTypeName(value)
}
