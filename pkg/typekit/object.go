package typekit

import (
	"fmt"
	"reflect"

	"github.com/funvibe/typekit/internal/config"
)

// Typed reports a specific type name for a value. Foreign objects and
// class instances implement it so TypeName can return something better
// than the generic "object" category.
type Typed interface {
	Type() string
}

// Member tests whether a value belongs to a named type. Composite
// values implementing it take part in TypeOf queries; the query is
// delegated to them and their answer is final.
type Member interface {
	TypeOf(name string) bool
}

// Inspector renders a debug representation of a value.
type Inspector interface {
	Inspect() string
}

// nativeTypeName maps a Go value to its type category.
func nativeTypeName(v any) string {
	if v == nil {
		return config.NilTypeName
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return config.BooleanTypeName
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return config.NumberTypeName
	case reflect.String:
		return config.StringTypeName
	case reflect.Func:
		if rv.IsNil() {
			return config.NilTypeName
		}
		return config.FunctionTypeName
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return config.NilTypeName
		}
		return config.ObjectTypeName
	default:
		return config.ObjectTypeName
	}
}

// isComposite reports whether v falls outside every primitive category.
func isComposite(v any) bool {
	return nativeTypeName(v) == config.ObjectTypeName
}

// Instance is a value bound to exactly one class descriptor. The
// binding is established by NewInstance and never changes. Data holds
// the instance's own fields; methods and class constants live on the
// descriptor. A zero-value Instance is bound to no class and behaves
// as a plain object.
type Instance struct {
	class *Class
	Data  map[string]any
}

// NewInstance binds a fresh instance to c. A nil data map is allocated.
func NewInstance(c *Class, data map[string]any) (*Instance, error) {
	if c == nil {
		return nil, NewArgumentError(1, "class must not be nil")
	}
	if data == nil {
		data = make(map[string]any)
	}
	return &Instance{class: c, Data: data}, nil
}

// Class returns the descriptor this instance is bound to, nil for an
// unbound zero-value Instance.
func (i *Instance) Class() *Class { return i.class }

// Type returns the owning class name, or the generic object category
// when the instance is unbound.
func (i *Instance) Type() string {
	if i.class == nil {
		return config.ObjectTypeName
	}
	return i.class.Name
}

// TypeOf reports whether the instance satisfies the named type, i.e.
// whether name is in the owning class's membership set. An unbound
// instance satisfies nothing.
func (i *Instance) TypeOf(name string) bool {
	if i.class == nil {
		return false
	}
	return i.class.Satisfies(name)
}

// Inspect combines the type name with a raw dump of the instance's own
// data. It deliberately never calls a user-defined display field, so an
// override cannot recurse back in here or hide the real contents.
func (i *Instance) Inspect() string {
	return fmt.Sprintf("%s %#v", i.Type(), i.Data)
}
