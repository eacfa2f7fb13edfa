package typekit

import (
	"reflect"
	"sort"
)

// Enum is a named, closed key-value mapping usable as a type-check
// target. The keys present at registration stay readable with their
// original values; the key set itself can never change afterwards.
type Enum struct {
	name   string
	values map[string]any
}

func (e *Enum) Name() string { return e.name }

// Value returns the member stored under key.
func (e *Enum) Value(key string) (any, error) {
	v, ok := e.values[key]
	if !ok {
		return nil, &EnumAccessError{Enum: e.name, Key: key, Op: "read"}
	}
	return v, nil
}

// Set always fails: the key set is closed once the enum is registered.
func (e *Enum) Set(key string, value any) error {
	return &EnumAccessError{Enum: e.name, Key: key, Op: "write"}
}

// Keys returns the member keys in sorted order.
func (e *Enum) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Enum) Len() int { return len(e.values) }

// contains reports whether some member value compares equal to v.
// Equality is structural, not identity. Enums are small, the linear
// scan is fine.
func (e *Enum) contains(v any) bool {
	for _, member := range e.values {
		if reflect.DeepEqual(member, v) {
			return true
		}
	}
	return false
}

// DefineEnum registers mapping under name and returns the closed enum.
// The mapping is copied at registration, so later mutation of the
// argument cannot widen the enum. Registering a name twice fails with
// *DuplicateDefinitionError and leaves the registry unchanged.
func (r *Registry) DefineEnum(name string, mapping map[string]any) (*Enum, error) {
	if name == "" {
		return nil, NewArgumentError(1, "enum name must be a non-empty string")
	}
	if mapping == nil {
		return nil, NewArgumentError(2, "enum mapping must not be nil")
	}
	if _, exists := r.enums[name]; exists {
		return nil, &DuplicateDefinitionError{Kind: "enum", Name: name}
	}
	values := make(map[string]any, len(mapping))
	for k, v := range mapping {
		values[k] = v
	}
	e := &Enum{name: name, values: values}
	r.enums[name] = e
	return e, nil
}

// Enum returns the enum registered under name, if any.
func (r *Registry) Enum(name string) (*Enum, bool) {
	e, ok := r.enums[name]
	return e, ok
}
