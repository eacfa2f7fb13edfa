package typekit

import (
	"sort"

	"github.com/funvibe/typekit/internal/config"
)

// ClassCreatedHook runs after DefineClass finishes composing a
// descriptor. parents is the effective parent list, including the
// implicit base class when none was given. Applications use it to
// inject construction logic, e.g. auto-generating a constructor field.
type ClassCreatedHook func(c *Class, parents []*Class)

// Registry holds the process-wide mutable state of the type system: the
// enum table, the excluded-fields set, the class-creation hook and the
// base Object class.
//
// A Registry is not safe for concurrent definition. Embedders that
// define classes or enums from multiple goroutines must serialize those
// calls; reads after definition are safe to share.
type Registry struct {
	base     *Class
	enums    map[string]*Enum
	excluded map[string]struct{}
	hook     ClassCreatedHook
}

// NewRegistry returns a registry with a fresh base Object class, an
// empty enum table and the default excluded key set.
func NewRegistry() *Registry {
	return &Registry{
		base:     newBaseClass(),
		enums:    make(map[string]*Enum),
		excluded: map[string]struct{}{config.ConstructorFieldName: {}},
	}
}

// BaseClass returns the root Object descriptor. Fields added to it are
// copied into classes defined afterwards; classes already defined are
// unaffected, since inheritance is a one-time copy. This is a known
// limitation, not something DefineClass compensates for.
func (r *Registry) BaseClass() *Class { return r.base }

// Exclude adds keys that DefineClass must never copy from parents. It
// affects subsequent definitions only.
func (r *Registry) Exclude(keys ...string) {
	for _, k := range keys {
		r.excluded[k] = struct{}{}
	}
}

// Excluded returns the current excluded key set in sorted order.
func (r *Registry) Excluded() []string {
	keys := make([]string, 0, len(r.excluded))
	for k := range r.excluded {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OnClassCreated replaces the class-creation hook. A nil hook restores
// the default no-op.
func (r *Registry) OnClassCreated(hook ClassCreatedHook) { r.hook = hook }

func (r *Registry) onClassCreated(c *Class, parents []*Class) {
	if r.hook != nil {
		r.hook(c, parents)
	}
}

// Default is the process-wide registry behind the package-level
// functions. Single-writer discipline applies to it like to any other
// registry.
var Default = NewRegistry()

// DefineClass defines a class on the Default registry.
func DefineClass(name string, parents ...*Class) (*Class, error) {
	return Default.DefineClass(name, parents...)
}

// DefineEnum defines an enum on the Default registry.
func DefineEnum(name string, mapping map[string]any) (*Enum, error) {
	return Default.DefineEnum(name, mapping)
}

// TypeOf queries the Default registry.
func TypeOf(value any, expr string) bool {
	return Default.TypeOf(value, expr)
}

// Exclude extends the Default registry's excluded key set.
func Exclude(keys ...string) { Default.Exclude(keys...) }

// OnClassCreated replaces the Default registry's class-creation hook.
func OnClassCreated(hook ClassCreatedHook) { Default.OnClassCreated(hook) }
