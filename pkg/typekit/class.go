package typekit

import (
	"fmt"
	"sort"

	"github.com/funvibe/typekit/internal/config"
)

// Class describes a user-defined type: a unique name, the fields copied
// from its ancestors, and the set of type names it satisfies.
//
// Fields stays mutable after creation so applications can attach
// methods and constants, but such mutations are invisible to
// descendants defined earlier and to the membership set: inheritance is
// a one-time copy, not live delegation.
type Class struct {
	Name   string
	Fields map[string]any

	types map[string]struct{}
}

// Satisfies reports whether the class carries the given type name,
// either its own or one captured from an ancestor at creation time.
func (c *Class) Satisfies(name string) bool {
	_, ok := c.types[name]
	return ok
}

// Types returns the membership set in sorted order.
func (c *Class) Types() []string {
	names := make([]string, 0, len(c.types))
	for n := range c.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *Class) String() string {
	return fmt.Sprintf("class %s", c.Name)
}

func newBaseClass() *Class {
	return &Class{
		Name:   config.BaseClassName,
		Fields: make(map[string]any),
		types:  map[string]struct{}{config.BaseClassName: {}},
	}
}

// DefineClass builds a new class descriptor by statically copying the
// parents' fields, first to last, with later parents overwriting
// earlier ones on key collision. Keys in the registry's excluded set
// are never copied. With no parents the registry's base Object class is
// the sole implicit parent. The new membership set is the union of the
// parents' sets plus name itself.
//
// The registry does not retain the descriptor; ownership is the
// caller's. After composition the registry's class-creation hook runs
// with the new descriptor and the effective parent list.
func (r *Registry) DefineClass(name string, parents ...*Class) (*Class, error) {
	if name == "" {
		return nil, NewArgumentError(1, "class name must be a non-empty string")
	}
	for i, p := range parents {
		if p == nil || p.types == nil {
			return nil, NewArgumentError(i+2, "parent is not a class descriptor")
		}
	}
	if len(parents) == 0 {
		parents = []*Class{r.base}
	}
	c := &Class{
		Name:   name,
		Fields: make(map[string]any),
		types:  map[string]struct{}{name: {}},
	}
	for _, p := range parents {
		for k, v := range p.Fields {
			if _, skip := r.excluded[k]; skip {
				continue
			}
			c.Fields[k] = v
		}
		for t := range p.types {
			c.types[t] = struct{}{}
		}
	}
	r.onClassCreated(c, parents)
	return c, nil
}
