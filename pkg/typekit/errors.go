package typekit

import (
	"fmt"
	"strings"
)

// ArgumentError indicates malformed input to a definition function:
// a missing name, a nil mapping, a parent that is not a descriptor.
type ArgumentError struct {
	Index  int // 1-based argument position, 0 when not positional
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("bad argument #%d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("bad argument: %s", e.Reason)
}

func NewArgumentError(index int, reason string) *ArgumentError {
	return &ArgumentError{Index: index, Reason: reason}
}

// DuplicateDefinitionError indicates a name collision in a registry.
type DuplicateDefinitionError struct {
	Kind string
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s %q is already defined", e.Kind, e.Name)
}

// EnumAccessError indicates a read of a missing key or any write on a
// closed enum.
type EnumAccessError struct {
	Enum string
	Key  string
	Op   string // "read" or "write"
}

func (e *EnumAccessError) Error() string {
	if e.Op == "write" {
		return fmt.Sprintf("enum %s is closed: cannot set key %q", e.Enum, e.Key)
	}
	return fmt.Sprintf("enum %s has no key %q", e.Enum, e.Key)
}

// TypeMismatchError is returned by the assertion layer when a value
// does not satisfy the expected type expression.
type TypeMismatchError struct {
	Label    string
	Index    int // 1-based argument index, 0 when the check is not positional
	Expected string
	Actual   string
	Caller   string // attributed frame as file:line, empty if unknown
}

func (e *TypeMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("type mismatch")
	if e.Index > 0 {
		fmt.Fprintf(&b, " for argument #%d", e.Index)
	} else if e.Label != "" {
		fmt.Fprintf(&b, " for %s", e.Label)
	}
	fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Actual)
	if e.Caller != "" {
		fmt.Fprintf(&b, " (at %s)", e.Caller)
	}
	return b.String()
}
