package typekit

import (
	"fmt"
	"path/filepath"
	"runtime"
)

type assertConfig struct {
	label string
	index int
	depth int
}

// AssertOption adjusts how a failed assertion is reported.
type AssertOption func(*assertConfig)

// WithLabel names the checked value in the error message.
func WithLabel(label string) AssertOption {
	return func(c *assertConfig) { c.label = label }
}

// WithDepth moves caller attribution further up the stack. Depth 0
// attributes the frame that called AssertType.
func WithDepth(depth int) AssertOption {
	return func(c *assertConfig) { c.depth = depth }
}

// AssertType returns value unchanged when it satisfies expr, and a
// *TypeMismatchError naming the expected expression and the observed
// type otherwise.
func AssertType[T any](value T, expr string, opts ...AssertOption) (T, error) {
	var cfg assertConfig
	for _, o := range opts {
		o(&cfg)
	}
	return value, Default.check(value, expr, cfg, 2)
}

// AssertArgument is AssertType for the index-th (1-based) argument of
// the calling function. The failure is attributed one frame further
// out, to the caller of the function performing the check.
func AssertArgument[T any](index int, value T, expr string) (T, error) {
	return value, Default.check(value, expr, assertConfig{index: index}, 3)
}

// AssertType is the explicit-registry form of the package-level
// AssertType.
func (r *Registry) AssertType(value any, expr string, opts ...AssertOption) (any, error) {
	var cfg assertConfig
	for _, o := range opts {
		o(&cfg)
	}
	return value, r.check(value, expr, cfg, 2)
}

// AssertArgument is the explicit-registry form of the package-level
// AssertArgument.
func (r *Registry) AssertArgument(index int, value any, expr string) (any, error) {
	return value, r.check(value, expr, assertConfig{index: index}, 3)
}

func (r *Registry) check(value any, expr string, cfg assertConfig, skip int) error {
	if r.TypeOf(value, expr) {
		return nil
	}
	err := &TypeMismatchError{
		Label:    cfg.label,
		Index:    cfg.index,
		Expected: expr,
		Actual:   TypeName(value),
	}
	if _, file, line, ok := runtime.Caller(skip + cfg.depth); ok {
		err.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return err
}
