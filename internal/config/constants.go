package config

// BaseClassName is the reserved name of the root class. Every class
// defined without explicit parents descends from it.
const BaseClassName = "Object"

// UnionDelimiter separates alternatives in a union type expression,
// e.g. "string|number|Color".
const UnionDelimiter = "|"

// ConstructorFieldName is the conventional constructor key on a class
// field map. It is excluded from inheritance copies by default.
const ConstructorFieldName = "new"

// Native type category names
const (
	NilTypeName      = "nil"
	BooleanTypeName  = "boolean"
	NumberTypeName   = "number"
	StringTypeName   = "string"
	FunctionTypeName = "function"
	ObjectTypeName   = "object"
)
