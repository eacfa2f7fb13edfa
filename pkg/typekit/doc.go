// Package typekit is an embeddable class, enum and type-introspection
// layer. It provides class definition with static multiple inheritance
// (parent fields are copied once at creation, never delegated to),
// closed enumerations registered by name, and a unified TypeOf/TypeName
// surface that spans native Go values, class instances, foreign objects
// implementing the capability interfaces, and enum members. Type
// queries accept union expressions such as "string|number".
//
// Mutable state (the enum table, the excluded-fields set, the class
// creation hook) lives in a Registry. The package-level functions
// operate on the process-wide Default registry; embedders that need
// isolated state create their own with NewRegistry.
package typekit
