// Package types defines the primitive type kinds, type descriptors, facet
// descriptions, type usages and canonical function signatures of the EDM
// conceptual model, together with the standard errors of the edmtypes
// module.
//
// The kind enumeration is closed: switches over PrimitiveTypeKind are
// checked for exhaustiveness by the exhaustive linter (see .golangci.yml).
package types
