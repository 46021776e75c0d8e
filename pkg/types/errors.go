package types

import "errors"

// Catalog configuration errors. These indicate a defect in the static
// catalog declarations and abort catalog construction.
var (
	ErrDuplicateFunction      = errors.New("duplicate function signature")
	ErrUnknownPromotionTarget = errors.New("promotion target is not a registered primitive kind")
	ErrPromotionNotReflexive  = errors.New("promotion list does not start with its own kind")
	ErrPromotionCycle         = errors.New("promotion lattice has a cycle")
	ErrInconsistentFacet      = errors.New("inconsistent facet description")
)

// Caller misuse errors.
var (
	ErrUnknownKind = errors.New("unknown primitive type kind")
	ErrNilType     = errors.New("primitive type is nil")
)

// Type usage errors.
var (
	ErrUnknownFacet    = errors.New("unknown facet")
	ErrFacetOutOfRange = errors.New("facet value out of range")
	ErrFacetValueType  = errors.New("facet value has the wrong type")
)

// Resolution and mapping errors.
var (
	ErrNoCommonType        = errors.New("no common promotion type")
	ErrNoMatchingOverload  = errors.New("no matching function overload")
	ErrUnmappableStoreType = errors.New("store type cannot be mapped to a primitive kind")
	ErrTableNotFound       = errors.New("table not found")
)
