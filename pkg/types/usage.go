package types

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// TypeUsage is a primitive type together with bound facet values, or a
// collection of such a type when used as an aggregate's argument.
// TypeUsage values are immutable; the zero value is not usable.
type TypeUsage struct {
	typ        *PrimitiveType
	collection bool
	facets     map[string]any
}

// NewTypeUsage binds facet values to t. Every key in values must name one of
// descriptions; values are coerced to the facet's value kind and checked
// against its bounds. Facets left unbound take their declared default, when
// one exists.
// Returns ErrNilType, ErrUnknownFacet, ErrFacetValueType or
// ErrFacetOutOfRange (wrapped) on failure.
func NewTypeUsage(t *PrimitiveType, descriptions []FacetDescription, values map[string]any) (TypeUsage, error) {
	if t == nil {
		return TypeUsage{}, ErrNilType
	}
	known := make(map[string]FacetDescription, len(descriptions))
	for _, d := range descriptions {
		known[d.Name] = d
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			return TypeUsage{}, fmt.Errorf("%s has no facet %q: %w", t.FullName(), name, ErrUnknownFacet)
		}
	}

	bound := make(map[string]any, len(descriptions))
	for _, d := range descriptions {
		raw, ok := values[d.Name]
		if !ok {
			if d.HasDefault() {
				bound[d.Name] = d.Default
			}
			continue
		}
		v, err := d.Coerce(raw)
		if err != nil {
			return TypeUsage{}, fmt.Errorf("%s: %w", t.FullName(), err)
		}
		bound[d.Name] = v
	}
	return TypeUsage{typ: t, facets: bound}, nil
}

// UsageOf returns a facet-less usage of t.
func UsageOf(t *PrimitiveType) TypeUsage {
	return TypeUsage{typ: t}
}

// CollectionOf returns the usage of a sequence of t, the argument type of
// aggregate functions.
func CollectionOf(t *PrimitiveType) TypeUsage {
	return TypeUsage{typ: t, collection: true}
}

// Type returns the primitive type, or the element type of a collection.
func (u TypeUsage) Type() *PrimitiveType { return u.typ }

// Kind returns the kind of Type.
func (u TypeUsage) Kind() PrimitiveTypeKind { return u.typ.Kind() }

// IsCollection reports whether u describes a sequence of Type.
func (u TypeUsage) IsCollection() bool { return u.collection }

// Facet returns a bound facet value.
func (u TypeUsage) Facet(name string) (any, bool) {
	v, ok := u.facets[name]
	return v, ok
}

// Facets returns a copy of the bound facet values.
func (u TypeUsage) Facets() map[string]any {
	return maps.Clone(u.facets)
}

// String renders the usage as e.g. "Edm.Decimal(Precision=18,Scale=2)" or
// "Collection(Edm.Int32)".
func (u TypeUsage) String() string {
	if u.typ == nil {
		return "<nil>"
	}
	name := u.typ.FullName()
	if len(u.facets) > 0 {
		keys := make([]string, 0, len(u.facets))
		for k := range u.facets {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, u.facets[k])
		}
		name += "(" + strings.Join(parts, ",") + ")"
	}
	if u.collection {
		return "Collection(" + name + ")"
	}
	return name
}
