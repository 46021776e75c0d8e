// Package manifest is the EDM provider type-system manifest: the canonical
// primitive types, their facet descriptions, the implicit promotion lattice
// and the catalog of canonical functions.
//
// Every catalog is built on first use and published atomically; afterwards
// all reads are lock-free. Descriptors and functions are shared and
// immutable; the slices handed to callers are copies.
package manifest

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// Manifest exposes the type-system catalogs. The zero value is not usable;
// use New or Default.
type Manifest struct {
	log *zap.Logger

	primitiveCell cell[primitiveCatalog]
	facetCell     cell[facetCatalog]
	promotionCell cell[promotionCatalog]
	functionCell  cell[[]*types.EdmFunction]
}

// Option configures a Manifest.
type Option func(*Manifest)

// WithLogger sets the logger used to report catalog construction.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manifest) {
		if log != nil {
			m.log = log
		}
	}
}

// New returns a manifest whose catalogs are built on first access.
func New(opts ...Option) *Manifest {
	m := &Manifest{log: zap.NewNop()}
	m.primitiveCell.name = "primitive type"
	m.facetCell.name = "facet description"
	m.promotionCell.name = "promotion"
	m.functionCell.name = "canonical function"
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultManifest = sync.OnceValue(func() *Manifest { return New() })

// Default returns the process-wide manifest.
func Default() *Manifest {
	return defaultManifest()
}

// GetPrimitiveType returns the canonical type of kind from the default manifest.
func GetPrimitiveType(kind types.PrimitiveTypeKind) *types.PrimitiveType {
	return Default().PrimitiveType(kind)
}

// GetFacetDescriptions returns the facets of t from the default manifest.
func GetFacetDescriptions(t *types.PrimitiveType) []types.FacetDescription {
	return Default().FacetDescriptions(t)
}

// GetPromotionTypes returns the promotion targets of t from the default manifest.
func GetPromotionTypes(t *types.PrimitiveType) []*types.PrimitiveType {
	return Default().PromotionTypes(t)
}

// GetCanonicalFunctions returns the canonical functions of the default manifest.
func GetCanonicalFunctions() []*types.EdmFunction {
	return Default().CanonicalFunctions()
}

func mustValidKind(kind types.PrimitiveTypeKind) {
	if !kind.Valid() {
		panic(fmt.Errorf("manifest: %s: %w", kind, types.ErrUnknownKind))
	}
}

func mustNotNil(t *types.PrimitiveType) {
	if t == nil {
		panic(fmt.Errorf("manifest: %w", types.ErrNilType))
	}
}
