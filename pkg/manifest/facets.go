package manifest

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

type facetCatalog struct {
	byKind [types.NumPrimitiveKinds][]types.FacetDescription
}

func buildFacetCatalog() (*facetCatalog, int, error) {
	c := &facetCatalog{}
	entries := 0
	for _, kind := range types.AllKinds() {
		descs := facetsForKind(kind)
		for _, d := range descs {
			if err := d.Consistent(); err != nil {
				return nil, 0, fmt.Errorf("%s: %w", kind, err)
			}
		}
		c.byKind[kind] = descs
		entries += len(descs)
	}
	return c, entries, nil
}

// facetsForKind is the exhaustive kind-to-facets mapping. Every kind has a
// case; a kind added to the enumeration without one is reported by the
// exhaustive linter and panics at catalog construction.
func facetsForKind(kind types.PrimitiveTypeKind) []types.FacetDescription {
	switch kind {
	case types.String:
		return []types.FacetDescription{
			types.NewBoundedFacet(types.FacetMaxLength, types.Int32, 0, types.MaxLengthUpperBound, nil),
			types.NewFlagFacet(types.FacetUnicode, nil),
			types.NewFlagFacet(types.FacetFixedLength, nil),
		}
	case types.Binary:
		return []types.FacetDescription{
			types.NewBoundedFacet(types.FacetMaxLength, types.Int32, 0, types.MaxLengthUpperBound, nil),
			types.NewFlagFacet(types.FacetFixedLength, nil),
		}
	case types.DateTime, types.Time, types.DateTimeOffset:
		return []types.FacetDescription{
			types.NewBoundedFacet(types.FacetPrecision, types.Byte, 0, types.MaxDateTimePrecision, types.DefaultDateTimePrecision),
		}
	case types.Decimal:
		return []types.FacetDescription{
			types.NewBoundedFacet(types.FacetPrecision, types.Byte, 1, types.MaxDecimalPrecision, nil),
			types.NewBoundedFacet(types.FacetScale, types.Byte, 0, types.MaxDecimalPrecision, nil),
		}
	case types.Geography, types.GeographyPoint, types.GeographyLineString, types.GeographyPolygon,
		types.GeographyMultiPoint, types.GeographyMultiLineString, types.GeographyMultiPolygon,
		types.GeographyCollection:
		return spatialFacets(types.DefaultGeographySRID)
	case types.Geometry, types.GeometryPoint, types.GeometryLineString, types.GeometryPolygon,
		types.GeometryMultiPoint, types.GeometryMultiLineString, types.GeometryMultiPolygon,
		types.GeometryCollection:
		return spatialFacets(types.DefaultGeometrySRID)
	case types.Boolean, types.Byte, types.SByte, types.Int16, types.Int32, types.Int64,
		types.Single, types.Double, types.Guid:
		return []types.FacetDescription{}
	default:
		panic(fmt.Errorf("manifest: no facet mapping for %s: %w", kind, types.ErrUnknownKind))
	}
}

func spatialFacets(defaultSRID int32) []types.FacetDescription {
	return []types.FacetDescription{
		types.NewBoundedFacet(types.FacetSRID, types.Int32, 0, types.MaxLengthUpperBound, defaultSRID),
		types.NewFlagFacet(types.FacetIsStrict, true),
	}
}

// FacetDescriptions returns the constraint facets applicable to t, in
// declaration order. The result is a fresh copy and never nil.
// Panics if t is nil or of an unknown kind.
func (m *Manifest) FacetDescriptions(t *types.PrimitiveType) []types.FacetDescription {
	mustNotNil(t)
	mustValidKind(t.Kind())
	return slices.Clone(m.facetCell.get(m.log, buildFacetCatalog).byKind[t.Kind()])
}

// NewTypeUsage binds facet values to the canonical type of kind, validating
// them against the kind's facet descriptions.
func (m *Manifest) NewTypeUsage(kind types.PrimitiveTypeKind, values map[string]any) (types.TypeUsage, error) {
	t := m.PrimitiveType(kind)
	return types.NewTypeUsage(t, m.FacetDescriptions(t), values)
}
