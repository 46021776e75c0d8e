package manifest

import "github.com/mesh-intelligence/edmtypes/pkg/types"

var spatialBaseKinds = []types.PrimitiveTypeKind{types.Geography, types.Geometry}

// spatialFamily names the kinds of one spatial family for constructor
// declarations. Subtype suffixes follow the constructor names, e.g.
// GeographyLineFromText returns a GeographyLineString.
type spatialFamily struct {
	prefix   string
	base     types.PrimitiveTypeKind
	subtypes []spatialSubtype
}

type spatialSubtype struct {
	suffix string
	kind   types.PrimitiveTypeKind
}

var (
	geographyFamily = spatialFamily{
		prefix: "Geography",
		base:   types.Geography,
		subtypes: []spatialSubtype{
			{"Point", types.GeographyPoint},
			{"Line", types.GeographyLineString},
			{"Polygon", types.GeographyPolygon},
			{"MultiPoint", types.GeographyMultiPoint},
			{"MultiLine", types.GeographyMultiLineString},
			{"MultiPolygon", types.GeographyMultiPolygon},
			{"Collection", types.GeographyCollection},
		},
	}
	geometryFamily = spatialFamily{
		prefix: "Geometry",
		base:   types.Geometry,
		subtypes: []spatialSubtype{
			{"Point", types.GeometryPoint},
			{"Line", types.GeometryLineString},
			{"Polygon", types.GeometryPolygon},
			{"MultiPoint", types.GeometryMultiPoint},
			{"MultiLine", types.GeometryMultiLineString},
			{"MultiPolygon", types.GeometryMultiPolygon},
			{"Collection", types.GeometryCollection},
		},
	}
)

func declareSpatialFunctions(b *functionBuilder) {
	declareSpatialConstructors(b, geographyFamily)
	declareSpatialConstructors(b, geometryFamily)

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Int32, "CoordinateSystemId", p(k, "spatialValue"))
		b.addFunction(types.String, "SpatialTypeName", p(k, "spatialValue"))
		b.addFunction(types.Int32, "SpatialDimension", p(k, "spatialValue"))
		b.addFunction(types.Binary, "AsBinary", p(k, "spatialValue"))
		b.addFunction(types.String, "AsGml", p(k, "spatialValue"))
		b.addFunction(types.String, "AsText", p(k, "spatialValue"))
		b.addFunction(types.Boolean, "IsEmptySpatial", p(k, "spatialValue"))
	})

	b.addFunction(types.Geometry, "SpatialEnvelope", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Boolean, "IsSimpleGeometry", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Geometry, "SpatialBoundary", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Boolean, "IsValidGeometry", p(types.Geometry, "geometryValue"))

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"SpatialEquals", "SpatialDisjoint", "SpatialIntersects"} {
			b.addFunction(types.Boolean, name, p(k, "spatialValue1"), p(k, "spatialValue2"))
		}
	})
	for _, name := range []string{"SpatialTouches", "SpatialCrosses", "SpatialWithin", "SpatialContains", "SpatialOverlaps"} {
		b.addFunction(types.Boolean, name, p(types.Geometry, "geometryValue1"), p(types.Geometry, "geometryValue2"))
	}
	b.addFunction(types.Boolean, "SpatialRelate",
		p(types.Geometry, "geometryValue1"), p(types.Geometry, "geometryValue2"), p(types.String, "intersectionPatternMatrix"))

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(k, "SpatialBuffer", p(k, "spatialValue"), p(types.Double, "distance"))
		b.addFunction(types.Double, "Distance", p(k, "spatialValue1"), p(k, "spatialValue2"))
	})
	b.addFunction(types.Geometry, "SpatialConvexHull", p(types.Geometry, "geometryValue"))
	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		for _, name := range []string{"SpatialIntersection", "SpatialUnion", "SpatialDifference", "SpatialSymmetricDifference"} {
			b.addFunction(k, name, p(k, "spatialValue1"), p(k, "spatialValue2"))
		}
	})

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Int32, "SpatialElementCount", p(k, "spatialValue"))
		b.addFunction(k, "SpatialElementAt", p(k, "spatialValue"), p(types.Int32, "indexValue"))
	})

	b.addFunction(types.Double, "XCoordinate", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Double, "YCoordinate", p(types.Geometry, "geometryValue"))
	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Double, "Elevation", p(k, "spatialValue"))
		b.addFunction(types.Double, "Measure", p(k, "spatialValue"))
	})
	b.addFunction(types.Double, "Latitude", p(types.Geography, "geographyValue"))
	b.addFunction(types.Double, "Longitude", p(types.Geography, "geographyValue"))

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Double, "SpatialLength", p(k, "spatialValue"))
		b.addFunction(k, "StartPoint", p(k, "spatialValue"))
		b.addFunction(k, "EndPoint", p(k, "spatialValue"))
		b.addFunction(types.Boolean, "IsClosedSpatial", p(k, "spatialValue"))
	})
	b.addFunction(types.Boolean, "IsRing", p(types.Geometry, "geometryValue"))

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Int32, "PointCount", p(k, "spatialValue"))
		b.addFunction(k, "PointAt", p(k, "spatialValue"), p(types.Int32, "indexValue"))
	})

	forTypes(spatialBaseKinds, func(k types.PrimitiveTypeKind) {
		b.addFunction(types.Double, "Area", p(k, "spatialValue"))
	})
	b.addFunction(types.Geometry, "Centroid", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Geometry, "PointOnSurface", p(types.Geometry, "geometryValue"))

	b.addFunction(types.Geometry, "ExteriorRing", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Int32, "InteriorRingCount", p(types.Geometry, "geometryValue"))
	b.addFunction(types.Geometry, "InteriorRingAt", p(types.Geometry, "geometryValue"), p(types.Int32, "indexValue"))
}

// declareSpatialConstructors declares the well-known text, well-known
// binary and GML constructors of one family.
func declareSpatialConstructors(b *functionBuilder, f spatialFamily) {
	b.addFunction(f.base, f.prefix+"FromText", p(types.String, "wellKnownText"))
	b.addFunction(f.base, f.prefix+"FromText", p(types.String, "wellKnownText"), p(types.Int32, "coordinateSystemId"))
	for _, sub := range f.subtypes {
		b.addFunction(sub.kind, f.prefix+sub.suffix+"FromText",
			p(types.String, "wellKnownText"), p(types.Int32, "coordinateSystemId"))
	}

	b.addFunction(f.base, f.prefix+"FromBinary", p(types.Binary, "wellKnownBinaryValue"))
	b.addFunction(f.base, f.prefix+"FromBinary", p(types.Binary, "wellKnownBinaryValue"), p(types.Int32, "coordinateSystemId"))
	for _, sub := range f.subtypes {
		b.addFunction(sub.kind, f.prefix+sub.suffix+"FromBinary",
			p(types.Binary, "wellKnownBinaryValue"), p(types.Int32, "coordinateSystemId"))
	}

	b.addFunction(f.base, f.prefix+"FromGml", p(types.String, "gmlValue"))
	b.addFunction(f.base, f.prefix+"FromGml", p(types.String, "gmlValue"), p(types.Int32, "coordinateSystemId"))
}
