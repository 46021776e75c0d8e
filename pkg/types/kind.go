package types

import (
	"strconv"
	"strings"
)

// PrimitiveTypeKind identifies one elementary storable type of the
// conceptual model. The member set and ordinals are a versioned contract:
// new kinds are appended, never reordered.
type PrimitiveTypeKind uint8

// Primitive type kinds, in ordinal order.
const (
	Binary PrimitiveTypeKind = iota
	Boolean
	Byte
	DateTime
	Decimal
	Double
	Guid
	Single
	SByte
	Int16
	Int32
	Int64
	String
	Time
	DateTimeOffset
	Geometry
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryMultiPoint
	GeometryMultiLineString
	GeometryMultiPolygon
	GeometryCollection
	Geography
	GeographyPoint
	GeographyLineString
	GeographyPolygon
	GeographyMultiPoint
	GeographyMultiLineString
	GeographyMultiPolygon
	GeographyCollection
)

// NumPrimitiveKinds is the number of members of PrimitiveTypeKind.
const NumPrimitiveKinds = int(GeographyCollection) + 1

// EdmNamespace is the namespace of every primitive type and canonical function.
const EdmNamespace = "Edm"

var kindNames = [NumPrimitiveKinds]string{
	Binary:                   "Binary",
	Boolean:                  "Boolean",
	Byte:                     "Byte",
	DateTime:                 "DateTime",
	Decimal:                  "Decimal",
	Double:                   "Double",
	Guid:                     "Guid",
	Single:                   "Single",
	SByte:                    "SByte",
	Int16:                    "Int16",
	Int32:                    "Int32",
	Int64:                    "Int64",
	String:                   "String",
	Time:                     "Time",
	DateTimeOffset:           "DateTimeOffset",
	Geometry:                 "Geometry",
	GeometryPoint:            "GeometryPoint",
	GeometryLineString:       "GeometryLineString",
	GeometryPolygon:          "GeometryPolygon",
	GeometryMultiPoint:       "GeometryMultiPoint",
	GeometryMultiLineString:  "GeometryMultiLineString",
	GeometryMultiPolygon:     "GeometryMultiPolygon",
	GeometryCollection:       "GeometryCollection",
	Geography:                "Geography",
	GeographyPoint:           "GeographyPoint",
	GeographyLineString:      "GeographyLineString",
	GeographyPolygon:         "GeographyPolygon",
	GeographyMultiPoint:      "GeographyMultiPoint",
	GeographyMultiLineString: "GeographyMultiLineString",
	GeographyMultiPolygon:    "GeographyMultiPolygon",
	GeographyCollection:      "GeographyCollection",
}

// kindsByName maps lower-cased names to kinds for ParseKind.
var kindsByName = func() map[string]PrimitiveTypeKind {
	m := make(map[string]PrimitiveTypeKind, NumPrimitiveKinds)
	for i, name := range kindNames {
		m[strings.ToLower(name)] = PrimitiveTypeKind(i)
	}
	return m
}()

// String returns the unqualified EDM name of the kind.
func (k PrimitiveTypeKind) String() string {
	if !k.Valid() {
		return "PrimitiveTypeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid reports whether k is a member of the enumeration.
func (k PrimitiveTypeKind) Valid() bool {
	return int(k) < NumPrimitiveKinds
}

// IsSpatial reports whether k is Geography, Geometry, or one of their subtypes.
func (k PrimitiveTypeKind) IsSpatial() bool {
	return k.IsGeometry() || k.IsGeography()
}

// IsGeometry reports whether k belongs to the geometry family.
func (k PrimitiveTypeKind) IsGeometry() bool {
	return k >= Geometry && k <= GeometryCollection
}

// IsGeography reports whether k belongs to the geography family.
func (k PrimitiveTypeKind) IsGeography() bool {
	return k >= Geography && k <= GeographyCollection
}

// IsStrongSpatial reports whether k is a concrete spatial subtype such as
// GeographyPoint, as opposed to the abstract Geography or Geometry kind.
func (k PrimitiveTypeKind) IsStrongSpatial() bool {
	return k.IsSpatial() && k != Geometry && k != Geography
}

// SpatialBase returns Geography or Geometry for spatial kinds. The second
// result is false for non-spatial kinds.
func (k PrimitiveTypeKind) SpatialBase() (PrimitiveTypeKind, bool) {
	switch {
	case k.IsGeometry():
		return Geometry, true
	case k.IsGeography():
		return Geography, true
	default:
		return k, false
	}
}

// AllKinds returns every kind in ordinal order.
func AllKinds() []PrimitiveTypeKind {
	kinds := make([]PrimitiveTypeKind, NumPrimitiveKinds)
	for i := range kinds {
		kinds[i] = PrimitiveTypeKind(i)
	}
	return kinds
}

// ParseKind resolves a kind name. Matching ignores case and accepts the
// namespace-qualified form ("Edm.Int32").
// Returns ErrUnknownKind if the name is not a member of the enumeration.
func ParseKind(name string) (PrimitiveTypeKind, error) {
	local := strings.TrimSpace(name)
	if ns, rest, ok := strings.Cut(local, "."); ok && strings.EqualFold(ns, EdmNamespace) {
		local = rest
	}
	if k, ok := kindsByName[strings.ToLower(local)]; ok {
		return k, nil
	}
	return 0, ErrUnknownKind
}

// MustParseKind is like ParseKind but panics on unknown names.
func MustParseKind(name string) PrimitiveTypeKind {
	k, err := ParseKind(name)
	if err != nil {
		panic("types: unknown primitive type kind " + strconv.Quote(name))
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k PrimitiveTypeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PrimitiveTypeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
