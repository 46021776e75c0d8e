package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Enumeration(t *testing.T) {
	all := AllKinds()
	require.Len(t, all, NumPrimitiveKinds)
	assert.Equal(t, 31, NumPrimitiveKinds)

	seen := map[string]bool{}
	for i, k := range all {
		assert.Equal(t, PrimitiveTypeKind(i), k)
		assert.True(t, k.Valid())
		assert.NotEmpty(t, k.String())
		assert.False(t, seen[k.String()], "duplicate name %s", k)
		seen[k.String()] = true
	}
	assert.False(t, PrimitiveTypeKind(NumPrimitiveKinds).Valid())
	assert.Equal(t, "PrimitiveTypeKind(31)", PrimitiveTypeKind(31).String())
}

func TestKind_Ordinals(t *testing.T) {
	// Ordinals are part of the published contract.
	assert.EqualValues(t, 0, Binary)
	assert.EqualValues(t, 12, String)
	assert.EqualValues(t, 14, DateTimeOffset)
	assert.EqualValues(t, 15, Geometry)
	assert.EqualValues(t, 23, Geography)
	assert.EqualValues(t, 30, GeographyCollection)
}

func TestKind_SpatialClassification(t *testing.T) {
	tests := []struct {
		kind      PrimitiveTypeKind
		spatial   bool
		geometry  bool
		geography bool
		strong    bool
		base      PrimitiveTypeKind
	}{
		{Int32, false, false, false, false, Int32},
		{String, false, false, false, false, String},
		{Geometry, true, true, false, false, Geometry},
		{GeometryPoint, true, true, false, true, Geometry},
		{GeometryCollection, true, true, false, true, Geometry},
		{Geography, true, false, true, false, Geography},
		{GeographyMultiPolygon, true, false, true, true, Geography},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.spatial, tt.kind.IsSpatial())
			assert.Equal(t, tt.geometry, tt.kind.IsGeometry())
			assert.Equal(t, tt.geography, tt.kind.IsGeography())
			assert.Equal(t, tt.strong, tt.kind.IsStrongSpatial())
			base, ok := tt.kind.SpatialBase()
			assert.Equal(t, tt.spatial, ok)
			assert.Equal(t, tt.base, base)
		})
	}

	strong := 0
	for _, k := range AllKinds() {
		if k.IsStrongSpatial() {
			strong++
		}
	}
	assert.Equal(t, 14, strong)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want PrimitiveTypeKind
	}{
		{"Int32", Int32},
		{"int32", Int32},
		{"Edm.Int32", Int32},
		{"edm.datetimeoffset", DateTimeOffset},
		{"  GeographyPoint ", GeographyPoint},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "Money", "Sys.Int32", "Edm."} {
		_, err := ParseKind(bad)
		assert.ErrorIs(t, err, ErrUnknownKind, bad)
	}

	assert.Equal(t, Guid, MustParseKind("Guid"))
	assert.Panics(t, func() { MustParseKind("Money") })
}

func TestKind_TextMarshaling(t *testing.T) {
	data, err := json.Marshal(map[string]PrimitiveTypeKind{"k": GeometryPolygon})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"GeometryPolygon"}`, string(data))

	var back map[string]PrimitiveTypeKind
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, GeometryPolygon, back["k"])

	_, err = PrimitiveTypeKind(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKind)

	var k PrimitiveTypeKind
	assert.ErrorIs(t, k.UnmarshalText([]byte("Money")), ErrUnknownKind)
}

func TestNewPrimitiveType(t *testing.T) {
	pt := NewPrimitiveType(Decimal)
	assert.Equal(t, Decimal, pt.Kind())
	assert.Equal(t, "Decimal", pt.Name())
	assert.Equal(t, "Edm", pt.Namespace())
	assert.Equal(t, "Edm.Decimal", pt.FullName())
	assert.Equal(t, "Edm.Decimal", pt.String())
	assert.NotSame(t, pt, NewPrimitiveType(Decimal))

	var nilType *PrimitiveType
	assert.Equal(t, "<nil>", nilType.String())
}
