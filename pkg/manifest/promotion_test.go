package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

func promotionNames(m *Manifest, kind types.PrimitiveTypeKind) []string {
	var names []string
	for _, pt := range m.PromotionTypes(m.PrimitiveType(kind)) {
		names = append(names, pt.Name())
	}
	return names
}

func TestPromotionTypes(t *testing.T) {
	m := New()

	tests := []struct {
		kind types.PrimitiveTypeKind
		want []string
	}{
		{types.Byte, []string{"Byte", "Int16", "Int32", "Int64", "Decimal", "Single", "Double"}},
		{types.Int16, []string{"Int16", "Int32", "Int64", "Decimal", "Single", "Double"}},
		{types.Int32, []string{"Int32", "Int64", "Decimal", "Single", "Double"}},
		{types.Int64, []string{"Int64", "Decimal", "Single", "Double"}},
		{types.Single, []string{"Single", "Double"}},
		{types.Double, []string{"Double"}},
		{types.Decimal, []string{"Decimal"}},
		{types.SByte, []string{"SByte"}},
		{types.String, []string{"String"}},
		{types.Geography, []string{"Geography"}},
		{types.GeographyPoint, []string{"GeographyPoint", "Geography"}},
		{types.GeometryMultiPolygon, []string{"GeometryMultiPolygon", "Geometry"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, promotionNames(m, tt.kind))
		})
	}
}

func TestPromotionTypes_ReflexiveAndCanonical(t *testing.T) {
	m := New()
	for _, pt := range m.PrimitiveTypes() {
		promos := m.PromotionTypes(pt)
		require.NotEmpty(t, promos, pt.Name())
		assert.Same(t, pt, promos[0], "%s must promote to itself first", pt.Name())
		for _, target := range promos {
			assert.Same(t, m.PrimitiveType(target.Kind()), target)
		}
	}
	assert.Equal(t, promotionNames(m, types.Int16), promotionNames(Default(), types.Int16))
	assert.Same(t, Default().PromotionTypes(GetPrimitiveType(types.Byte))[1],
		GetPromotionTypes(GetPrimitiveType(types.Byte))[1])
}

func TestPromotionTypes_CallerCannotMutateCatalog(t *testing.T) {
	m := New()
	b := m.PrimitiveType(types.Byte)

	p := m.PromotionTypes(b)
	p[1] = m.PrimitiveType(types.String)
	p[0] = nil

	again := m.PromotionTypes(b)
	assert.Same(t, b, again[0])
	assert.Same(t, m.PrimitiveType(types.Int16), again[1])
	assert.Equal(t, []string{"Byte", "Int16", "Int32", "Int64", "Decimal", "Single", "Double"}, promotionNames(m, types.Byte))
}

func TestPromotionTypes_PanicsOnNil(t *testing.T) {
	assertPanicsWith(t, types.ErrNilType, func() { New().PromotionTypes(nil) })
}

func TestBuildPromotions_ConfigurationErrors(t *testing.T) {
	prims, _, err := buildPrimitiveCatalog()
	require.NoError(t, err)

	override := func(over map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind) func(types.PrimitiveTypeKind) []types.PrimitiveTypeKind {
		return func(k types.PrimitiveTypeKind) []types.PrimitiveTypeKind {
			if list, ok := over[k]; ok {
				return list
			}
			return promotionKinds(k)
		}
	}

	tests := []struct {
		name string
		over map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind
		want error
	}{
		{
			name: "missing self entry",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{types.Int32: {types.Int64}},
			want: types.ErrPromotionNotReflexive,
		},
		{
			name: "empty list",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{types.Guid: {}},
			want: types.ErrPromotionNotReflexive,
		},
		{
			name: "unknown target",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{types.Single: {types.Single, types.PrimitiveTypeKind(99)}},
			want: types.ErrUnknownPromotionTarget,
		},
		{
			name: "repeated target",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{types.Single: {types.Single, types.Double, types.Double}},
			want: types.ErrPromotionCycle,
		},
		{
			name: "two-kind cycle",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{types.Double: {types.Double, types.Single}},
			want: types.ErrPromotionCycle,
		},
		{
			name: "three-kind cycle",
			over: map[types.PrimitiveTypeKind][]types.PrimitiveTypeKind{
				types.Guid:   {types.Guid, types.String},
				types.String: {types.String, types.Binary},
				types.Binary: {types.Binary, types.Guid},
			},
			want: types.ErrPromotionCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildPromotions(prims, override(tt.over))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, entries, err := buildPromotions(prims, promotionKinds)
	require.NoError(t, err)
	assert.Positive(t, entries)
}
