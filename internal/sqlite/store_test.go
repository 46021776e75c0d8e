package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

func newTestStore(t *testing.T) *StoreManifest {
	t.Helper()
	return NewStoreManifest(manifest.New(), zaptest.NewLogger(t))
}

func TestMapStoreType(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		declared string
		kind     types.PrimitiveTypeKind
		facets   map[string]any
	}{
		{"INTEGER", types.Int64, map[string]any{}},
		{"int", types.Int32, map[string]any{}},
		{"SMALLINT", types.Int16, map[string]any{}},
		{"tinyint", types.Byte, map[string]any{}},
		{"REAL", types.Double, map[string]any{}},
		{"double  precision", types.Double, map[string]any{}},
		{"BOOLEAN", types.Boolean, map[string]any{}},
		{"UUID", types.Guid, map[string]any{}},
		{"TEXT", types.String, map[string]any{
			types.FacetUnicode: true, types.FacetFixedLength: false,
		}},
		{"VARCHAR(50)", types.String, map[string]any{
			types.FacetMaxLength: int32(50), types.FacetUnicode: false, types.FacetFixedLength: false,
		}},
		{"nvarchar(max)", types.String, map[string]any{
			types.FacetUnicode: true, types.FacetFixedLength: false,
		}},
		{"NCHAR(10)", types.String, map[string]any{
			types.FacetMaxLength: int32(10), types.FacetUnicode: true, types.FacetFixedLength: true,
		}},
		{"BLOB", types.Binary, map[string]any{types.FacetFixedLength: false}},
		{"BINARY(16)", types.Binary, map[string]any{
			types.FacetMaxLength: int32(16), types.FacetFixedLength: true,
		}},
		{"DECIMAL(18, 2)", types.Decimal, map[string]any{
			types.FacetPrecision: uint8(18), types.FacetScale: uint8(2),
		}},
		{"numeric", types.Decimal, map[string]any{}},
		{"DATETIME", types.DateTime, map[string]any{types.FacetPrecision: uint8(7)}},
		{"timestamp(3)", types.DateTime, map[string]any{types.FacetPrecision: uint8(3)}},
		{"TIME", types.Time, map[string]any{types.FacetPrecision: uint8(7)}},
		{"DATETIMEOFFSET", types.DateTimeOffset, map[string]any{types.FacetPrecision: uint8(7)}},
		{"GEOGRAPHY", types.Geography, map[string]any{
			types.FacetSRID: int32(4326), types.FacetIsStrict: true,
		}},
		{"POINT(3857)", types.GeometryPoint, map[string]any{
			types.FacetSRID: int32(3857), types.FacetIsStrict: true,
		}},
		{"geometrycollection", types.GeometryCollection, map[string]any{
			types.FacetSRID: int32(0), types.FacetIsStrict: true,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			usage, err := s.MapStoreType(tt.declared)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, usage.Kind())
			assert.Same(t, s.Manifest().PrimitiveType(tt.kind), usage.Type())
			assert.Equal(t, tt.facets, usage.Facets())
		})
	}
}

func TestMapStoreType_Errors(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		declared string
		want     error
	}{
		{"", types.ErrUnmappableStoreType},
		{"   ", types.ErrUnmappableStoreType},
		{"MONEY", types.ErrUnmappableStoreType},
		{"VARCHAR(10", types.ErrUnmappableStoreType},
		{"INTEGER(4)", types.ErrUnmappableStoreType},
		{"DECIMAL(1,2,3)", types.ErrUnmappableStoreType},
		{"VARCHAR(abc)", types.ErrFacetValueType},
		{"DECIMAL(0,0)", types.ErrFacetOutOfRange},
		{"DATETIME(256)", types.ErrFacetOutOfRange},
		{"VARCHAR(-1)", types.ErrFacetOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			_, err := s.MapStoreType(tt.declared)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStoreTypes(t *testing.T) {
	s := newTestStore(t)

	all := s.StoreTypes()
	assert.Len(t, all, len(StoreTypeNames()))
	assert.Equal(t, types.Int64, all["integer"].Kind())
	assert.Equal(t, types.Geography, all["geography"].Kind())
	assert.Empty(t, all["varchar"].Facets())

	names := StoreTypeNames()
	assert.IsIncreasing(t, names)
}

func TestIntrospect(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE orders (
		id INTEGER PRIMARY KEY,
		customer VARCHAR(64) NOT NULL,
		total DECIMAL(18,2),
		placed_at DATETIME,
		location GEOGRAPHY
	)`)
	require.NoError(t, err)

	s := newTestStore(t)
	cols, err := s.Introspect(ctx, db, "orders")
	require.NoError(t, err)
	require.Len(t, cols, 5)

	assert.Equal(t, "id", cols[0].Name)
	assert.True(t, cols[0].PrimaryKey)
	assert.Equal(t, types.Int64, cols[0].Usage.Kind())
	assert.Equal(t, "Edm.Int64", cols[0].Type)

	assert.Equal(t, "customer", cols[1].Name)
	assert.True(t, cols[1].NotNull)
	assert.Equal(t, "Edm.String(FixedLength=false,MaxLength=64,Unicode=false)", cols[1].Type)

	assert.Equal(t, "Edm.Decimal(Precision=18,Scale=2)", cols[2].Type)
	assert.Equal(t, "Edm.DateTime(Precision=7)", cols[3].Type)
	assert.Equal(t, "Edm.Geography(IsStrict=true,SRID=4326)", cols[4].Type)
}

func TestIntrospect_UnmappedColumn(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE ledger (id INTEGER, amount MONEY, note)`)
	require.NoError(t, err)

	cols, err := newTestStore(t).Introspect(ctx, db, "ledger")
	assert.ErrorIs(t, err, types.ErrUnmappableStoreType)
	require.Len(t, cols, 3)
	assert.Equal(t, "Edm.Int64", cols[0].Type)
	assert.Empty(t, cols[1].Type)
	assert.Empty(t, cols[2].Type)
}

func TestIntrospect_MissingTable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = newTestStore(t).Introspect(ctx, db, "nope")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}
