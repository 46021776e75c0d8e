package manifest

import "github.com/mesh-intelligence/edmtypes/pkg/types"

// primitiveCatalog holds one canonical descriptor per kind, indexed by
// ordinal.
type primitiveCatalog struct {
	byKind [types.NumPrimitiveKinds]*types.PrimitiveType
	all    []*types.PrimitiveType
}

func buildPrimitiveCatalog() (*primitiveCatalog, int, error) {
	c := &primitiveCatalog{}
	c.all = make([]*types.PrimitiveType, 0, types.NumPrimitiveKinds)
	for _, kind := range types.AllKinds() {
		t := types.NewPrimitiveType(kind)
		c.byKind[kind] = t
		c.all = append(c.all, t)
	}
	return c, len(c.all), nil
}

// PrimitiveType returns the canonical descriptor for kind. The same pointer
// is returned for the same kind for the lifetime of m.
// Panics with ErrUnknownKind if kind is not a member of the enumeration.
func (m *Manifest) PrimitiveType(kind types.PrimitiveTypeKind) *types.PrimitiveType {
	mustValidKind(kind)
	return m.primitives().byKind[kind]
}

// PrimitiveTypes returns every canonical descriptor in ordinal order. The
// returned slice is shared and must not be modified.
func (m *Manifest) PrimitiveTypes() []*types.PrimitiveType {
	return m.primitives().all
}

func (m *Manifest) primitives() *primitiveCatalog {
	return m.primitiveCell.get(m.log, buildPrimitiveCatalog)
}
