package manifest

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

type promotionCatalog struct {
	byKind [types.NumPrimitiveKinds][]*types.PrimitiveType
}

// promotionKinds lists, per kind, the kinds it may be implicitly widened to.
// Order encodes preference: the narrowest safe widening comes first, and
// every list starts with the kind itself.
func promotionKinds(kind types.PrimitiveTypeKind) []types.PrimitiveTypeKind {
	switch kind {
	case types.Byte:
		return []types.PrimitiveTypeKind{types.Byte, types.Int16, types.Int32, types.Int64, types.Decimal, types.Single, types.Double}
	case types.Int16:
		return []types.PrimitiveTypeKind{types.Int16, types.Int32, types.Int64, types.Decimal, types.Single, types.Double}
	case types.Int32:
		return []types.PrimitiveTypeKind{types.Int32, types.Int64, types.Decimal, types.Single, types.Double}
	case types.Int64:
		return []types.PrimitiveTypeKind{types.Int64, types.Decimal, types.Single, types.Double}
	case types.Single:
		return []types.PrimitiveTypeKind{types.Single, types.Double}
	case types.Binary, types.Boolean, types.DateTime, types.Decimal, types.Double, types.Guid,
		types.SByte, types.String, types.Time, types.DateTimeOffset:
		return []types.PrimitiveTypeKind{kind}
	case types.Geometry, types.Geography:
		return []types.PrimitiveTypeKind{kind}
	case types.GeometryPoint, types.GeometryLineString, types.GeometryPolygon, types.GeometryMultiPoint,
		types.GeometryMultiLineString, types.GeometryMultiPolygon, types.GeometryCollection:
		return []types.PrimitiveTypeKind{kind, types.Geometry}
	case types.GeographyPoint, types.GeographyLineString, types.GeographyPolygon, types.GeographyMultiPoint,
		types.GeographyMultiLineString, types.GeographyMultiPolygon, types.GeographyCollection:
		return []types.PrimitiveTypeKind{kind, types.Geography}
	default:
		panic(fmt.Errorf("manifest: no promotion list for %s: %w", kind, types.ErrUnknownKind))
	}
}

func (m *Manifest) buildPromotionCatalog() (*promotionCatalog, int, error) {
	return buildPromotions(m.primitives(), promotionKinds)
}

// buildPromotions resolves the declared kind lists against the primitive
// catalog, validating each list once.
func buildPromotions(prims *primitiveCatalog, declared func(types.PrimitiveTypeKind) []types.PrimitiveTypeKind) (*promotionCatalog, int, error) {
	var lists [types.NumPrimitiveKinds][]types.PrimitiveTypeKind
	for _, kind := range types.AllKinds() {
		targets, err := validatePromotionList(kind, declared(kind))
		if err != nil {
			return nil, 0, err
		}
		lists[kind] = targets
	}

	if err := checkAcyclic(lists[:]); err != nil {
		return nil, 0, err
	}

	c := &promotionCatalog{}
	entries := 0
	for kind, targets := range lists {
		resolved := make([]*types.PrimitiveType, len(targets))
		for i, target := range targets {
			resolved[i] = prims.byKind[target]
		}
		c.byKind[kind] = resolved
		entries += len(resolved)
	}
	return c, entries, nil
}

// checkAcyclic reports a cycle in the promotion graph, ignoring the
// reflexive first entry of each list.
func checkAcyclic(lists [][]types.PrimitiveTypeKind) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(lists))
	var visit func(kind types.PrimitiveTypeKind) error
	visit = func(kind types.PrimitiveTypeKind) error {
		switch state[kind] {
		case visiting:
			return fmt.Errorf("%s is reachable from itself: %w", kind, types.ErrPromotionCycle)
		case done:
			return nil
		}
		state[kind] = visiting
		for _, target := range lists[kind][1:] {
			if err := visit(target); err != nil {
				return err
			}
		}
		state[kind] = done
		return nil
	}
	for kind := range lists {
		if err := visit(types.PrimitiveTypeKind(kind)); err != nil {
			return err
		}
	}
	return nil
}

func validatePromotionList(kind types.PrimitiveTypeKind, targets []types.PrimitiveTypeKind) ([]types.PrimitiveTypeKind, error) {
	if len(targets) == 0 || targets[0] != kind {
		return nil, fmt.Errorf("%s: %w", kind, types.ErrPromotionNotReflexive)
	}
	seen := make(map[types.PrimitiveTypeKind]bool, len(targets))
	for _, target := range targets {
		if !target.Valid() {
			return nil, fmt.Errorf("%s promotes to %s: %w", kind, target, types.ErrUnknownPromotionTarget)
		}
		if seen[target] {
			return nil, fmt.Errorf("%s lists %s twice: %w", kind, target, types.ErrPromotionCycle)
		}
		seen[target] = true
	}
	return targets, nil
}

// PromotionTypes returns the types t may be implicitly widened to, t itself
// first, in order of preference. The result is a fresh copy and never empty;
// its elements are the published descriptors.
// Panics if t is nil or of an unknown kind.
func (m *Manifest) PromotionTypes(t *types.PrimitiveType) []*types.PrimitiveType {
	mustNotNil(t)
	mustValidKind(t.Kind())
	return slices.Clone(m.promotions(t.Kind()))
}

func (m *Manifest) promotions(kind types.PrimitiveTypeKind) []*types.PrimitiveType {
	return m.promotionCell.get(m.log, m.buildPromotionCatalog).byKind[kind]
}
