// Package binder resolves common operand types and canonical function
// overloads against a type-system manifest, the way an expression binder
// does for binary operators and built-in function calls.
package binder

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// Argument is the static type of one actual argument of a function call.
type Argument struct {
	Kind       types.PrimitiveTypeKind
	Collection bool
}

// Scalar returns a scalar argument of kind.
func Scalar(kind types.PrimitiveTypeKind) Argument {
	return Argument{Kind: kind}
}

// CollectionOf returns a collection argument whose elements are of kind.
func CollectionOf(kind types.PrimitiveTypeKind) Argument {
	return Argument{Kind: kind, Collection: true}
}

func (a Argument) String() string {
	if a.Collection {
		return "Collection(" + a.Kind.String() + ")"
	}
	return a.Kind.String()
}

const collectionPrefix = "Collection("

// ParseArgument parses "Int32", "Edm.Int32" or "Collection(Int32)". Names
// and the Collection keyword are matched case-insensitively.
func ParseArgument(s string) (Argument, error) {
	s = strings.TrimSpace(s)
	if len(s) >= len(collectionPrefix) && strings.EqualFold(s[:len(collectionPrefix)], collectionPrefix) {
		inner, ok := strings.CutSuffix(s[len(collectionPrefix):], ")")
		if !ok {
			return Argument{}, fmt.Errorf("argument %q: unbalanced parenthesis: %w", s, types.ErrUnknownKind)
		}
		kind, err := types.ParseKind(inner)
		if err != nil {
			return Argument{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return CollectionOf(kind), nil
	}
	kind, err := types.ParseKind(s)
	if err != nil {
		return Argument{}, fmt.Errorf("argument %q: %w", s, err)
	}
	return Scalar(kind), nil
}

// CommonType returns the narrowest type both a and b can be promoted to:
// the first entry of a's promotion list that also appears in b's.
// Returns ErrNoCommonType when the lists do not meet.
func CommonType(m *manifest.Manifest, a, b *types.PrimitiveType) (*types.PrimitiveType, error) {
	bTargets := m.PromotionTypes(b)
	for _, candidate := range m.PromotionTypes(a) {
		for _, t := range bTargets {
			if t.Kind() == candidate.Kind() {
				return m.PrimitiveType(candidate.Kind()), nil
			}
		}
	}
	return nil, fmt.Errorf("%s and %s: %w", a, b, types.ErrNoCommonType)
}

// promotionDistance returns the position of target in from's promotion
// list, or -1 when from cannot be promoted to target.
func promotionDistance(m *manifest.Manifest, from, target types.PrimitiveTypeKind) int {
	for i, t := range m.PromotionTypes(m.PrimitiveType(from)) {
		if t.Kind() == target {
			return i
		}
	}
	return -1
}

// ResolveFunction selects the canonical overload of name applicable to
// args. Each argument must promote to its parameter's type; among
// applicable overloads the one with the smallest total promotion distance
// wins, and ties go to the overload declared first.
// Returns ErrNoMatchingOverload when no overload applies.
func ResolveFunction(m *manifest.Manifest, name string, args ...Argument) (*types.EdmFunction, error) {
	var (
		best     *types.EdmFunction
		bestCost = -1
	)
	for _, fn := range m.FunctionsNamed(name) {
		cost, ok := overloadCost(m, fn, args)
		if !ok {
			continue
		}
		if bestCost < 0 || cost < bestCost {
			best, bestCost = fn, cost
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%s(%s): %w", name, joinArgs(args), types.ErrNoMatchingOverload)
	}
	return best, nil
}

func overloadCost(m *manifest.Manifest, fn *types.EdmFunction, args []Argument) (int, bool) {
	if fn.NumParameters() != len(args) {
		return 0, false
	}
	cost := 0
	for i, arg := range args {
		usage := fn.Parameter(i).Usage
		if usage.IsCollection() != arg.Collection {
			return 0, false
		}
		d := promotionDistance(m, arg.Kind, usage.Kind())
		if d < 0 {
			return 0, false
		}
		cost += d
	}
	return cost, true
}

func joinArgs(args []Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
