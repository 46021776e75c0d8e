package manifest

import (
	"fmt"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// param declares one input parameter of a function signature.
type param struct {
	kind types.PrimitiveTypeKind
	name string
}

func p(kind types.PrimitiveTypeKind, name string) param {
	return param{kind: kind, name: name}
}

// functionBuilder accumulates canonical function signatures in declaration
// order. The first registration error is kept and reported by functions;
// later registrations are ignored once an error is recorded.
type functionBuilder struct {
	prims     *primitiveCatalog
	namespace string
	fns       []*types.EdmFunction
	seen      map[string]bool
	err       error
}

func newFunctionBuilder(prims *primitiveCatalog) *functionBuilder {
	return &functionBuilder{
		prims:     prims,
		namespace: types.EdmNamespace,
		seen:      make(map[string]bool),
	}
}

func (b *functionBuilder) primitive(kind types.PrimitiveTypeKind) *types.PrimitiveType {
	return b.prims.byKind[kind]
}

// addFunction registers a scalar function.
func (b *functionBuilder) addFunction(returns types.PrimitiveTypeKind, name string, params ...param) {
	formal := make([]types.FunctionParameter, len(params))
	for i, prm := range params {
		formal[i] = types.FunctionParameter{
			Name:  prm.name,
			Usage: types.UsageOf(b.primitive(prm.kind)),
			Mode:  types.ParameterIn,
		}
	}
	b.add(types.NewEdmFunction(b.namespace, name, formal, types.UsageOf(b.primitive(returns)),
		types.FunctionOptions{BuiltIn: true}))
}

// addAggregate registers an aggregate whose single parameter is a
// collection of element.
func (b *functionBuilder) addAggregate(returns types.PrimitiveTypeKind, name string, element types.PrimitiveTypeKind) {
	formal := []types.FunctionParameter{{
		Name:  "collection",
		Usage: types.CollectionOf(b.primitive(element)),
		Mode:  types.ParameterIn,
	}}
	b.add(types.NewEdmFunction(b.namespace, name, formal, types.UsageOf(b.primitive(returns)),
		types.FunctionOptions{Aggregate: true, BuiltIn: true}))
}

func (b *functionBuilder) add(fn *types.EdmFunction) {
	if b.err != nil {
		return
	}
	sig := fn.Signature()
	if b.seen[sig] {
		b.err = fmt.Errorf("%s: %w", sig, types.ErrDuplicateFunction)
		return
	}
	b.seen[sig] = true
	b.fns = append(b.fns, fn)
}

// forTypes invokes declare once per kind, in order.
func forTypes(kinds []types.PrimitiveTypeKind, declare func(types.PrimitiveTypeKind)) {
	for _, kind := range kinds {
		declare(kind)
	}
}

// forAllBaseKinds invokes declare for every kind except the strong spatial
// kinds. The abstract Geography and Geometry kinds are included.
func forAllBaseKinds(declare func(types.PrimitiveTypeKind)) {
	for _, kind := range types.AllKinds() {
		if kind.IsStrongSpatial() {
			continue
		}
		declare(kind)
	}
}

// functions returns the registered signatures in declaration order, or the
// first registration error.
func (b *functionBuilder) functions() ([]*types.EdmFunction, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.fns, nil
}
