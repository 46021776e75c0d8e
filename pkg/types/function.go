package types

import (
	"slices"
	"strings"
)

// ParameterMode is the direction of a function parameter.
type ParameterMode uint8

// Parameter modes.
const (
	ParameterIn ParameterMode = iota
	ParameterOut
	ParameterReturn
)

func (m ParameterMode) String() string {
	switch m {
	case ParameterIn:
		return "in"
	case ParameterOut:
		return "out"
	case ParameterReturn:
		return "return"
	default:
		return "unknown"
	}
}

// ReturnParameterName is the name given to every function's return parameter.
const ReturnParameterName = "ReturnType"

// FunctionParameter is one formal parameter of an EdmFunction.
type FunctionParameter struct {
	Name  string
	Usage TypeUsage
	Mode  ParameterMode
}

// EdmFunction is a built-in function signature usable in query expressions.
// Values are immutable after construction.
type EdmFunction struct {
	name        string
	namespace   string
	params      []FunctionParameter
	ret         FunctionParameter
	isAggregate bool
	isBuiltIn   bool
}

// FunctionOptions carries the flags of a function signature.
type FunctionOptions struct {
	Aggregate bool
	BuiltIn   bool
}

// NewEdmFunction creates a function in namespace with the given parameters
// and return usage. The parameter slice is copied.
func NewEdmFunction(namespace, name string, params []FunctionParameter, returns TypeUsage, opts FunctionOptions) *EdmFunction {
	return &EdmFunction{
		name:        name,
		namespace:   namespace,
		params:      slices.Clone(params),
		ret:         FunctionParameter{Name: ReturnParameterName, Usage: returns, Mode: ParameterReturn},
		isAggregate: opts.Aggregate,
		isBuiltIn:   opts.BuiltIn,
	}
}

// Name returns the unqualified function name.
func (f *EdmFunction) Name() string { return f.name }

// Namespace returns the function namespace.
func (f *EdmFunction) Namespace() string { return f.namespace }

// FullName returns the namespace-qualified function name.
func (f *EdmFunction) FullName() string { return f.namespace + "." + f.name }

// Parameters returns a copy of the ordered input parameters.
func (f *EdmFunction) Parameters() []FunctionParameter { return slices.Clone(f.params) }

// NumParameters returns the number of input parameters.
func (f *EdmFunction) NumParameters() int { return len(f.params) }

// Parameter returns the i-th input parameter.
func (f *EdmFunction) Parameter(i int) FunctionParameter { return f.params[i] }

// ReturnParameter returns the return parameter.
func (f *EdmFunction) ReturnParameter() FunctionParameter { return f.ret }

// IsAggregate reports whether the function aggregates a collection.
func (f *EdmFunction) IsAggregate() bool { return f.isAggregate }

// IsBuiltIn reports whether the function is a canonical built-in.
func (f *EdmFunction) IsBuiltIn() bool { return f.isBuiltIn }

// ParameterKinds returns the kinds of the input parameters in order.
func (f *EdmFunction) ParameterKinds() []PrimitiveTypeKind {
	kinds := make([]PrimitiveTypeKind, len(f.params))
	for i, p := range f.params {
		kinds[i] = p.Usage.Kind()
	}
	return kinds
}

// Signature returns the identity of the overload: the name followed by the
// ordered parameter types, e.g. "Round(Edm.Double,Edm.Int32)" or
// "Max(Collection(Edm.Int32))". No two canonical functions share a signature.
func (f *EdmFunction) Signature() string {
	var b strings.Builder
	b.WriteString(f.name)
	b.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			b.WriteByte(',')
		}
		if p.Usage.IsCollection() {
			b.WriteString("Collection(" + p.Usage.Type().FullName() + ")")
		} else {
			b.WriteString(p.Usage.Type().FullName())
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (f *EdmFunction) String() string {
	return f.Signature() + " -> " + f.ret.Usage.String()
}
