package types

// PrimitiveType is the canonical descriptor of one primitive kind.
// Values are created once by the manifest's primitive type catalog and
// shared by reference; identity comparison (==) is the equality test.
type PrimitiveType struct {
	kind      PrimitiveTypeKind
	name      string
	namespace string
}

// NewPrimitiveType creates a descriptor for kind in the Edm namespace.
// Callers wanting the canonical instance use the manifest instead; a value
// built here is never identical to the manifest's.
func NewPrimitiveType(kind PrimitiveTypeKind) *PrimitiveType {
	return &PrimitiveType{
		kind:      kind,
		name:      kind.String(),
		namespace: EdmNamespace,
	}
}

// Kind returns the primitive kind.
func (t *PrimitiveType) Kind() PrimitiveTypeKind { return t.kind }

// Name returns the unqualified type name, e.g. "Int32".
func (t *PrimitiveType) Name() string { return t.name }

// Namespace returns the type namespace, always "Edm".
func (t *PrimitiveType) Namespace() string { return t.namespace }

// FullName returns the namespace-qualified name, e.g. "Edm.Int32".
func (t *PrimitiveType) FullName() string { return t.namespace + "." + t.name }

func (t *PrimitiveType) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.FullName()
}
