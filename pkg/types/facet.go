package types

import (
	"fmt"
	"math"
)

// Facet names.
const (
	FacetMaxLength   = "MaxLength"
	FacetUnicode     = "Unicode"
	FacetFixedLength = "FixedLength"
	FacetPrecision   = "Precision"
	FacetScale       = "Scale"
	FacetSRID        = "SRID"
	FacetIsStrict    = "IsStrict"
)

// Facet bounds and defaults.
const (
	MaxLengthUpperBound      = math.MaxInt32
	MaxDecimalPrecision      = math.MaxUint8
	MaxDateTimePrecision     = math.MaxUint8
	DefaultDateTimePrecision = uint8(7)
	DefaultGeographySRID     = int32(4326)
	DefaultGeometrySRID      = int32(0)
)

// FacetDescription describes one constraint parameter a usage of a
// primitive type may bind. ValueKind is the kind of the facet value itself
// (Int32 for MaxLength, Byte for Precision, Boolean for Unicode).
// MinValue and MaxValue apply only when HasBounds is set. Default is nil
// when the facet has no default; otherwise it holds a value of the Go type
// matching ValueKind (uint8, int32 or bool).
type FacetDescription struct {
	Name      string
	ValueKind PrimitiveTypeKind
	MinValue  int64
	MaxValue  int64
	HasBounds bool
	Default   any
}

// NewBoundedFacet returns a facet description with an inclusive range.
func NewBoundedFacet(name string, valueKind PrimitiveTypeKind, minValue, maxValue int64, def any) FacetDescription {
	return FacetDescription{
		Name:      name,
		ValueKind: valueKind,
		MinValue:  minValue,
		MaxValue:  maxValue,
		HasBounds: true,
		Default:   def,
	}
}

// NewFlagFacet returns a Boolean facet description.
func NewFlagFacet(name string, def any) FacetDescription {
	return FacetDescription{Name: name, ValueKind: Boolean, Default: def}
}

// HasDefault reports whether the facet declares a default value.
func (f FacetDescription) HasDefault() bool {
	return f.Default != nil
}

// Consistent checks that the bounds are ordered and that a declared default
// lies within them and matches ValueKind.
// Returns an error wrapping ErrInconsistentFacet otherwise.
func (f FacetDescription) Consistent() error {
	if f.HasBounds && f.MinValue > f.MaxValue {
		return fmt.Errorf("facet %s: minimum %d exceeds maximum %d: %w", f.Name, f.MinValue, f.MaxValue, ErrInconsistentFacet)
	}
	if f.Default == nil {
		return nil
	}
	v, err := f.Coerce(f.Default)
	if err != nil {
		return fmt.Errorf("facet %s: default %v: %w", f.Name, f.Default, ErrInconsistentFacet)
	}
	if v != f.Default {
		return fmt.Errorf("facet %s: default %v is not a %s value: %w", f.Name, f.Default, f.ValueKind, ErrInconsistentFacet)
	}
	return nil
}

// Coerce converts v to the Go representation of ValueKind and checks it
// against the facet bounds. Integer inputs of any width are accepted for
// numeric facets.
func (f FacetDescription) Coerce(v any) (any, error) {
	if f.ValueKind == Boolean {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("facet %s expects a boolean, got %T: %w", f.Name, v, ErrFacetValueType)
		}
		return b, nil
	}

	n, ok := toInt64(v)
	if !ok {
		return nil, fmt.Errorf("facet %s expects an integer, got %T: %w", f.Name, v, ErrFacetValueType)
	}
	if f.HasBounds && (n < f.MinValue || n > f.MaxValue) {
		return nil, fmt.Errorf("facet %s value %d outside [%d, %d]: %w", f.Name, n, f.MinValue, f.MaxValue, ErrFacetOutOfRange)
	}

	switch f.ValueKind {
	case Byte:
		if n < 0 || n > math.MaxUint8 {
			return nil, fmt.Errorf("facet %s value %d does not fit a byte: %w", f.Name, n, ErrFacetOutOfRange)
		}
		return uint8(n), nil
	case Int32:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("facet %s value %d does not fit an int32: %w", f.Name, n, ErrFacetOutOfRange)
		}
		return int32(n), nil
	default:
		return nil, fmt.Errorf("facet %s has unsupported value kind %s: %w", f.Name, f.ValueKind, ErrFacetValueType)
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
