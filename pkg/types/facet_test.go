package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacetDescription_Coerce(t *testing.T) {
	precision := NewBoundedFacet(FacetPrecision, Byte, 1, MaxDecimalPrecision, uint8(18))
	maxLength := NewBoundedFacet(FacetMaxLength, Int32, 0, MaxLengthUpperBound, nil)
	unicode := NewFlagFacet(FacetUnicode, true)

	tests := []struct {
		name    string
		facet   FacetDescription
		in      any
		want    any
		wantErr error
	}{
		{name: "byte from int", facet: precision, in: 10, want: uint8(10)},
		{name: "byte from int64", facet: precision, in: int64(255), want: uint8(255)},
		{name: "byte below min", facet: precision, in: 0, wantErr: ErrFacetOutOfRange},
		{name: "byte above max", facet: precision, in: 256, wantErr: ErrFacetOutOfRange},
		{name: "byte from string", facet: precision, in: "10", wantErr: ErrFacetValueType},
		{name: "int32 from uint16", facet: maxLength, in: uint16(4000), want: int32(4000)},
		{name: "int32 negative", facet: maxLength, in: -1, wantErr: ErrFacetOutOfRange},
		{name: "int32 from huge uint64", facet: maxLength, in: uint64(1 << 63), wantErr: ErrFacetValueType},
		{name: "bool", facet: unicode, in: false, want: false},
		{name: "bool from int", facet: unicode, in: 1, wantErr: ErrFacetValueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.facet.Coerce(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFacetDescription_CoerceUnboundedInt32(t *testing.T) {
	srid := FacetDescription{Name: FacetSRID, ValueKind: Int32}
	got, err := srid.Coerce(-5)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), got)

	_, err = srid.Coerce(int64(1) << 40)
	assert.ErrorIs(t, err, ErrFacetOutOfRange)
}

func TestFacetDescription_Consistent(t *testing.T) {
	tests := []struct {
		name  string
		facet FacetDescription
		ok    bool
	}{
		{"bounded with default", NewBoundedFacet(FacetPrecision, Byte, 0, MaxDateTimePrecision, DefaultDateTimePrecision), true},
		{"bounded without default", NewBoundedFacet(FacetMaxLength, Int32, 0, MaxLengthUpperBound, nil), true},
		{"flag", NewFlagFacet(FacetIsStrict, true), true},
		{"inverted bounds", NewBoundedFacet(FacetScale, Byte, 5, 1, nil), false},
		{"default out of range", NewBoundedFacet(FacetPrecision, Byte, 1, 10, uint8(20)), false},
		{"default of the wrong go type", NewBoundedFacet(FacetPrecision, Byte, 1, 10, 5), false},
		{"flag with integer default", NewFlagFacet(FacetUnicode, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.facet.Consistent()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInconsistentFacet)
		})
	}
}

func TestFacetDescription_HasDefault(t *testing.T) {
	assert.True(t, NewFlagFacet(FacetUnicode, false).HasDefault())
	assert.False(t, NewBoundedFacet(FacetMaxLength, Int32, 0, 10, nil).HasDefault())
}
