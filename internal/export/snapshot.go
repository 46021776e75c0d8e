// Package export renders a manifest as a self-describing snapshot in JSON,
// JSONL or YAML, and validates snapshot documents against the embedded
// JSON schemas.
package export

import (
	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// Snapshot is the serializable form of a manifest.
type Snapshot struct {
	ContractVersion string           `json:"contract_version" yaml:"contract_version"`
	Fingerprint     string           `json:"fingerprint" yaml:"fingerprint"`
	Namespace       string           `json:"namespace" yaml:"namespace"`
	Kinds           []KindRecord     `json:"kinds" yaml:"kinds"`
	Functions       []FunctionRecord `json:"functions" yaml:"functions"`
}

// KindRecord describes one primitive type: its facets and promotion list.
type KindRecord struct {
	Name       string        `json:"name" yaml:"name"`
	FullName   string        `json:"full_name" yaml:"full_name"`
	Spatial    bool          `json:"spatial" yaml:"spatial"`
	Facets     []FacetRecord `json:"facets" yaml:"facets"`
	Promotions []string      `json:"promotions" yaml:"promotions"`
}

// FacetRecord describes one facet. Min and Max are omitted for unbounded
// facets and Default for facets without a default.
type FacetRecord struct {
	Name      string `json:"name" yaml:"name"`
	ValueKind string `json:"value_kind" yaml:"value_kind"`
	Min       *int64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *int64 `json:"max,omitempty" yaml:"max,omitempty"`
	Default   any    `json:"default,omitempty" yaml:"default,omitempty"`
}

// FunctionRecord describes one canonical function overload.
type FunctionRecord struct {
	Name       string            `json:"name" yaml:"name"`
	Signature  string            `json:"signature" yaml:"signature"`
	Aggregate  bool              `json:"aggregate" yaml:"aggregate"`
	Parameters []ParameterRecord `json:"parameters" yaml:"parameters"`
	Returns    string            `json:"returns" yaml:"returns"`
}

// ParameterRecord describes one function parameter.
type ParameterRecord struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Collection bool   `json:"collection,omitempty" yaml:"collection,omitempty"`
}

// Build captures m as a snapshot. Kinds and functions keep manifest order.
func Build(m *manifest.Manifest) *Snapshot {
	snap := &Snapshot{
		ContractVersion: manifest.ContractVersion,
		Fingerprint:     m.Fingerprint().String(),
		Namespace:       types.EdmNamespace,
	}
	for _, t := range m.PrimitiveTypes() {
		snap.Kinds = append(snap.Kinds, NewKindRecord(m, t))
	}
	for _, fn := range m.CanonicalFunctions() {
		snap.Functions = append(snap.Functions, NewFunctionRecord(fn))
	}
	return snap
}

// NewKindRecord describes t as published by m.
func NewKindRecord(m *manifest.Manifest, t *types.PrimitiveType) KindRecord {
	rec := KindRecord{
		Name:       t.Name(),
		FullName:   t.FullName(),
		Spatial:    t.Kind().IsSpatial(),
		Facets:     []FacetRecord{},
		Promotions: []string{},
	}
	for _, f := range m.FacetDescriptions(t) {
		fr := FacetRecord{
			Name:      f.Name,
			ValueKind: f.ValueKind.String(),
			Default:   f.Default,
		}
		if f.HasBounds {
			lo, hi := f.MinValue, f.MaxValue
			fr.Min, fr.Max = &lo, &hi
		}
		rec.Facets = append(rec.Facets, fr)
	}
	for _, target := range m.PromotionTypes(t) {
		rec.Promotions = append(rec.Promotions, target.Name())
	}
	return rec
}

// NewFunctionRecord describes fn.
func NewFunctionRecord(fn *types.EdmFunction) FunctionRecord {
	rec := FunctionRecord{
		Name:       fn.Name(),
		Signature:  fn.Signature(),
		Aggregate:  fn.IsAggregate(),
		Parameters: []ParameterRecord{},
		Returns:    fn.ReturnParameter().Usage.Type().FullName(),
	}
	for _, p := range fn.Parameters() {
		rec.Parameters = append(rec.Parameters, ParameterRecord{
			Name:       p.Name,
			Type:       p.Usage.Type().FullName(),
			Collection: p.Usage.IsCollection(),
		})
	}
	return rec
}
