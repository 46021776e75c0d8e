package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// ContractVersion is the version of the published type-system contract:
// the kind enumeration, facet descriptions, promotion lattice and canonical
// function order. Adding kinds or functions bumps the minor version;
// reordering or removing anything bumps the major version.
const ContractVersion = "3.0.0"

// fingerprintNamespace scopes manifest fingerprints.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mesh-intelligence/edmtypes/manifest"))

// CheckCompatible reports whether ContractVersion satisfies constraint,
// e.g. "^3.0" or ">= 2.1, < 4".
func CheckCompatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(ContractVersion)
	if err != nil {
		return false, fmt.Errorf("parsing contract version: %w", err)
	}
	return c.Check(v), nil
}

// Fingerprint returns a name-based UUID over the ordered kinds, their
// facets and promotions, and the canonical function signatures. Two
// manifests publishing the same contract have the same fingerprint.
func (m *Manifest) Fingerprint() uuid.UUID {
	var b strings.Builder
	for _, t := range m.PrimitiveTypes() {
		b.WriteString(t.FullName())
		b.WriteByte('[')
		for _, f := range m.FacetDescriptions(t) {
			fmt.Fprintf(&b, "%s:%s:%t:%d:%d:%v;", f.Name, f.ValueKind, f.HasBounds, f.MinValue, f.MaxValue, f.Default)
		}
		b.WriteString("]<")
		for _, target := range m.promotions(t.Kind()) {
			b.WriteString(target.Name())
			b.WriteByte(',')
		}
		b.WriteString(">\n")
	}
	for _, fn := range m.functions() {
		b.WriteString(fn.String())
		b.WriteByte('\n')
	}
	return uuid.NewSHA1(fingerprintNamespace, []byte(b.String()))
}
