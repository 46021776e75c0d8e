package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	return Build(manifest.New())
}

func TestBuild(t *testing.T) {
	m := manifest.New()
	snap := Build(m)

	assert.Equal(t, manifest.ContractVersion, snap.ContractVersion)
	assert.Equal(t, m.Fingerprint().String(), snap.Fingerprint)
	assert.Equal(t, types.EdmNamespace, snap.Namespace)
	require.Len(t, snap.Kinds, int(types.NumPrimitiveKinds))
	require.Len(t, snap.Functions, len(m.CanonicalFunctions()))

	for i, k := range snap.Kinds {
		assert.Equal(t, types.PrimitiveTypeKind(i).String(), k.Name)
		require.NotEmpty(t, k.Promotions, k.Name)
		assert.Equal(t, k.Name, k.Promotions[0], "promotion list of %s starts with itself", k.Name)
	}

	byteKind := snap.Kinds[types.Byte]
	assert.Equal(t, []string{"Byte", "Int16", "Int32", "Int64", "Decimal", "Single", "Double"}, byteKind.Promotions)

	dec := snap.Kinds[types.Decimal]
	require.Len(t, dec.Facets, 2)
	assert.Equal(t, types.FacetPrecision, dec.Facets[0].Name)
	require.NotNil(t, dec.Facets[0].Min)
	assert.EqualValues(t, 1, *dec.Facets[0].Min)
	assert.EqualValues(t, 255, *dec.Facets[0].Max)
	assert.Nil(t, dec.Facets[0].Default)

	unicode := snap.Kinds[types.String].Facets[1]
	assert.Equal(t, types.FacetUnicode, unicode.Name)
	assert.Nil(t, unicode.Min)

	assert.True(t, snap.Kinds[types.GeographyPoint].Spatial)
	assert.False(t, snap.Kinds[types.Int32].Spatial)
}

func TestBuild_FunctionRecords(t *testing.T) {
	snap := testSnapshot(t)

	var count, round *FunctionRecord
	for i := range snap.Functions {
		f := &snap.Functions[i]
		switch f.Signature {
		case "Count(Collection(Edm.Int32))":
			count = f
		case "Round(Edm.Double,Edm.Int32)":
			round = f
		}
	}
	require.NotNil(t, count)
	assert.True(t, count.Aggregate)
	assert.Equal(t, []ParameterRecord{{Name: "collection", Type: "Edm.Int32", Collection: true}}, count.Parameters)
	assert.Equal(t, "Edm.Int32", count.Returns)

	require.NotNil(t, round)
	assert.False(t, round.Aggregate)
	assert.Len(t, round.Parameters, 2)
	assert.Equal(t, "Edm.Double", round.Returns)
}

func TestWrite_JSONRoundTrip(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, types.FormatJSON))

	var got Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, snap.Fingerprint, got.Fingerprint)
	assert.Len(t, got.Kinds, len(snap.Kinds))
	assert.Len(t, got.Functions, len(snap.Functions))
	// Defaults decode as float64/bool, so compare everything else.
	if diff := cmp.Diff(snap.Functions, got.Functions); diff != "" {
		t.Errorf("functions mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_JSONL(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, types.FormatJSONL))

	var records []string
	scanner := bufio.NewScanner(&buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var line struct {
			Record string `json:"record"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		records = append(records, line.Record)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, records, 1+len(snap.Kinds)+len(snap.Functions))
	assert.Equal(t, RecordHeader, records[0])
	assert.Equal(t, RecordKind, records[1])
	assert.Equal(t, RecordKind, records[len(snap.Kinds)])
	assert.Equal(t, RecordFunction, records[len(snap.Kinds)+1])
	assert.Equal(t, RecordFunction, records[len(records)-1])
}

func TestWrite_YAML(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, types.FormatYAML))

	var got Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, snap.ContractVersion, got.ContractVersion)
	assert.Len(t, got.Functions, len(snap.Functions))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, testSnapshot(t), "xml")
	assert.ErrorIs(t, err, types.ErrFormatUnknown)
}

func TestWriteFile_ValidatesInEveryFormat(t *testing.T) {
	snap := testSnapshot(t)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	for _, format := range []string{types.FormatJSON, types.FormatJSONL, types.FormatYAML} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, FileName(format))
			require.NoError(t, WriteFile(path, snap, format))

			res, err := ValidateFile(path)
			require.NoError(t, err)
			assert.True(t, res.Valid, "issues: %v", res.Issues)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestValidate_ReportsIssues(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		data    string
		keyword string
	}{
		{
			name:    "missing functions",
			format:  types.FormatJSON,
			data:    `{"contract_version":"3.0.0","fingerprint":"00000000-0000-0000-0000-000000000000","namespace":"Edm","kinds":[{"name":"Int32","full_name":"Edm.Int32","spatial":false,"facets":[],"promotions":["Int32"]}]}`,
			keyword: "required",
		},
		{
			name:    "bad version",
			format:  types.FormatYAML,
			data:    "contract_version: three\nfingerprint: 00000000-0000-0000-0000-000000000000\nnamespace: Edm\nkinds: []\nfunctions: []\n",
			keyword: "pattern",
		},
		{
			name:    "unknown record",
			format:  types.FormatJSONL,
			data:    `{"record":"header","contract_version":"3.0.0","fingerprint":"00000000-0000-0000-0000-000000000000","namespace":"Edm"}` + "\n" + `{"record":"alias"}`,
			keyword: "enum",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			require.NotEmpty(t, res.Issues)

			var keywords []string
			for _, issue := range res.Issues {
				keywords = append(keywords, issue.Keyword)
			}
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidate_JSONLHeaderFirst(t *testing.T) {
	snap := testSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, types.FormatJSONL))

	lines := strings.SplitN(buf.String(), "\n", 2)
	reordered := lines[1] + lines[0] + "\n"

	res, err := Validate([]byte(reordered), types.FormatJSONL)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 1, res.Issues[0].Line)
	assert.Equal(t, "record", res.Issues[0].Keyword)
}

func TestValidate_ParseErrors(t *testing.T) {
	_, err := Validate([]byte("{"), types.FormatJSON)
	assert.Error(t, err)

	_, err = Validate([]byte("a: [b"), types.FormatYAML)
	assert.Error(t, err)

	_, err = Validate([]byte("{}"), "toml")
	assert.ErrorIs(t, err, types.ErrFormatUnknown)
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"m.json":  types.FormatJSON,
		"m.JSONL": types.FormatJSONL,
		"m.yaml":  types.FormatYAML,
		"m.yml":   types.FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatOf("m.txt")
	assert.ErrorIs(t, err, types.ErrFormatUnknown)
}
