// Package sqlite implements the SQLite store manifest: it maps the declared
// column types of a SQLite database onto the primitive kinds of the type
// manifest and binds the facets those kinds declare.
package sqlite

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// storeType describes one native type name. args names, in order, the facets
// bound by the declared type's parenthesized arguments; fixed holds facet
// values implied by the name itself.
type storeType struct {
	kind  types.PrimitiveTypeKind
	args  []string
	fixed map[string]any
}

// storeTypes maps lower-cased native type names to their descriptions.
// SQLite accepts any declared type; only the names listed here are mapped.
var storeTypes = map[string]storeType{
	"integer":   {kind: types.Int64},
	"bigint":    {kind: types.Int64},
	"int8":      {kind: types.Int64},
	"int":       {kind: types.Int32},
	"mediumint": {kind: types.Int32},
	"smallint":  {kind: types.Int16},
	"int2":      {kind: types.Int16},
	"tinyint":   {kind: types.Byte},

	"real":             {kind: types.Double},
	"double":           {kind: types.Double},
	"double precision": {kind: types.Double},
	"float":            {kind: types.Double},

	"numeric": {kind: types.Decimal, args: []string{types.FacetPrecision, types.FacetScale}},
	"decimal": {kind: types.Decimal, args: []string{types.FacetPrecision, types.FacetScale}},

	"boolean": {kind: types.Boolean},
	"bool":    {kind: types.Boolean},
	"bit":     {kind: types.Boolean},

	"text": {kind: types.String, fixed: map[string]any{types.FacetUnicode: true, types.FacetFixedLength: false}},
	"clob": {kind: types.String, fixed: map[string]any{types.FacetUnicode: true, types.FacetFixedLength: false}},
	"varchar": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: false, types.FacetFixedLength: false}},
	"varying character": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: false, types.FacetFixedLength: false}},
	"nvarchar": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: true, types.FacetFixedLength: false}},
	"char": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: false, types.FacetFixedLength: true}},
	"character": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: false, types.FacetFixedLength: true}},
	"nchar": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: true, types.FacetFixedLength: true}},
	"native character": {kind: types.String, args: []string{types.FacetMaxLength},
		fixed: map[string]any{types.FacetUnicode: true, types.FacetFixedLength: true}},

	"blob":      {kind: types.Binary, fixed: map[string]any{types.FacetFixedLength: false}},
	"varbinary": {kind: types.Binary, args: []string{types.FacetMaxLength}, fixed: map[string]any{types.FacetFixedLength: false}},
	"binary":    {kind: types.Binary, args: []string{types.FacetMaxLength}, fixed: map[string]any{types.FacetFixedLength: true}},

	"date":           {kind: types.DateTime},
	"datetime":       {kind: types.DateTime, args: []string{types.FacetPrecision}},
	"timestamp":      {kind: types.DateTime, args: []string{types.FacetPrecision}},
	"time":           {kind: types.Time, args: []string{types.FacetPrecision}},
	"datetimeoffset": {kind: types.DateTimeOffset, args: []string{types.FacetPrecision}},

	"uuid":             {kind: types.Guid},
	"guid":             {kind: types.Guid},
	"uniqueidentifier": {kind: types.Guid},

	"geography":          {kind: types.Geography, args: []string{types.FacetSRID}},
	"geometry":           {kind: types.Geometry, args: []string{types.FacetSRID}},
	"point":              {kind: types.GeometryPoint, args: []string{types.FacetSRID}},
	"linestring":         {kind: types.GeometryLineString, args: []string{types.FacetSRID}},
	"polygon":            {kind: types.GeometryPolygon, args: []string{types.FacetSRID}},
	"multipoint":         {kind: types.GeometryMultiPoint, args: []string{types.FacetSRID}},
	"multilinestring":    {kind: types.GeometryMultiLineString, args: []string{types.FacetSRID}},
	"multipolygon":       {kind: types.GeometryMultiPolygon, args: []string{types.FacetSRID}},
	"geometrycollection": {kind: types.GeometryCollection, args: []string{types.FacetSRID}},
}

// declaredTypePattern splits "VARCHAR(50)" into name and argument list.
var declaredTypePattern = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_ ]*?)\s*(?:\(([^)]*)\))?\s*$`)

// parsedType is a declared column type split into its parts.
type parsedType struct {
	name string
	args []string
}

func parseDeclaredType(declared string) (parsedType, error) {
	match := declaredTypePattern.FindStringSubmatch(declared)
	if match == nil {
		return parsedType{}, fmt.Errorf("declared type %q: %w", declared, types.ErrUnmappableStoreType)
	}
	name := strings.ToLower(strings.Join(strings.Fields(match[1]), " "))
	var args []string
	if strings.TrimSpace(match[2]) != "" {
		for _, a := range strings.Split(match[2], ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return parsedType{name: name, args: args}, nil
}

// facetArguments converts declared type arguments into facet values.
// "max" leaves the facet unbound.
func (st storeType) facetArguments(declared string, args []string) (map[string]any, error) {
	if len(args) > len(st.args) {
		return nil, fmt.Errorf("declared type %q takes at most %d arguments: %w", declared, len(st.args), types.ErrUnmappableStoreType)
	}
	values := make(map[string]any, len(st.fixed)+len(args))
	for name, v := range st.fixed {
		values[name] = v
	}
	for i, a := range args {
		if strings.EqualFold(a, "max") {
			continue
		}
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("declared type %q argument %q: %w", declared, a, types.ErrFacetValueType)
		}
		values[st.args[i]] = n
	}
	return values, nil
}

// StoreTypeNames returns the mapped native type names in sorted order.
func StoreTypeNames() []string {
	names := make([]string, 0, len(storeTypes))
	for name := range storeTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
