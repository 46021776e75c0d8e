package export

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

//go:embed schema/snapshot.schema.json
var schemaBytes []byte

const schemaURL = "snapshot.schema.json"

type compiledSchemas struct {
	snapshot *jsonschema.Schema
	record   *jsonschema.Schema
}

var (
	schemas    compiledSchemas
	compileErr error
	compileOne sync.Once
	printer    = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Line    int    // 1-based JSONL line; 0 for whole-document formats
	Path    string // instance location, e.g. "/kinds/3/name"
	Message string
	Keyword string
}

func (i ValidationIssue) String() string {
	loc := i.Path
	if loc == "" {
		loc = "/"
	}
	if i.Line > 0 {
		loc = fmt.Sprintf("line %d: %s", i.Line, loc)
	}
	return fmt.Sprintf("%s: %s (%s)", loc, i.Message, i.Keyword)
}

func getSchemas() (compiledSchemas, error) {
	compileOne.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schemas.snapshot, err = c.Compile(schemaURL); err != nil {
			compileErr = fmt.Errorf("compiling snapshot schema: %w", err)
			return
		}
		if schemas.record, err = c.Compile(schemaURL + "#/$defs/record"); err != nil {
			compileErr = fmt.Errorf("compiling record schema: %w", err)
		}
	})
	return schemas, compileErr
}

// Validate checks data, encoded in format, against the snapshot schema.
// The error return is for parse or schema compilation failures; schema
// violations are reported in the result.
func Validate(data []byte, format string) (*ValidationResult, error) {
	s, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	switch format {
	case types.FormatJSON:
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return resultOf(validateInstance(s.snapshot, inst, 0))
	case types.FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		jsonData, err := json.Marshal(normalizeYAML(raw))
		if err != nil {
			return nil, fmt.Errorf("converting to JSON: %w", err)
		}
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
		if err != nil {
			return nil, fmt.Errorf("preparing JSON for validation: %w", err)
		}
		return resultOf(validateInstance(s.snapshot, inst, 0))
	case types.FormatJSONL:
		return validateJSONL(s.record, data)
	default:
		return nil, fmt.Errorf("format %q: %w", format, types.ErrFormatUnknown)
	}
}

// ValidateFile reads path and validates it in the format implied by its
// extension.
func ValidateFile(path string) (*ValidationResult, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data, format)
}

// FormatOf maps a file extension to an export format.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return types.FormatJSON, nil
	case ".jsonl":
		return types.FormatJSONL, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	default:
		return "", fmt.Errorf("file %s: %w", path, types.ErrFormatUnknown)
	}
}

// validateJSONL validates every non-empty line against the record schema.
// The first record must be the header.
func validateJSONL(schema *jsonschema.Schema, data []byte) (*ValidationResult, error) {
	var issues []ValidationIssue
	sawRecord := false
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(text))
		if err != nil {
			issues = append(issues, ValidationIssue{Line: line, Message: err.Error(), Keyword: "json"})
			continue
		}
		if !sawRecord {
			sawRecord = true
			if rec, ok := inst.(map[string]any); !ok || rec["record"] != RecordHeader {
				issues = append(issues, ValidationIssue{
					Line: line, Message: "first record must be the header", Keyword: "record",
				})
			}
		}
		lineIssues, err := validateInstance(schema, inst, line)
		if err != nil {
			return nil, err
		}
		issues = append(issues, lineIssues...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning JSONL: %w", err)
	}
	if !sawRecord {
		issues = append(issues, ValidationIssue{Message: "no records", Keyword: "record"})
	}
	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

func validateInstance(schema *jsonschema.Schema, inst any, line int) ([]ValidationIssue, error) {
	err := schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return extractIssues(ve, line), nil
}

func resultOf(issues []ValidationIssue, err error) (*ValidationResult, error) {
	if err != nil {
		return nil, err
	}
	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// extractIssues flattens the error tree into its leaf issues.
func extractIssues(ve *jsonschema.ValidationError, line int) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, line, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Line: line, Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectIssues(ve *jsonschema.ValidationError, line int, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, line, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	// Container keywords carry no detail of their own.
	if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}
	*issues = append(*issues, ValidationIssue{Line: line, Path: path, Message: msg, Keyword: keyword})
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[ValidationIssue]bool, len(issues))
	var out []ValidationIssue
	for _, issue := range issues {
		if !seen[issue] {
			seen[issue] = true
			out = append(out, issue)
		}
	}
	return out
}

// normalizeYAML converts YAML-decoded values into JSON-compatible ones.
// yaml.v3 decodes mappings with non-string keys as map[any]any.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeYAML(e)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalizeYAML(e)
		}
		return a
	default:
		return val
	}
}
