package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// JSONL record discriminators.
const (
	RecordHeader   = "header"
	RecordKind     = "kind"
	RecordFunction = "function"
)

type headerLine struct {
	Record          string `json:"record"`
	ContractVersion string `json:"contract_version"`
	Fingerprint     string `json:"fingerprint"`
	Namespace       string `json:"namespace"`
}

type kindLine struct {
	Record string `json:"record"`
	KindRecord
}

type functionLine struct {
	Record string `json:"record"`
	FunctionRecord
}

// Write renders snap to w in format.
// Returns ErrFormatUnknown (wrapped) for an unsupported format.
func Write(w io.Writer, snap *Snapshot, format string) error {
	switch format {
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case types.FormatJSONL:
		return writeJSONL(w, snap)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q: %w", format, types.ErrFormatUnknown)
	}
}

// writeJSONL writes a header line, then one line per kind, then one line
// per function, in manifest order.
func writeJSONL(w io.Writer, snap *Snapshot) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(headerLine{
		Record:          RecordHeader,
		ContractVersion: snap.ContractVersion,
		Fingerprint:     snap.Fingerprint,
		Namespace:       snap.Namespace,
	}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, k := range snap.Kinds {
		if err := enc.Encode(kindLine{Record: RecordKind, KindRecord: k}); err != nil {
			return fmt.Errorf("writing kind %s: %w", k.Name, err)
		}
	}
	for _, f := range snap.Functions {
		if err := enc.Encode(functionLine{Record: RecordFunction, FunctionRecord: f}); err != nil {
			return fmt.Errorf("writing function %s: %w", f.Signature, err)
		}
	}
	return bw.Flush()
}

// WriteFile atomically writes snap to path using the temp-file, fsync,
// rename pattern. The parent directory is created if needed.
func WriteFile(path string, snap *Snapshot, format string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, snap, format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileName returns the default export file name for format.
func FileName(format string) string {
	return "manifest." + format
}
