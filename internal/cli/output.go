package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// printJSON writes v to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

// printTable writes rows as tab-aligned columns under header.
func printTable(cmd *cobra.Command, header []string, rows [][]string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return sysError(fmt.Errorf("write output: %w", err))
	}
	return nil
}

// parseKindArg parses a kind named on the command line.
func parseKindArg(s string) (types.PrimitiveTypeKind, error) {
	kind, err := types.ParseKind(s)
	if err != nil {
		return 0, userError(fmt.Errorf("kind %q: %w", s, err))
	}
	return kind, nil
}

func kindNames(ts []*types.PrimitiveType) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name()
	}
	return names
}
