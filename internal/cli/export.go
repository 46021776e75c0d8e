package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/edmtypes/internal/export"
	"github.com/mesh-intelligence/edmtypes/internal/paths"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// errInvalidSnapshot reports a document that fails schema validation.
var errInvalidSnapshot = errors.New("snapshot does not match schema")

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the manifest",
		Long: "Export writes the kinds, facets, promotions and canonical functions as a\n" +
			"single document. Without --out the file is manifest.<format> in the\n" +
			"export directory (config output_dir, EDMTYPES_OUTPUT_DIR or ./edmtypes-out).",
		Example: "  edmtypes export --format jsonl\n" +
			"  edmtypes export --format yaml --out ./manifest.yaml\n" +
			"  edmtypes export --stdout",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.config.Format
			}
			if err := (types.Config{Format: format}).Validate(); err != nil {
				return userError(fmt.Errorf("format %q: %w", format, err))
			}

			snap := export.Build(a.m)
			if stdout {
				if err := export.Write(cmd.OutOrStdout(), snap, format); err != nil {
					return sysError(err)
				}
				return nil
			}

			path := out
			if path == "" {
				dir, err := paths.ResolveOutputDir("", a.config.OutputDir)
				if err != nil {
					return sysError(fmt.Errorf("resolve output dir: %w", err))
				}
				path = filepath.Join(dir, export.FileName(format))
			}
			if err := export.WriteFile(path, snap, format); err != nil {
				return sysError(err)
			}
			a.log.Info("exported manifest",
				zap.String("path", path),
				zap.String("format", format),
				zap.Int("kinds", len(snap.Kinds)),
				zap.Int("functions", len(snap.Functions)))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "json, jsonl or yaml (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to standard output")
	cmd.MarkFlagsMutuallyExclusive("out", "stdout")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check an exported snapshot against the snapshot schema",
		Long: "Validate checks a .json, .jsonl or .yaml snapshot against the embedded\n" +
			"JSON schema and reports every violation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := export.FormatOf(args[0]); err != nil {
				return userError(err)
			}
			res, err := export.ValidateFile(args[0])
			if err != nil {
				return sysError(err)
			}
			if a.flags.jsonMode {
				if err := printJSON(cmd, res); err != nil {
					return err
				}
			} else if res.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			} else {
				for _, issue := range res.Issues {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], issue)
				}
			}
			if !res.Valid {
				return userError(fmt.Errorf("%s: %d issue(s): %w", args[0], len(res.Issues), errInvalidSnapshot))
			}
			return nil
		},
	}
}
