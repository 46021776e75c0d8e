package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and export directories",
		Long: "Create the configuration directory with a default config.yaml and the\n" +
			"directory exports are written to. Existing files are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// config.yaml is written by setup; only the export directory remains.
			dir, err := paths.ResolveOutputDir(outDir, a.config.OutputDir)
			if err != nil {
				return sysError(fmt.Errorf("resolve output dir: %w", err))
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return sysError(fmt.Errorf("create output directory: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "edmtypes initialized; exports go to %s\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "export directory")
	return cmd
}
