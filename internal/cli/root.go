// Package cli implements the edmtypes command-line interface: inspection of
// the type-system manifest, overload resolution, snapshot export and store
// type introspection.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/edmtypes/internal/paths"
	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError marks err as an environment or I/O failure.
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the root command to an exit code.
// Errors not marked by userError or sysError are usage errors from cobra.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	flags  rootFlags
	config types.Config
	log    *zap.Logger
	m      *manifest.Manifest
}

// NewRootCmd creates the top-level "edmtypes" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop(), config: types.DefaultConfig()}

	root := &cobra.Command{
		Use:   "edmtypes",
		Short: "Inspect the EDM primitive type-system manifest",
		Long: "edmtypes inspects the EDM provider type-system manifest: primitive types,\n" +
			"their facets, the implicit promotion lattice and the canonical functions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newVersionCmd(a),
		newInitCmd(a),
		newKindsCmd(a),
		newFacetsCmd(a),
		newPromotionsCmd(a),
		newFunctionsCmd(a),
		newResolveCmd(a),
		newCommonCmd(a),
		newExportCmd(a),
		newValidateCmd(a),
		newMapTypeCmd(a),
		newIntrospectCmd(a),
	)
	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger and manifest for the invocation.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config %s: %w", configDir, err))
	}
	a.config = cfg

	log, err := newLogger(cfg.LogLevel, a.flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return sysError(fmt.Errorf("initialize logger: %w", err))
	}
	a.log = log.Named("edmtypes")
	a.m = manifest.New(manifest.WithLogger(a.log.Named("manifest")))
	a.log.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("format", cfg.Format),
		zap.String("log_level", cfg.LogLevel))
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err)
}
