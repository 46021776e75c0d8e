package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/internal/export"
	"github.com/mesh-intelligence/edmtypes/pkg/binder"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <function> [argument-type...]",
		Short: "Select the canonical overload a call binds to",
		Long: "Resolve picks the overload of a canonical function that the given argument\n" +
			"types bind to, promoting arguments along the implicit promotion lattice.\n" +
			"Collection arguments are written Collection(<kind>).",
		Example: "  edmtypes resolve Round Int32\n" +
			"  edmtypes resolve Sum 'Collection(Byte)'",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := make([]binder.Argument, 0, len(args)-1)
			for _, s := range args[1:] {
				arg, err := binder.ParseArgument(s)
				if err != nil {
					return userError(err)
				}
				callArgs = append(callArgs, arg)
			}
			fn, err := binder.ResolveFunction(a.m, args[0], callArgs...)
			if err != nil {
				return userError(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, export.NewFunctionRecord(fn))
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn)
			return nil
		},
	}
}

func newCommonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "common <kind> <kind>",
		Short: "Show the narrowest type both kinds promote to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ka, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			kb, err := parseKindArg(args[1])
			if err != nil {
				return err
			}
			t, err := binder.CommonType(a.m, a.m.PrimitiveType(ka), a.m.PrimitiveType(kb))
			if err != nil {
				return userError(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, t.Name())
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.FullName())
			return nil
		},
	}
}
