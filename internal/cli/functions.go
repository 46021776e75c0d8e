package cli

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/internal/export"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

type functionFilter struct {
	name       string
	kind       string
	aggregates bool
}

func newFunctionsCmd(a *app) *cobra.Command {
	var f functionFilter
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List canonical functions in declaration order",
		Example: "  edmtypes functions --name Round\n" +
			"  edmtypes functions --kind GeographyPoint\n" +
			"  edmtypes functions --aggregates --kind Int32",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fns, err := f.apply(a.m.CanonicalFunctions())
			if err != nil {
				return err
			}
			records := make([]export.FunctionRecord, len(fns))
			for i, fn := range fns {
				records[i] = export.NewFunctionRecord(fn)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, records)
			}
			rows := make([][]string, len(records))
			for i, r := range records {
				rows[i] = []string{r.Signature, r.Returns, strconv.FormatBool(r.Aggregate)}
			}
			return printTable(cmd, []string{"SIGNATURE", "RETURNS", "AGGREGATE"}, rows)
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "only overloads of this function")
	cmd.Flags().StringVar(&f.kind, "kind", "", "only functions with a parameter or result of this kind")
	cmd.Flags().BoolVar(&f.aggregates, "aggregates", false, "only aggregate functions")
	return cmd
}

// apply keeps the functions matching every set filter, preserving order.
func (f functionFilter) apply(fns []*types.EdmFunction) ([]*types.EdmFunction, error) {
	var (
		kind    types.PrimitiveTypeKind
		useKind = f.kind != ""
	)
	if useKind {
		k, err := parseKindArg(f.kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	out := make([]*types.EdmFunction, 0, len(fns))
	for _, fn := range fns {
		if f.name != "" && fn.Name() != f.name {
			continue
		}
		if f.aggregates && !fn.IsAggregate() {
			continue
		}
		if useKind && !slices.Contains(fn.ParameterKinds(), kind) && fn.ReturnParameter().Usage.Kind() != kind {
			continue
		}
		out = append(out, fn)
	}
	return out, nil
}
