package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/internal/export"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the primitive types in enumeration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []export.KindRecord
			for _, t := range a.m.PrimitiveTypes() {
				records = append(records, export.NewKindRecord(a.m, t))
			}
			if a.flags.jsonMode {
				return printJSON(cmd, records)
			}
			rows := make([][]string, len(records))
			for i, r := range records {
				facets := make([]string, len(r.Facets))
				for j, f := range r.Facets {
					facets[j] = f.Name
				}
				rows[i] = []string{r.FullName, strconv.FormatBool(r.Spatial), strings.Join(facets, ",")}
			}
			return printTable(cmd, []string{"TYPE", "SPATIAL", "FACETS"}, rows)
		},
	}
}

func newFacetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "facets <kind>",
		Short: "Show the facet descriptions of a primitive type",
		Example: "  edmtypes facets Decimal\n" +
			"  edmtypes facets Edm.String --json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			rec := export.NewKindRecord(a.m, a.m.PrimitiveType(kind))
			if a.flags.jsonMode {
				return printJSON(cmd, rec.Facets)
			}
			rows := make([][]string, len(rec.Facets))
			for i, f := range rec.Facets {
				bounds, def := "-", "-"
				if f.Min != nil {
					bounds = fmt.Sprintf("[%d, %d]", *f.Min, *f.Max)
				}
				if f.Default != nil {
					def = fmt.Sprint(f.Default)
				}
				rows[i] = []string{f.Name, f.ValueKind, bounds, def}
			}
			return printTable(cmd, []string{"FACET", "VALUE", "BOUNDS", "DEFAULT"}, rows)
		},
	}
}

func newPromotionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "promotions <kind>",
		Short: "Show the types a primitive type can be implicitly promoted to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			names := kindNames(a.m.PromotionTypes(a.m.PrimitiveType(kind)))
			if a.flags.jsonMode {
				return printJSON(cmd, names)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " -> "))
			return nil
		},
	}
}
