package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/internal/sqlite"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

func newMapTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map-type <declared-type>",
		Short: "Map a SQLite declared column type to a primitive type",
		Example: "  edmtypes map-type 'VARCHAR(50)'\n" +
			"  edmtypes map-type 'DECIMAL(18,2)' --json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := sqlite.NewStoreManifest(a.m, a.log.Named("store"))
			usage, err := store.MapStoreType(args[0])
			if err != nil {
				return userError(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, struct {
					Declared string         `json:"declared"`
					Type     string         `json:"type"`
					Facets   map[string]any `json:"facets"`
				}{args[0], usage.Type().FullName(), usage.Facets()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return nil
		},
	}
}

func newIntrospectCmd(a *app) *cobra.Command {
	var dbPath, table string
	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Map the columns of a SQLite table to primitive types",
		Example: "  edmtypes introspect --db app.db --table orders",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(dbPath); err != nil {
				return userError(fmt.Errorf("database %s: %w", dbPath, err))
			}
			db, err := sqlite.Open(cmd.Context(), dbPath)
			if err != nil {
				return sysError(err)
			}
			defer db.Close()

			store := sqlite.NewStoreManifest(a.m, a.log.Named("store"))
			cols, mapErr := store.Introspect(cmd.Context(), db, table)
			if mapErr != nil && cols == nil {
				if errors.Is(mapErr, types.ErrTableNotFound) {
					return userError(mapErr)
				}
				return sysError(mapErr)
			}

			if a.flags.jsonMode {
				if err := printJSON(cmd, cols); err != nil {
					return err
				}
			} else {
				rows := make([][]string, len(cols))
				for i, c := range cols {
					typ := c.Type
					if typ == "" {
						typ = "?"
					}
					rows[i] = []string{c.Name, c.Declared, typ, strconv.FormatBool(c.NotNull), strconv.FormatBool(c.PrimaryKey)}
				}
				if err := printTable(cmd, []string{"COLUMN", "DECLARED", "TYPE", "NOT NULL", "PK"}, rows); err != nil {
					return err
				}
			}
			if mapErr != nil {
				return userError(mapErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	cmd.Flags().StringVar(&table, "table", "", "table name")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
