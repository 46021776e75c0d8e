package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
	"github.com/mesh-intelligence/edmtypes/pkg/types"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// StoreManifest maps SQLite declared column types onto the manifest's
// primitive types.
type StoreManifest struct {
	m   *manifest.Manifest
	log *zap.Logger
}

// Column describes one column of an introspected table.
type Column struct {
	Name       string          `json:"name" yaml:"name"`
	Declared   string          `json:"declared" yaml:"declared"`
	Usage      types.TypeUsage `json:"-" yaml:"-"`
	Type       string          `json:"type" yaml:"type"`
	NotNull    bool            `json:"not_null" yaml:"not_null"`
	PrimaryKey bool            `json:"primary_key" yaml:"primary_key"`
}

// NewStoreManifest returns a store manifest over m. A nil m uses the
// process-wide manifest; a nil log discards output.
func NewStoreManifest(m *manifest.Manifest, log *zap.Logger) *StoreManifest {
	if m == nil {
		m = manifest.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreManifest{m: m, log: log}
}

// Manifest returns the type manifest the store types are bound against.
func (s *StoreManifest) Manifest() *manifest.Manifest {
	return s.m
}

// MapStoreType maps a declared column type such as "VARCHAR(50)" or
// "DECIMAL(18,2)" to a type usage with the facets the declaration implies.
// Returns ErrUnmappableStoreType (wrapped) for empty or unknown names and
// facet errors for arguments outside the facet bounds.
func (s *StoreManifest) MapStoreType(declared string) (types.TypeUsage, error) {
	parsed, err := parseDeclaredType(declared)
	if err != nil {
		return types.TypeUsage{}, err
	}
	st, ok := storeTypes[parsed.name]
	if !ok {
		return types.TypeUsage{}, fmt.Errorf("declared type %q: %w", declared, types.ErrUnmappableStoreType)
	}
	values, err := st.facetArguments(declared, parsed.args)
	if err != nil {
		return types.TypeUsage{}, err
	}
	usage, err := s.m.NewTypeUsage(st.kind, values)
	if err != nil {
		return types.TypeUsage{}, fmt.Errorf("declared type %q: %w", declared, err)
	}
	return usage, nil
}

// StoreTypes returns the facet-less usage of every mapped native type name,
// keyed by name.
func (s *StoreManifest) StoreTypes() map[string]types.TypeUsage {
	out := make(map[string]types.TypeUsage, len(storeTypes))
	for name, st := range storeTypes {
		out[name] = types.UsageOf(s.m.PrimitiveType(st.kind))
	}
	return out
}

// Open opens the SQLite database at path. The caller closes it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}
	return db, nil
}

// Introspect reads the columns of table and maps each declared type.
// Columns whose type cannot be mapped are logged and reported with a zero
// Usage and an empty Type; the first such error is returned alongside the
// full column list.
func (s *StoreManifest) Introspect(ctx context.Context, db *sql.DB, table string) ([]Column, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, type, "notnull", pk FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s: %w", table, err)
	}
	defer rows.Close()

	var (
		cols     []Column
		firstErr error
	)
	for rows.Next() {
		var (
			c       Column
			notNull int
			pk      int
		)
		if err := rows.Scan(&c.Name, &c.Declared, &notNull, &pk); err != nil {
			return nil, fmt.Errorf("scanning column of %s: %w", table, err)
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0

		usage, err := s.MapStoreType(c.Declared)
		if err != nil {
			s.log.Warn("unmapped column",
				zap.String("table", table),
				zap.String("column", c.Name),
				zap.String("declared", c.Declared),
				zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("column %s.%s: %w", table, c.Name, err)
			}
		} else {
			c.Usage = usage
			c.Type = usage.String()
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns of %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, types.ErrTableNotFound)
	}
	s.log.Debug("introspected table", zap.String("table", table), zap.Int("columns", len(cols)))
	return cols, firstErr
}
