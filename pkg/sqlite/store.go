// Package sqlite provides the public API for the SQLite store manifest.
// It exposes the factory and the column type while keeping the native type
// table internal.
package sqlite

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/edmtypes/internal/sqlite"
	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
)

// StoreManifest maps SQLite declared column types onto manifest types.
type StoreManifest = sqlite.StoreManifest

// Column is one introspected table column.
type Column = sqlite.Column

// NewStoreManifest creates a store manifest bound to m.
//
// Example:
//
//	store := sqlite.NewStoreManifest(manifest.Default(), nil)
//	usage, err := store.MapStoreType("DECIMAL(18,2)")
func NewStoreManifest(m *manifest.Manifest, log *zap.Logger) *StoreManifest {
	return sqlite.NewStoreManifest(m, log)
}

// Open opens the SQLite database at path using the pure-Go driver.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	return sqlite.Open(ctx, path)
}

// StoreTypeNames returns the native type names the store manifest maps.
func StoreTypeNames() []string {
	return sqlite.StoreTypeNames()
}
