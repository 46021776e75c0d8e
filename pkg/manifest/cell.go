package manifest

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// cell holds a value that is built at most once per winner and then
// published atomically. Builders run without holding any lock; when two
// goroutines race, the loser discards its copy and reads the winner's.
// This is only sound because every build function is deterministic and
// takes no external input, so racing copies are equal.
type cell[T any] struct {
	name string
	v    atomic.Pointer[T]
}

// get returns the published value, building and publishing it first if
// needed. A build error is a defect in the static catalog declarations and
// panics.
func (c *cell[T]) get(log *zap.Logger, build func() (*T, int, error)) *T {
	if v := c.v.Load(); v != nil {
		return v
	}

	built, entries, err := build()
	if err != nil {
		log.Error("catalog construction failed", zap.String("catalog", c.name), zap.Error(err))
		panic(fmt.Errorf("manifest: building %s catalog: %w", c.name, err))
	}

	if c.v.CompareAndSwap(nil, built) {
		log.Debug("published catalog", zap.String("catalog", c.name), zap.Int("entries", entries))
		return built
	}
	log.Debug("discarded duplicate catalog build", zap.String("catalog", c.name))
	return c.v.Load()
}

// published reports whether the value has been published.
func (c *cell[T]) published() bool {
	return c.v.Load() != nil
}
