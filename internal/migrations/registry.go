package migrations

import (
	"sort"
	"sync"
)

// DefaultRegistry is the global migration registry. Each migration file
// registers itself in init.
var DefaultRegistry = NewRegistry()

// Registry holds registered migrations keyed by id.
type Registry struct {
	mu         sync.RWMutex
	migrations map[string]Migration
}

func NewRegistry() *Registry {
	return &Registry{migrations: make(map[string]Migration)}
}

// Register adds a migration, replacing any earlier registration with the
// same id.
func (r *Registry) Register(migration Migration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations[migration.ID()] = migration
}

// All returns the registered migrations in execution order.
func (r *Registry) All() []Migration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Migration, 0, len(r.migrations))
	for _, migration := range r.migrations {
		all = append(all, migration)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID() < all[j].ID()
	})
	return all
}

// Register adds a migration to the default registry.
func Register(migration Migration) {
	DefaultRegistry.Register(migration)
}
