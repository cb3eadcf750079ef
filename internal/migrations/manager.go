package migrations

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/pkg/logger"
)

// Manager runs unapplied migrations at startup. A migration that fails is
// logged and left unapplied so the next deployment retries it; the manager
// never fails the caller because a broken repair must not block serving.
type Manager struct {
	registry *Registry
	store    AppliedStore
	logger   logger.Logger
}

// NewManager builds a manager over the default registry.
func NewManager(store AppliedStore, logger logger.Logger) *Manager {
	return NewManagerWithRegistry(DefaultRegistry, store, logger)
}

func NewManagerWithRegistry(registry *Registry, store AppliedStore, logger logger.Logger) *Manager {
	return &Manager{
		registry: registry,
		store:    store,
		logger:   logger,
	}
}

// Run executes every unapplied migration in id order.
func (m *Manager) Run(ctx context.Context, deps *Dependencies) {
	all := m.registry.All()
	m.logger.WithField("count", len(all)).Info("Checking one-shot migrations")

	for _, migration := range all {
		id := migration.ID()

		applied, err := m.store.IsApplied(ctx, id)
		if err != nil {
			m.logger.WithField("migration", id).Error(fmt.Sprintf("Failed to check applied state: %v", err))
			continue
		}
		if applied {
			m.logger.WithField("migration", id).Debug("Migration already applied")
			continue
		}

		if err := m.execute(ctx, migration, deps); err != nil {
			m.logger.WithField("migration", id).Error(fmt.Sprintf("Migration failed, will retry next startup: %v", err))
			continue
		}

		if err := m.store.MarkApplied(ctx, id); err != nil {
			m.logger.WithField("migration", id).Error(fmt.Sprintf("Failed to record applied migration: %v", err))
			continue
		}

		m.logger.WithField("migration", id).Info("Migration applied")
	}
}

// execute runs one migration. A panic is contained like an error so one bad
// repair cannot take startup down.
func (m *Manager) execute(ctx context.Context, migration Migration, deps *Dependencies) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in migration: %v", r)
		}
	}()

	m.logger.WithField("migration", migration.ID()).Info("Executing migration")
	return migration.Execute(ctx, deps)
}
