// Package store picks a ReportStore backend from configuration.
package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/internal/memory"
	"github.com/flyinginsectsunpig/crimereport/internal/sqlite"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// Open validates cfg and returns a fresh, empty store for the configured
// backend. The caller must Close it. A nil log discards store events.
func Open(cfg types.Config, log logrus.FieldLogger) (types.ReportStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithField("backend", cfg.Backend)

	switch cfg.Backend {
	case types.BackendSQLite:
		b, err := sqlite.NewBackend(sqlite.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return b, nil
	default:
		return memory.NewStore(memory.WithLogger(log)), nil
	}
}
