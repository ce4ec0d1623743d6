package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
)

// purgeInterval is how often expired session rows are swept out of the
// registry.
const purgeInterval = time.Hour

// Storages aggregates every persistence backend of the application.
// SessionRegistry is nil when no DSN is configured; the scaffold then
// runs stateless and revocation endpoints report 503.
type Storages struct {
	SessionRegistry SessionRegistry
}

// NewStorages connects and migrates the configured backends. An empty
// DSN is not an error: it simply yields no registry.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no registry DSN configured, running stateless")
		return &Storages{}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	storages := &Storages{
		SessionRegistry: NewSessionRegistry(db, log),
	}
	storages.startPurgeLoop(ctx, log)

	return storages, nil
}

// startPurgeLoop sweeps expired sessions out of the registry on a
// fixed interval until ctx is cancelled.
func (s *Storages) startPurgeLoop(ctx context.Context, log *logger.Logger) {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged, err := s.SessionRegistry.PurgeExpired(ctx)
				if err != nil {
					log.Err(err).Str("func", "*Storages.startPurgeLoop").Msg("error purging expired sessions")
					continue
				}
				if purged > 0 {
					log.Info().Int64("purged", purged).Msg("purged expired sessions")
				}
			}
		}
	}()
}
