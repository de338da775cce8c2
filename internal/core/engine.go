package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/auto-homepage/docker-homepage-sync/internal/extract"
	"github.com/auto-homepage/docker-homepage-sync/internal/store"
	"github.com/auto-homepage/docker-homepage-sync/internal/util"
	"github.com/rs/zerolog"
)

// SyncEngine drives the event loop: on each container lifecycle event it
// lists running containers, merges their descriptors into the services file
// and triggers a dashboard reload when the file content actually changed.
type SyncEngine struct {
	logger     zerolog.Logger
	runtime    containerRuntime
	store      documentStore
	notifier   reloadNotifier
	categories domain.CategoryMap
	configPath string
}

func NewSyncEngine(runtime containerRuntime, st documentStore, notifier reloadNotifier, categories domain.CategoryMap, configPath string, logger zerolog.Logger) *SyncEngine {
	return &SyncEngine{
		logger:     logger,
		runtime:    runtime,
		store:      st,
		notifier:   notifier,
		categories: categories,
		configPath: configPath,
	}
}

// Run subscribes to the event stream and processes events until the context
// is cancelled or the stream closes. A failed subscribe is fatal; a failed
// cycle is logged and the loop continues.
func (se *SyncEngine) Run(ctx context.Context) error {
	se.logger.Info().Msg("Starting sync engine")

	eventCh, err := se.runtime.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to container events: %w", err)
	}

	// Containers already running at startup have no pending event, so run
	// one cycle up front to pick them up.
	se.logger.Info().Msg("Running initial sync of currently running containers")
	if err := se.SyncCycle(ctx); err != nil {
		se.logCycleError(err)
	}

	for {
		select {
		case <-ctx.Done():
			se.logger.Info().Msg("Sync engine shutting down")
			return ctx.Err()
		case evt, ok := <-eventCh:
			if !ok {
				if ctx.Err() != nil {
					se.logger.Info().Msg("Sync engine shutting down")
					return ctx.Err()
				}
				se.logger.Error().Msg("Container event stream closed unexpectedly")
				return errors.New("container event stream closed unexpectedly")
			}
			if !evt.EventType.IsValid() {
				continue
			}
			se.logger.Info().
				Str("action", string(evt.EventType)).
				Str("container", evt.ContainerName).
				Msg("Container lifecycle event")
			if err := se.SyncCycle(ctx); err != nil {
				se.logCycleError(err)
			}
		}
	}
}

// SyncCycle runs one full update: list running containers, extract their
// descriptors, merge them into the services document under an exclusive lock,
// and notify the dashboard iff the persisted file changed.
func (se *SyncEngine) SyncCycle(ctx context.Context) error {
	infos, err := se.runtime.ListRunning(ctx)
	if err != nil {
		return err
	}

	descriptors := util.Map(infos, func(info domain.ContainerInfo) domain.ServiceDescriptor {
		return extract.Descriptor(info, se.categories)
	})

	unlock, err := se.store.Lock(ctx, se.configPath)
	if err != nil {
		return err
	}

	changed, err := se.mergeAndSave(descriptors)
	unlock()
	if err != nil {
		return err
	}

	if changed {
		if err := se.notifier.Notify(ctx); err != nil {
			// Notify failures never abort a cycle.
			se.logger.Warn().Err(err).Msg("Dashboard reload failed")
		}
	}
	return nil
}

// mergeAndSave runs the load-merge-save-compare sequence while the caller
// holds the file lock. It reports whether the persisted bytes changed.
func (se *SyncEngine) mergeAndSave(descriptors []domain.ServiceDescriptor) (bool, error) {
	before, beforeOK, err := se.store.Digest(se.configPath)
	if err != nil {
		return false, err
	}

	doc, err := se.store.Load(se.configPath)
	if err != nil {
		return false, err
	}

	added := MergeDescriptors(doc, descriptors)
	for _, sd := range added {
		se.logger.Info().Msgf("Added %s to services document", sd.Render())
	}
	se.logger.Debug().Int("listed", len(descriptors)).Int("added", len(added)).Msg("Merged descriptors into services document")

	if err := se.store.Save(se.configPath, doc); err != nil {
		return false, err
	}

	after, afterOK, err := se.store.Digest(se.configPath)
	if err != nil {
		return false, err
	}
	return store.Changed(before, beforeOK, after, afterOK), nil
}

// logCycleError classifies a per-cycle failure so operators can tell path
// misconfiguration from a missing file from runtime trouble. The loop always
// continues.
func (se *SyncEngine) logCycleError(err error) {
	var pathErr *store.PathValidationError
	var notFoundErr *store.NotFoundError
	switch {
	case errors.As(err, &pathErr):
		se.logger.Error().Err(err).Str("kind", "path_validation").Msg("Sync cycle aborted")
	case errors.As(err, &notFoundErr):
		se.logger.Error().Err(err).Str("kind", "not_found").Msg("Sync cycle aborted")
	default:
		se.logger.Error().Err(err).Str("kind", "runtime").Msg("Sync cycle failed")
	}
}
