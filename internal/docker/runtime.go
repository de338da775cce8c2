package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog"
)

// Runtime adapts the Docker daemon socket API: it lists running containers
// with the metadata the extractor needs and exposes the lifecycle event
// stream as a channel of domain events.
type Runtime struct {
	logger      zerolog.Logger
	cli         dockerClient
	listTimeout time.Duration
}

func NewRuntime(cli dockerClient, listTimeout time.Duration, logger zerolog.Logger) *Runtime {
	return &Runtime{
		logger:      logger,
		cli:         cli,
		listTimeout: listTimeout,
	}
}

// ListRunning returns the currently running containers. The underlying API
// call is bounded by the configured timeout.
func (r *Runtime) ListRunning(ctx context.Context) ([]domain.ContainerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.listTimeout)
	defer cancel()

	containers, err := r.cli.ContainerList(ctx, container.ListOptions{All: false})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	infos := make([]domain.ContainerInfo, 0, len(containers))
	for _, c := range containers {
		infos = append(infos, fromContainerSummary(c))
	}
	return infos, nil
}

// Subscribe connects to the Docker event stream, filtered server-side to the
// container lifecycle transitions we care about, and converts each message
// into a domain event. The returned channel closes when the context is
// cancelled or the daemon closes the stream; the stream is not restartable.
func (r *Runtime) Subscribe(ctx context.Context) (<-chan domain.ContainerEvent, error) {
	const bufferSize = 100
	out := make(chan domain.ContainerEvent, bufferSize)

	filterArgs := filters.NewArgs()
	filterArgs.Add("type", "container")
	filterArgs.Add("event", string(domain.EventTypeContainerStarted))
	filterArgs.Add("event", string(domain.EventTypeContainerDied))
	filterArgs.Add("event", string(domain.EventTypeContainerDestroyed))

	eventCh, errCh := r.cli.Events(ctx, events.ListOptions{Filters: filterArgs})

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				r.logger.Info().Msg("Docker event subscription cancelled by context")
				return
			case err, ok := <-errCh:
				// The daemon client sends one terminal error and then
				// closes the channel; either way the stream is dead.
				if !ok {
					r.logger.Info().Msg("Docker events error channel closed")
					return
				}
				if err != nil {
					r.logger.Error().Err(err).Msg("Error from Docker events stream")
					return
				}
			case msg, ok := <-eventCh:
				if !ok {
					r.logger.Info().Msg("Docker events channel closed")
					return
				}

				event, convErr := fromEventsMessage(msg)
				if convErr != nil {
					if _, ok := convErr.(*UnsupportedEventTypeError); ok {
						r.logger.Debug().Err(convErr).Msg("Skipping docker event message")
					} else {
						r.logger.Error().Err(convErr).Msg("converting docker event message to container event")
					}
					continue
				}

				r.logger.Debug().Msgf("Received Docker event: %+v", event)
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *Runtime) Close() error {
	return r.cli.Close()
}
