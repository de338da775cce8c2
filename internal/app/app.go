package app

import (
	"context"
	"fmt"
	"time"

	"github.com/auto-homepage/docker-homepage-sync/internal/config"
	"github.com/auto-homepage/docker-homepage-sync/internal/core"
	"github.com/auto-homepage/docker-homepage-sync/internal/docker"
	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/auto-homepage/docker-homepage-sync/internal/notify"
	"github.com/auto-homepage/docker-homepage-sync/internal/store"
	dockerCli "github.com/docker/docker/client"
	"github.com/rs/zerolog"
)

type App struct {
	dockerClient *dockerCli.Client
	notifier     *notify.Notifier
	engine       *core.SyncEngine
	logger       zerolog.Logger
}

// New creates a new App by wiring up all dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	// Docker CLI
	dockerClient, err := dockerCli.NewClientWithOpts(dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	runtime := docker.NewRuntime(dockerClient, time.Duration(cfg.App.DockerTimeoutSeconds)*time.Second, logger)

	// Services file store
	st := store.New(
		cfg.Homepage.AllowedDir,
		cfg.Homepage.AllowedPrefixes,
		time.Duration(cfg.Homepage.LockTimeoutSeconds)*time.Second,
		logger,
	)

	// Reload notifier
	notifier := notify.New(cfg.Homepage.ReloadURL, time.Duration(cfg.Homepage.ReloadTimeoutSeconds)*time.Second, logger)

	// Engine
	categories := domain.DefaultCategories().Merged(cfg.App.Categories)
	engine := core.NewSyncEngine(runtime, st, notifier, categories, cfg.Homepage.ConfigPath, logger)

	return &App{
		dockerClient: dockerClient,
		notifier:     notifier,
		engine:       engine,
		logger:       logger,
	}, nil
}

// Run starts the application by running the sync engine.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("Error during shutdown")
		}
	}()
	a.logger.Info().Msg("Application starting")
	return a.engine.Run(ctx)
}

func (a *App) Close() error {
	var firstErr error
	if a.dockerClient != nil {
		if err := a.dockerClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close docker client: %w", err)
		}
	}
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close notifier: %w", err)
		}
	}
	return firstErr
}
