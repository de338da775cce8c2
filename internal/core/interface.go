package core

import (
	"context"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
)

type containerRuntime interface {
	ListRunning(ctx context.Context) ([]domain.ContainerInfo, error)
	Subscribe(ctx context.Context) (<-chan domain.ContainerEvent, error)
}

type documentStore interface {
	Load(path string) (*domain.ServicesDocument, error)
	Save(path string, doc *domain.ServicesDocument) error
	Lock(ctx context.Context, path string) (func(), error)
	Digest(path string) (string, bool, error)
}

type reloadNotifier interface {
	Notify(ctx context.Context) error
}
