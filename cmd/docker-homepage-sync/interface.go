package main

import (
	"context"

	"github.com/auto-homepage/docker-homepage-sync/internal/app"
)

type application interface {
	Run(ctx context.Context) error
}

var _ application = (*app.App)(nil)
