// Package store owns the dashboard services file: path validation, the YAML
// codec, atomic writes, advisory locking and change detection.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const lockRetryInterval = 100 * time.Millisecond

// Store reads and writes a ServicesDocument at a validated path.
type Store struct {
	logger          zerolog.Logger
	allowedDir      string
	allowedPrefixes []string
	lockTimeout     time.Duration
}

func New(allowedDir string, allowedPrefixes []string, lockTimeout time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		logger:          logger,
		allowedDir:      allowedDir,
		allowedPrefixes: allowedPrefixes,
		lockTimeout:     lockTimeout,
	}
}

// validatePath admits absolute paths under the allowed directory, or under
// one of the explicitly permitted extra prefixes (tests point this at their
// temp directories).
func (s *Store) validatePath(path string) error {
	if !filepath.IsAbs(path) {
		return NewPathValidationError(path, "path must be absolute")
	}
	clean := filepath.Clean(path)
	prefixes := append([]string{s.allowedDir}, s.allowedPrefixes...)
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		prefix = filepath.Clean(prefix)
		if clean == prefix || strings.HasPrefix(clean, prefix+string(filepath.Separator)) {
			return nil
		}
	}
	return NewPathValidationError(path, fmt.Sprintf("not under allowed directory %s", s.allowedDir))
}

// Load reads and parses the services document at path.
func (s *Store) Load(path string) (*domain.ServicesDocument, error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewNotFoundError(path)
		}
		return nil, fmt.Errorf("reading services file: %w", err)
	}

	var doc domain.ServicesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding services file %s: %w", path, err)
	}
	if doc.Containers == nil {
		doc.Containers = []domain.ServiceDescriptor{}
	}

	s.logger.Debug().Str("path", path).Int("entries", len(doc.Containers)).Msg("Loaded services file")
	return &doc, nil
}

// Save serializes the document and replaces the target atomically: write to a
// temp file in the same directory, fsync, rename. A crash mid-write leaves
// the previous file intact.
func (s *Store) Save(path string, doc *domain.ServicesDocument) error {
	if err := s.validatePath(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding services document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp services file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp services file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp services file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing services file %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("entries", len(doc.Containers)).Msg("Saved services file")
	return nil
}

// Lock takes an exclusive advisory lock guarding the load-merge-save window
// against concurrent writers. It locks a sidecar file so the atomic rename of
// the target does not invalidate the held lock. The returned function
// releases the lock.
func (s *Store) Lock(ctx context.Context, path string) (func(), error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	fl := flock.New(path + ".lock")
	acquired, err := fl.TryLockContext(lockCtx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquiring lock on %s: %w", fl.Path(), err)
	}
	if !acquired {
		return nil, fmt.Errorf("failed to acquire lock on %s", fl.Path())
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("path", fl.Path()).Msg("failed to release services file lock")
		}
	}, nil
}
