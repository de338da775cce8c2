package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a content digest of the file at path, and ok=false when the
// file does not exist. Change detection only needs a stable fixed-length
// hash, not collision resistance.
func Digest(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("hashing %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), true, nil
}

// Digest is the method form used by consumers holding a Store; the path has
// already been validated by the Lock/Load/Save calls around it.
func (s *Store) Digest(path string) (string, bool, error) {
	return Digest(path)
}

// Changed reports whether two digest observations differ, treating an absent
// file as distinct from any present one.
func Changed(before string, beforeOK bool, after string, afterOK bool) bool {
	if beforeOK != afterOK {
		return true
	}
	return before != after
}
