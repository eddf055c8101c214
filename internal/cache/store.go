// Package cache provides an on-disk blob store keyed by URL, used to
// avoid refetching the AutoEq index on every run.
//
// Each entry is a pair of files named by a hash of the key: the content
// blob and an ".etag" sidecar holding the validator the server sent.
// Entries never expire on their own; the HTTP layer revalidates them
// with conditional requests.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/io"
)

// ErrMiss is returned by Load when no entry exists for the key.
var ErrMiss = errors.New("cache miss")

// Store is a directory-backed blob store.
//
// Example usage:
//
//	store := cache.NewStore("~/.cache/autoeq-fiio")
//
//	data, etag, err := store.Load(indexURL)
//	if errors.Is(err, cache.ErrMiss) {
//	    // fetch fresh
//	}
//
//	store.Save(ctx, indexURL, body, newETag)
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the cached content and ETag for the key.
//
// A missing content file is reported as ErrMiss. A missing or unreadable
// ETag sidecar is not an error: the entry is simply returned without a
// validator, and the next conditional fetch degrades to a plain GET.
func (s *Store) Load(key string) (data []byte, etag string, err error) {
	data, err = os.ReadFile(s.contentPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrMiss
		}
		return nil, "", err
	}

	rawETag, err := os.ReadFile(s.etagPath(key))
	if err != nil {
		return data, "", nil
	}
	return data, strings.TrimSpace(string(rawETag)), nil
}

// Save stores content and its ETag for the key, overwriting any
// previous entry. An empty etag removes a stale sidecar so future
// fetches do not revalidate against an outdated validator.
func (s *Store) Save(ctx context.Context, key string, data []byte, etag string) error {
	if err := ioutils.EnsureDir(s.dir); err != nil {
		return err
	}

	if err := ioutils.WriteFile(ctx, s.contentPath(key), data); err != nil {
		return err
	}

	if etag == "" {
		if err := os.Remove(s.etagPath(key)); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return ioutils.WriteFile(ctx, s.etagPath(key), []byte(etag))
}

func (s *Store) contentPath(key string) string {
	return filepath.Join(s.dir, hashKey(key))
}

func (s *Store) etagPath(key string) string {
	return filepath.Join(s.dir, hashKey(key)+".etag")
}

// hashKey derives a stable file name from a cache key. URLs contain
// characters that are not filesystem-safe, so the name is a hex digest.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}
