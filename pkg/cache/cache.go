// Package cache stores rendered artifacts so identical mazes are not laid
// out twice.
//
// Graphviz layout dominates the cost of an SVG, and the same maze is often
// drawn repeatedly (a server polled by a browser, a CLI run re-executed with
// the same seed). Entries are addressed by a hash of everything that
// determines the output, see [Key].
//
// Three implementations are provided: [MemoryCache] for long-running
// processes, [FileCache] for the CLI, and [NullCache] to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key builds a cache key of the form kind:sha256(parts...).
func Key(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", kind, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
