// Package store implements the connector to the Redis backend that holds the
// visit counter.  It wraps a pooled go-redis client, classifies failures into
// connection and operation errors, and lazily caches the backend version
// string on the first successful contact.
package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UnsetVersion is reported until the backend version has been captured.
const UnsetVersion = "unset"

// Store is the single shared connector to the counter backend.  It is safe
// for concurrent use: the underlying client pools connections and the version
// cache is an atomic pointer.
type Store struct {
	rdb *redis.Client
	log *zap.Logger

	// version is written at most once per process.  Concurrent first
	// writers may each fetch the same observed value; readers see either
	// nil (report UnsetVersion) or a complete string, never a torn write.
	version atomic.Pointer[string]
}

// New wraps an already constructed client.  The client is taken as an
// argument rather than built here so tests can point the store at an
// in-process server.
func New(rdb *redis.Client, log *zap.Logger) *Store {
	return &Store{rdb: rdb, log: log}
}

// Ping issues a liveness probe bounded by the client timeouts.  On the first
// success since process start it also captures the backend version; a failed
// version fetch is logged as a warning and never fails the ping.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return classify(err)
	}
	s.captureVersion(ctx)
	return nil
}

// Increment atomically increments the named counter and returns the new
// value.  Redis creates the key at 1 on the first INCR, so no separate
// initialisation is needed.  There is no automatic retry; the caller decides
// how to surface a failure.
func (s *Store) Increment(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, classify(err)
	}
	s.captureVersion(ctx)
	return n, nil
}

// Version returns the cached backend version, or UnsetVersion if no contact
// has succeeded yet.  Once set the value is stable for the process lifetime.
func (s *Store) Version() string {
	if v := s.version.Load(); v != nil {
		return *v
	}
	return UnsetVersion
}

// Close releases the client's pooled connections.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// captureVersion caches the backend version after a successful contact.
// The race between concurrent first callers is benign: each fetches the same
// server's version and CompareAndSwap keeps the first complete value.  On
// fetch failure the cache stays unset so a later contact can try again.
func (s *Store) captureVersion(ctx context.Context) {
	if s.version.Load() != nil {
		return
	}
	// Bare INFO on purpose: the un-sectioned reply carries redis_version
	// on real servers, and servers that reject section arguments (or omit
	// the field) still answer it, falling back to "unknown" below.
	info, err := s.rdb.Info(ctx).Result()
	if err != nil {
		s.log.Warn("could not fetch backend version", zap.Error(err))
		return
	}
	v := parseServerVersion(info)
	if s.version.CompareAndSwap(nil, &v) {
		s.log.Info("connected to backend", zap.String("redis_version", v))
	}
}

// parseServerVersion extracts the redis_version field from an INFO reply.
// Returns "unknown" when the field is missing.
func parseServerVersion(info string) string {
	for _, line := range strings.Split(info, "\n") {
		if rest, ok := strings.CutPrefix(line, "redis_version:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return "unknown"
}

// classify maps a driver error onto the store's error taxonomy.  Network
// failures, timeouts and canceled contexts all mean the call never completed
// against the backend; anything else means it answered but the command
// failed.
func classify(err error) error {
	var ne net.Error
	if errors.As(err, &ne) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("%w: %v", ErrOperation, err)
}
