package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestStore starts an in-process Redis and points a store at it.
func newTestStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	s := New(client, zap.NewNop())
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestIncrementStartsAtOne(t *testing.T) {
	_, s := newTestStore(t)

	n, err := s.Increment(context.Background(), "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIncrementMonotonic(t *testing.T) {
	_, s := newTestStore(t)

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.Increment(context.Background(), "counter")
		require.NoError(t, err)
		assert.Equal(t, prev+1, n)
		prev = n
	}
}

func TestIncrementExistingValue(t *testing.T) {
	mr, s := newTestStore(t)
	require.NoError(t, mr.Set("counter", "41"))

	n, err := s.Increment(context.Background(), "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestPing(t *testing.T) {
	_, s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestPingUnreachable(t *testing.T) {
	mr, s := newTestStore(t)
	mr.Close()

	err := s.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestIncrementUnreachable(t *testing.T) {
	mr, s := newTestStore(t)
	mr.Close()

	_, err := s.Increment(context.Background(), "counter")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestIncrementCommandFailure(t *testing.T) {
	mr, s := newTestStore(t)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	_, err := s.Increment(context.Background(), "counter")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperation)
	assert.NotErrorIs(t, err, ErrConnection)

	// A failed increment must not mutate the counter: once the backend
	// recovers the count picks up exactly where it was.
	mr.SetError("")
	n, err := s.Increment(context.Background(), "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIncrementCanceledContext(t *testing.T) {
	_, s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Increment(ctx, "counter")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestVersionDefaultsToUnset(t *testing.T) {
	_, s := newTestStore(t)
	assert.Equal(t, UnsetVersion, s.Version())
}

func TestVersionCapturedAfterPing(t *testing.T) {
	_, s := newTestStore(t)

	require.NoError(t, s.Ping(context.Background()))
	got := s.Version()
	assert.NotEqual(t, UnsetVersion, got)

	// Once captured the value is stable for the process lifetime.
	require.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, got, s.Version())
}

func TestVersionCapturedAfterIncrement(t *testing.T) {
	_, s := newTestStore(t)

	_, err := s.Increment(context.Background(), "counter")
	require.NoError(t, err)
	assert.NotEqual(t, UnsetVersion, s.Version())
}

func TestVersionUnsetAfterFailedContact(t *testing.T) {
	mr, s := newTestStore(t)
	mr.Close()

	_ = s.Ping(context.Background())
	assert.Equal(t, UnsetVersion, s.Version())
}

func TestParseServerVersion(t *testing.T) {
	tests := []struct {
		name string
		info string
		want string
	}{
		{
			name: "typical reply",
			info: "# Server\r\nredis_version:7.2.4\r\nredis_mode:standalone\r\n",
			want: "7.2.4",
		},
		{
			name: "field missing",
			info: "# Server\r\nredis_mode:standalone\r\n",
			want: "unknown",
		},
		{
			name: "empty reply",
			info: "",
			want: "unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseServerVersion(tt.info))
		})
	}
}
