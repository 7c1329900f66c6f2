package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingProducer returns value and counts its calls.
func countingProducer(value string, calls *int32) Producer[string] {
	return func(context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestMemo_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("miss invokes producer once and hit reuses the value", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		var calls int32

		v1, err := m.Get(ctx, "k", countingProducer("posts", &calls))
		require.NoError(t, err)
		v2, err := m.Get(ctx, "k", countingProducer("posts", &calls))
		require.NoError(t, err)

		assert.Equal(t, "posts", v1)
		assert.Equal(t, v1, v2)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("keys are independent", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		var calls int32

		_, _ = m.Get(ctx, "a", countingProducer("a", &calls))
		v, err := m.Get(ctx, "b", countingProducer("b", &calls))

		require.NoError(t, err)
		assert.Equal(t, "b", v)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("expired entry is produced again", func(t *testing.T) {
		clock := newFakeClock()
		m := NewMemo[string](5*time.Minute, WithClock(clock.Now))
		var calls int32

		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))
		clock.Advance(5*time.Minute - time.Second)
		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "still fresh just before the TTL")

		clock.Advance(time.Second)
		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "stale at exactly the TTL")
	})

	t.Run("failures are not memoized", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		boom := errors.New("content unavailable")
		var calls int32

		failing := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "", boom
		}

		_, err := m.Get(ctx, "k", failing)
		assert.Same(t, boom, err)
		assert.Zero(t, m.Stats().Size)

		v, err := m.Get(ctx, "k", countingProducer("ok", &calls))
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("failure keeps the expired entry untouched", func(t *testing.T) {
		clock := newFakeClock()
		m := NewMemo[string](time.Minute, WithClock(clock.Now))
		var calls int32

		_, _ = m.Get(ctx, "k", countingProducer("old", &calls))
		clock.Advance(2 * time.Minute)

		_, err := m.Get(ctx, "k", func(context.Context) (string, error) {
			return "", errors.New("down")
		})
		require.Error(t, err)

		stats := m.Stats()
		require.Len(t, stats.Entries, 1)
		assert.Equal(t, int64(120), stats.Entries[0].Age, "timestamp not refreshed")

		v, err := m.Get(ctx, "k", countingProducer("new", &calls))
		require.NoError(t, err)
		assert.Equal(t, "new", v)
	})
}

func TestMemo_Evict(t *testing.T) {
	ctx := context.Background()

	t.Run("evicted key is produced again", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		var calls int32

		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))
		m.Evict("k")
		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("evicting a missing key is a no-op", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		var calls int32
		_, _ = m.Get(ctx, "k", countingProducer("v", &calls))

		m.Evict("missing")
		m.Evict("missing")

		assert.Equal(t, []string{"k"}, m.Stats().Keys)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		m := NewMemo[string](time.Minute)
		var calls int32
		_, _ = m.Get(ctx, "a", countingProducer("a", &calls))
		_, _ = m.Get(ctx, "b", countingProducer("b", &calls))

		m.Clear()
		m.Clear()

		stats := m.Stats()
		assert.Zero(t, stats.Size)
		assert.Empty(t, stats.Keys)
		assert.Empty(t, stats.Entries)
	})
}

func TestMemo_Stats(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	m := NewMemo[int](time.Hour, WithClock(clock.Now), WithName("test"))

	produce := func(n int) Producer[int] {
		return func(context.Context) (int, error) { return n, nil }
	}

	_, _ = m.Get(ctx, "posts", produce(1))
	clock.Advance(1500 * time.Millisecond)
	_, _ = m.Get(ctx, "notes", produce(2))
	clock.Advance(2 * time.Second)

	stats := m.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, []string{"posts", "notes"}, stats.Keys)
	assert.Equal(t, []EntryStat{
		{Key: "posts", Age: 3},
		{Key: "notes", Age: 2},
	}, stats.Entries)

	m.Evict("posts")
	assert.Equal(t, []string{"notes"}, m.Stats().Keys)
}

func TestMemo_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemo[string](0).TTL())
	assert.Equal(t, 5*time.Minute, DefaultTTL)
	assert.Equal(t, time.Second, NewMemo[string](time.Second).TTL())
}

func TestMemo_ConcurrentMisses(t *testing.T) {
	ctx := context.Background()

	run := func(m *Memo[string]) int32 {
		var calls int32
		release := make(chan struct{})
		producer := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return "v", nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := m.Get(ctx, "k", producer)
				assert.NoError(t, err)
				assert.Equal(t, "v", v)
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()
		return atomic.LoadInt32(&calls)
	}

	t.Run("without single flight every miss may produce", func(t *testing.T) {
		calls := run(NewMemo[string](time.Minute))
		assert.GreaterOrEqual(t, calls, int32(1))
		assert.LessOrEqual(t, calls, int32(8))
	})

	t.Run("single flight coalesces misses", func(t *testing.T) {
		calls := run(NewMemo[string](time.Minute, WithSingleFlight()))
		assert.Equal(t, int32(1), calls)
	})
}

func TestMemo_NilInterfaceValue(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "direct"},
		{name: "single flight", opts: []Option{WithSingleFlight()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemo[error](time.Minute, tt.opts...)
			var calls int32
			producer := func(context.Context) (error, error) {
				atomic.AddInt32(&calls, 1)
				return nil, nil
			}

			v, err := m.Get(context.Background(), "k", producer)
			require.NoError(t, err)
			assert.Nil(t, v)

			v, err = m.Get(context.Background(), "k", producer)
			require.NoError(t, err)
			assert.Nil(t, v)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a nil value is still cached")
		})
	}
}

func TestMemo_ImplementsInterfaces(t *testing.T) {
	var _ Cache[string] = NewMemo[string](time.Minute)
	var _ Inspector = NewMemo[[]int](time.Minute)
}
