package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kafkaBridge/internal/domain"
)

// collect запускает консьюмера и складывает значения сообщений.
type collector struct {
	mu   sync.Mutex
	vals []string
}

func (c *collector) handle(_ context.Context, msg domain.Message) error {
	c.mu.Lock()
	c.vals = append(c.vals, string(msg.Value))
	c.mu.Unlock()
	return nil
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vals)
}

func (c *collector) values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.vals...)
}

func run(t *testing.T, ctx context.Context, c *Consumer, col *collector) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, col.handle) }()
	return done
}

func TestBroker_RoundTripVerbatim(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := &collector{}
	done := run(t, ctx, b.Consumer("locations", "g1", nil), col)

	payload := []byte("12.34,56.78")
	require.NoError(t, b.Publish(ctx, "locations", payload))
	payload[0] = 'X' // брокер хранит копию

	require.Eventually(t, func() bool { return col.len() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"12.34,56.78"}, col.values())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestBroker_BacklogDeliveredToLateSubscriber(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, b.Publish(ctx, "locations", []byte("1,1")))
	require.NoError(t, b.Publish(ctx, "locations", []byte("2,2")))

	col := &collector{}
	run(t, ctx, b.Consumer("locations", "late", nil), col)

	require.Eventually(t, func() bool { return col.len() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"1,1", "2,2"}, col.values())
}

func TestBroker_GroupsShareAndFanOut(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupA1, groupA2, groupB := &collector{}, &collector{}, &collector{}
	run(t, ctx, b.Consumer("locations", "a", nil), groupA1)
	run(t, ctx, b.Consumer("locations", "a", nil), groupA2)
	run(t, ctx, b.Consumer("locations", "b", nil), groupB)

	const n = 50
	for i := 0; i < n; i++ {
		require.NoError(t, b.Publish(ctx, "locations", []byte(fmt.Sprintf("%d,0", i))))
	}

	require.Eventually(t, func() bool {
		return groupA1.len()+groupA2.len() == n && groupB.len() == n
	}, time.Second, time.Millisecond)

	seen := make(map[string]int)
	for _, v := range append(groupA1.values(), groupA2.values()...) {
		seen[v]++
	}
	assert.Len(t, seen, n, "each message delivered once per group")
}

func TestBroker_TopicsIsolated(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := &collector{}
	run(t, ctx, b.Consumer("locations", "g", nil), col)

	require.NoError(t, b.Publish(ctx, "other", []byte("9,9")))
	require.NoError(t, b.Publish(ctx, "locations", []byte("1,1")))

	require.Eventually(t, func() bool { return col.len() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"1,1"}, col.values())
}

func TestBroker_Close(t *testing.T) {
	b := New()
	ctx := context.Background()

	col := &collector{}
	done := run(t, ctx, b.Consumer("locations", "g", nil), col)

	require.NoError(t, b.Ping(ctx))
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.ErrorIs(t, b.Publish(ctx, "locations", []byte("1,1")), ErrClosed)
	assert.ErrorIs(t, b.Ping(ctx), ErrClosed)
}

func TestBroker_PublishCancelledContext(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Publish(ctx, "locations", []byte("1,1")), context.Canceled)
}

func TestBroker_RunStopsOnCancelWithBacklog(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, b.Publish(ctx, "locations", []byte(fmt.Sprintf("%d,0", i))))
	}

	handled := 0
	err := b.Consumer("locations", "g", nil).Run(ctx, func(context.Context, domain.Message) error {
		handled++
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, handled)
}

// retained возвращает размер журнала топика и offset его первой записи.
func retained(b *Broker, name string) (size, base int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.topicLocked(name)
	return len(t.log), t.base
}

func TestBroker_TrimsReadEntries(t *testing.T) {
	b := New()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := &collector{}
	run(t, ctx, b.Consumer("locations", "g", nil), col)

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Publish(ctx, "locations", []byte(fmt.Sprintf("%d,0", i))))
	}
	require.Eventually(t, func() bool { return col.len() == 5 }, time.Second, time.Millisecond)

	size, base := retained(b, "locations")
	assert.Equal(t, 0, size)
	assert.Equal(t, 5, base)
}

func TestBroker_SlowGroupHoldsEntries(t *testing.T) {
	b := New()
	defer b.Close()
	ctx := context.Background()

	_, ok, _, err := b.next("locations", "slow")
	require.NoError(t, err)
	require.False(t, ok)

	for i := 0; i < 3; i++ {
		require.NoError(t, b.Publish(ctx, "locations", []byte(fmt.Sprintf("%d,0", i))))
	}
	for i := 0; i < 3; i++ {
		_, ok, _, err := b.next("locations", "fast")
		require.NoError(t, err)
		require.True(t, ok)
	}

	size, _ := retained(b, "locations")
	assert.Equal(t, 3, size)

	for i := 0; i < 3; i++ {
		msg, ok, _, err := b.next("locations", "slow")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(i), msg.Offset)
	}
	size, base := retained(b, "locations")
	assert.Equal(t, 0, size)
	assert.Equal(t, 3, base)
}

func TestBroker_BacklogCapped(t *testing.T) {
	b := NewWithBacklog(3)
	defer b.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Publish(ctx, "locations", []byte(fmt.Sprintf("%d,%d", i, i))))
	}
	size, base := retained(b, "locations")
	assert.Equal(t, 3, size)
	assert.Equal(t, 2, base)

	var got []string
	var offsets []int64
	for {
		msg, ok, _, err := b.next("locations", "late")
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, string(msg.Value))
		offsets = append(offsets, msg.Offset)
	}
	assert.Equal(t, []string{"2,2", "3,3", "4,4"}, got)
	assert.Equal(t, []int64{2, 3, 4}, offsets)
}
