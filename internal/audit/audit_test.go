package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryPublisherStampsEvents(t *testing.T) {
	p := NewMemoryPublisher()
	require.NoError(t, p.Publish(context.Background(), Event{Module: "claim", Outcome: "success"}))

	events := p.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, "claim", events[0].Module)
}

func TestLogPublisherWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), Event{Action: ActionExchange, Module: "insights", Outcome: "failure", Reason: "cert not found"}))
	assert.Contains(t, buf.String(), `"module":"insights"`)
	assert.Contains(t, buf.String(), `"reason":"cert not found"`)
}

func TestAsyncPublisherForwardsAndDrains(t *testing.T) {
	sink := NewMemoryPublisher()
	p := NewAsyncPublisher(sink, 8, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Publish(context.Background(), Event{Module: "claim"}))
	}
	assert.Eventually(t, func() bool { return len(sink.Events()) == 3 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestAsyncPublisherDropsWhenFull(t *testing.T) {
	p := NewAsyncPublisher(NewMemoryPublisher(), 1, slog.New(slog.DiscardHandler))

	require.NoError(t, p.Publish(context.Background(), Event{Module: "a"}))
	require.NoError(t, p.Publish(context.Background(), Event{Module: "b"}))
	assert.Equal(t, int64(1), p.Dropped())
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, Event) error { return errors.New("broker down") }

func TestAsyncPublisherSurvivesSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewAsyncPublisher(failingPublisher{}, 4, slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, p.Publish(context.Background(), Event{Module: "claim"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
	assert.Contains(t, buf.String(), "audit publish failed")
}

// blockingPublisher holds every publish until its context is done.
type blockingPublisher struct{}

func (blockingPublisher) Publish(ctx context.Context, _ Event) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestAsyncPublisherDrainIsBounded(t *testing.T) {
	p := NewAsyncPublisher(blockingPublisher{}, 4, slog.New(slog.DiscardHandler), WithDrainTimeout(50*time.Millisecond))
	require.NoError(t, p.Publish(context.Background(), Event{Module: "claim"}))
	require.NoError(t, p.Publish(context.Background(), Event{Module: "consent"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the drain timeout")
	}
}

func TestAsyncPublisherDropsWhatTheDrainCannotDeliver(t *testing.T) {
	p := NewAsyncPublisher(blockingPublisher{}, 4, slog.New(slog.DiscardHandler), WithDrainTimeout(20*time.Millisecond))
	for _, m := range []string{"claim", "consent", "insights"} {
		require.NoError(t, p.Publish(context.Background(), Event{Module: m}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	p.drain(ctx)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int64(2), p.Dropped())
	assert.Empty(t, p.inbox)
}
