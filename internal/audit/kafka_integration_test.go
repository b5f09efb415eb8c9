//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"trustedform/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	broker := containers.NewRedpandaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pub, err := NewKafkaPublisher([]string{broker.SeedBroker}, "trustedform.audit", slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { _ = pub.Close(ctx) }()

	require.NoError(t, pub.EnsureTopic(ctx, 1, 1))
	require.NoError(t, pub.EnsureTopic(ctx, 1, 1), "existing topic is not an error")
	require.NoError(t, pub.Publish(ctx, Event{Action: ActionExchange, Module: "claim", Outcome: "success"}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.SeedBroker),
		kgo.ConsumeTopics("trustedform.audit"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())

	var got Event
	records := fetches.Records()
	require.Len(t, records, 1)
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, "claim", string(records[0].Key))
	assert.Equal(t, "success", got.Outcome)
}
