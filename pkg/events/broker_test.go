package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListener struct {
	listens   []string
	unlistens []string
}

func (f *fakeListener) Subscribe(_ context.Context, channel string) error {
	f.listens = append(f.listens, channel)
	return nil
}

func (f *fakeListener) Unsubscribe(_ context.Context, channel string) error {
	f.unlistens = append(f.unlistens, channel)
	return nil
}

func broadcastEvent(b *Broker, runID string, seq int, eventType string) {
	raw, _ := json.Marshal(Envelope{
		RunID: runID,
		Seq:   seq,
		Type:  eventType,
	})
	b.Broadcast(RunChannel(runID), raw)
}

func TestBroker_FanOut(t *testing.T) {
	b := NewBroker(8)
	ctx := context.Background()

	sub1, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)
	sub2, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)
	other, err := b.Subscribe(ctx, "run-2")
	require.NoError(t, err)

	broadcastEvent(b, "run-1", 1, EventTaskStarted)

	for _, sub := range []*Subscription{sub1, sub2} {
		ev := <-sub.Events()
		assert.Equal(t, EventTaskStarted, ev.Type)
		assert.Equal(t, 1, ev.Seq)
	}

	// run-2's subscriber sees nothing.
	select {
	case ev := <-other.Events():
		t.Fatalf("unexpected event on run-2 subscription: %+v", ev)
	default:
	}
}

func TestBroker_DropOldestWithMarker(t *testing.T) {
	b := NewBroker(2)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)

	// Buffer holds 2; the third broadcast evicts seq 1.
	broadcastEvent(b, "run-1", 1, EventToolOutput)
	broadcastEvent(b, "run-1", 2, EventToolOutput)
	broadcastEvent(b, "run-1", 3, EventToolOutput)

	ev := <-sub.Events()
	assert.Equal(t, 2, ev.Seq)
	ev = <-sub.Events()
	assert.Equal(t, 3, ev.Seq)

	// Next delivery is preceded by the drop marker.
	broadcastEvent(b, "run-1", 4, EventToolOutput)
	ev = <-sub.Events()
	require.Equal(t, EventDropped, ev.Type)
	assert.Equal(t, 1, ev.Payload["count"])
	ev = <-sub.Events()
	assert.Equal(t, 4, ev.Seq)
}

func TestBroker_ListenLifecycle(t *testing.T) {
	b := NewBroker(8)
	fl := &fakeListener{}
	b.SetListener(fl)
	ctx := context.Background()

	sub1, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)
	sub2, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)

	// Only the first subscriber triggers LISTEN.
	assert.Equal(t, []string{"run:run-1"}, fl.listens)
	assert.Equal(t, 2, b.SubscriberCount("run-1"))

	b.Unsubscribe(ctx, sub1)
	assert.Empty(t, fl.unlistens)

	// Last subscriber out triggers UNLISTEN.
	b.Unsubscribe(ctx, sub2)
	assert.Equal(t, []string{"run:run-1"}, fl.unlistens)
	assert.Equal(t, 0, b.SubscriberCount("run-1"))
}

func TestBroker_DiscardsMalformedPayload(t *testing.T) {
	b := NewBroker(8)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)

	b.Broadcast(RunChannel("run-1"), []byte("not json"))

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}

func TestBroker_ClosedSubscriptionIgnoresOffers(t *testing.T) {
	b := NewBroker(2)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "run-1")
	require.NoError(t, err)
	b.Unsubscribe(ctx, sub)
	sub.Close()

	// Must not panic on a closed channel.
	broadcastEvent(b, "run-1", 1, EventMessage)
}
