package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/pkg/metrics"
)

// ChannelListener is the LISTEN/UNLISTEN surface the broker drives as
// subscribers come and go. Implemented by NotifyListener.
type ChannelListener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Broker fans NOTIFY envelopes out to in-process SSE subscribers.
// Each Go process (pod) has one Broker instance.
//
// Delivery to a subscriber is bounded by its buffer. When the buffer fills,
// the oldest buffered event is discarded and a synthetic "dropped" event is
// delivered before the next live one, so slow consumers see an explicit gap
// marker instead of silently missing events. A run's durable history remains
// complete in the events table.
type Broker struct {
	// Subscriptions: run channel → subscription id → subscription
	subs map[string]map[string]*Subscription
	mu   sync.RWMutex

	// listener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   ChannelListener
	listenerMu sync.RWMutex

	bufferSize int
}

// Subscription is one consumer's bounded event feed.
type Subscription struct {
	ID      string
	runID   string
	ch      chan Envelope
	mu      sync.Mutex
	pending int  // drops since the last marker was delivered
	closed  bool
}

// NewBroker creates a Broker with the given per-subscriber buffer size.
func NewBroker(bufferSize int) *Broker {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Broker{
		subs:       make(map[string]map[string]*Subscription),
		bufferSize: bufferSize,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Broker and NotifyListener exist.
func (b *Broker) SetListener(l ChannelListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers a consumer for a run's events. The first subscriber on
// a run triggers LISTEN on its channel.
func (b *Broker) Subscribe(ctx context.Context, runID string) (*Subscription, error) {
	sub := &Subscription{
		ID:    uuid.New().String(),
		runID: runID,
		ch:    make(chan Envelope, b.bufferSize),
	}
	channel := RunChannel(runID)

	b.mu.Lock()
	first := len(b.subs[channel]) == 0
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[string]*Subscription)
	}
	b.subs[channel][sub.ID] = sub
	b.mu.Unlock()

	if first {
		if err := b.listen(ctx, channel); err != nil {
			b.remove(sub)
			return nil, err
		}
	}
	return sub, nil
}

// Unsubscribe removes a consumer. The last subscriber on a run triggers
// UNLISTEN on its channel.
func (b *Broker) Unsubscribe(ctx context.Context, sub *Subscription) {
	if sub == nil {
		return
	}
	last := b.remove(sub)
	if last {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			if err := l.Unsubscribe(ctx, RunChannel(sub.runID)); err != nil {
				slog.Warn("UNLISTEN failed", "run_id", sub.runID, "error", err)
			}
		}
	}
}

// Events returns the subscription's receive channel.
func (s *Subscription) Events() <-chan Envelope {
	return s.ch
}

// Broadcast dispatches a raw NOTIFY payload to all subscribers of a channel.
// Called by the NotifyListener receive loop.
func (b *Broker) Broadcast(channel string, payload []byte) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		slog.Warn("Discarding malformed NOTIFY payload", "channel", channel, "error", err)
		return
	}

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs[channel]))
	for _, sub := range b.subs[channel] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.offer(env)
	}
}

// SubscriberCount returns the number of subscribers on a run's channel.
func (b *Broker) SubscriberCount(runID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[RunChannel(runID)])
}

// Close closes a subscription's channel. Must only be called after the
// subscription is unsubscribed, by the goroutine that owns delivery.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// offer delivers an event, dropping the oldest buffered one on overflow.
// A pending drop is surfaced as a synthetic marker before the next delivery.
func (s *Subscription) offer(env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.pending > 0 {
		marker := Envelope{
			RunID:     s.runID,
			Type:      EventDropped,
			Payload:   map[string]any{"count": s.pending},
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		}
		if s.trySend(marker) {
			s.pending = 0
		}
	}

	if s.trySend(env) {
		return
	}
	// Buffer full: discard the oldest, count it, retry once.
	select {
	case <-s.ch:
		s.pending++
		metrics.EventsDropped.Inc()
	default:
	}
	if !s.trySend(env) {
		s.pending++
		metrics.EventsDropped.Inc()
	}
}

func (s *Subscription) trySend(env Envelope) bool {
	select {
	case s.ch <- env:
		return true
	default:
		return false
	}
}

// remove deletes the subscription and reports whether it was the channel's
// last subscriber.
func (b *Broker) remove(sub *Subscription) bool {
	channel := RunChannel(sub.runID)

	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.subs[channel]; ok {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(b.subs, channel)
			return true
		}
	}
	return false
}

func (b *Broker) listen(ctx context.Context, channel string) error {
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return nil // standalone mode (tests)
	}
	return l.Subscribe(ctx, channel)
}
