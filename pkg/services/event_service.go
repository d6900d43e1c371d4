package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/event"
	"github.com/taskfleet/maestro/pkg/events"
)

// EventService reads back persisted events for SSE catchup and conversation
// reconstruction. Writing goes through events.Publisher.
type EventService struct {
	client *ent.Client
}

// NewEventService creates the event service.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Since returns the run's events with seq > afterSeq in order. Used when an
// SSE consumer reconnects with Last-Event-ID, and to fetch the full payload
// of a truncated NOTIFY envelope.
func (s *EventService) Since(ctx context.Context, runID string, afterSeq int) ([]events.Envelope, error) {
	rows, err := s.client.Event.Query().
		Where(event.RunIDEQ(runID), event.SeqGT(afterSeq)).
		Order(ent.Asc(event.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	out := make([]events.Envelope, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.Envelope{
			RunID:     row.RunID,
			Seq:       row.Seq,
			Type:      row.EventType,
			Payload:   row.Payload,
			Timestamp: row.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out, nil
}

// Messages returns the run's message events in order, for rebuilding the
// conversation (assistant messages and resume inputs both land here).
func (s *EventService) Messages(ctx context.Context, runID string) ([]events.Envelope, error) {
	rows, err := s.client.Event.Query().
		Where(event.RunIDEQ(runID), event.EventTypeEQ(events.EventMessage)).
		Order(ent.Asc(event.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read message events: %w", err)
	}

	out := make([]events.Envelope, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.Envelope{
			RunID:   row.RunID,
			Seq:     row.Seq,
			Type:    row.EventType,
			Payload: row.Payload,
		})
	}
	return out, nil
}
