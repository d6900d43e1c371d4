package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/pkg/events"
)

// ssePingInterval keeps idle connections alive through proxies.
const ssePingInterval = 15 * time.Second

// StreamEvents serves the run's event stream over SSE. A reconnecting client
// sends Last-Event-ID (or ?last_event_id=) and gets every persisted event
// after that seq before live delivery starts. The stream closes itself after
// stream_end.
func (s *Server) StreamEvents(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL",
			"message": "streaming unsupported",
		})
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := c.Request.Context()

	// Subscribe before the catchup read so nothing published in between is
	// missed; the seq filter below deduplicates the overlap.
	sub, err := s.broker.Subscribe(ctx, r.ID)
	if err != nil {
		return
	}
	defer func() {
		s.broker.Unsubscribe(ctx, sub)
		sub.Close()
	}()

	lastSeq := lastEventID(c)
	history, err := s.eventsSvc.Since(ctx, r.ID, lastSeq)
	if err != nil {
		return
	}
	for _, env := range history {
		if !writeEvent(c, flusher, env) {
			return
		}
		lastSeq = env.Seq
		if env.Type == events.EventStreamEnd {
			return
		}
	}

	ping := time.NewTicker(ssePingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case env, open := <-sub.Events():
			if !open {
				return
			}
			if env.Seq > 0 && env.Seq <= lastSeq {
				continue // already replayed during catchup
			}
			if env.Truncated {
				// Payload exceeded the NOTIFY limit; reload from the table.
				full, err := s.eventsSvc.Since(ctx, r.ID, env.Seq-1)
				if err != nil || len(full) == 0 {
					continue
				}
				env = full[0]
			}
			if !writeEvent(c, flusher, env) {
				return
			}
			if env.Seq > 0 {
				lastSeq = env.Seq
			}
			if env.Type == events.EventStreamEnd {
				return
			}
		}
	}
}

// writeEvent emits one SSE frame. Synthetic events (drop markers) carry no
// seq and therefore no id line.
func writeEvent(c *gin.Context, flusher http.Flusher, env events.Envelope) bool {
	data, err := json.Marshal(env)
	if err != nil {
		return true
	}
	if env.Seq > 0 {
		if _, err := fmt.Fprintf(c.Writer, "id: %d\n", env.Seq); err != nil {
			return false
		}
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", env.Type, data); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

// lastEventID resolves the client's resume position from the standard SSE
// header or a query parameter for clients that cannot set headers.
func lastEventID(c *gin.Context) int {
	raw := c.GetHeader("Last-Event-ID")
	if raw == "" {
		raw = c.Query("last_event_id")
	}
	if raw == "" {
		return 0
	}
	seq, err := strconv.Atoi(raw)
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}
