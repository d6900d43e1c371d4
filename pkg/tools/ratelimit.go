package tools

import (
	"sync"
	"time"

	"github.com/taskfleet/maestro/pkg/config"
)

// rateLimiter enforces per-minute and per-hour sliding windows keyed by
// (tenant_id, tool_name). Windows are shared across workers in a process;
// cross-process fairness is handled upstream at ingress.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*slidingWindow
	now     func() time.Time
}

type slidingWindow struct {
	events []time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*slidingWindow),
		now:     time.Now,
	}
}

// allow records an invocation when both windows have room. When a window is
// exhausted it returns false plus the wait until the oldest relevant event
// expires.
func (l *rateLimiter) allow(tenantID, toolName string, spec config.RateLimitSpec) (retryAfter time.Duration, ok bool) {
	if spec.PerMinute <= 0 && spec.PerHour <= 0 {
		return 0, true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := tenantID + "/" + toolName
	w, exists := l.windows[key]
	if !exists {
		w = &slidingWindow{}
		l.windows[key] = w
	}

	now := l.now()
	w.prune(now.Add(-time.Hour))

	if spec.PerMinute > 0 {
		cutoff := now.Add(-time.Minute)
		inMinute := w.countSince(cutoff)
		if inMinute >= spec.PerMinute {
			oldest := w.oldestSince(cutoff)
			return oldest.Add(time.Minute).Sub(now), false
		}
	}
	if spec.PerHour > 0 && len(w.events) >= spec.PerHour {
		return w.events[0].Add(time.Hour).Sub(now), false
	}

	w.events = append(w.events, now)
	return 0, true
}

// prune drops events older than the hour horizon. Events are appended in
// time order, so the slice stays sorted.
func (w *slidingWindow) prune(horizon time.Time) {
	i := 0
	for i < len(w.events) && !w.events[i].After(horizon) {
		i++
	}
	if i > 0 {
		w.events = append(w.events[:0], w.events[i:]...)
	}
}

func (w *slidingWindow) countSince(cutoff time.Time) int {
	n := 0
	for i := len(w.events) - 1; i >= 0; i-- {
		if w.events[i].After(cutoff) {
			n++
		} else {
			break
		}
	}
	return n
}

func (w *slidingWindow) oldestSince(cutoff time.Time) time.Time {
	for _, t := range w.events {
		if t.After(cutoff) {
			return t
		}
	}
	return cutoff
}
