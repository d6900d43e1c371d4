// Package lifecycle defines the run state machine: the closed set of legal
// status transitions and their guards. Persisting a transition is the job of
// services.RunService; this package only answers "is this edge legal".
package lifecycle

import (
	"github.com/taskfleet/maestro/ent/run"
)

// transitions is the complete edge set. Any pair absent here fails with
// INVALID_TRANSITION. Terminal states have no outgoing edges.
var transitions = map[run.Status][]run.Status{
	run.StatusPending: {
		run.StatusQueued,
		run.StatusCancelled,
		run.StatusFailed,
	},
	run.StatusQueued: {
		run.StatusPlanning,
		run.StatusCancelled,
		run.StatusTimeout,
	},
	run.StatusPlanning: {
		run.StatusExecuting,
		run.StatusFailed,
		run.StatusCancelled,
	},
	run.StatusExecuting: {
		run.StatusExecuting, // self-edge on step progress
		run.StatusPaused,
		run.StatusWaitingUser,
		run.StatusCompleted,
		run.StatusFailed,
		run.StatusCancelled,
		run.StatusTimeout,
	},
	run.StatusPaused: {
		run.StatusExecuting,
		run.StatusCancelled,
	},
	run.StatusWaitingUser: {
		run.StatusExecuting,
		run.StatusCancelled,
		run.StatusTimeout,
	},
}

// CanTransition reports whether from → to is a legal edge.
func CanTransition(from, to run.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing edges.
func Terminal(s run.Status) bool {
	switch s {
	case run.StatusCompleted, run.StatusFailed, run.StatusCancelled, run.StatusTimeout:
		return true
	}
	return false
}

// Active reports whether a worker currently owns the run.
func Active(s run.Status) bool {
	switch s {
	case run.StatusPlanning, run.StatusExecuting:
		return true
	}
	return false
}

// Resumable reports whether a resume request may move the run back to
// executing.
func Resumable(s run.Status) bool {
	return s == run.StatusWaitingUser || s == run.StatusPaused
}
