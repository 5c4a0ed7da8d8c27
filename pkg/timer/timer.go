// Package timer implements the deep-work tracking workflow: an explicit
// Idle -> Running -> Idle state machine whose stop step hands back a pending
// flow-capture that the caller resolves later (or never).
package timer

import (
	"errors"
	"time"

	"tableflip.dev/actionmenu/pkg/state"
)

// Flow ratings are a 1-5 self assessment.
const (
	MinFlow = 1
	MaxFlow = 5
)

// MaxManualLog bounds a manually logged block. Anything longer than half a
// day is a data-entry mistake, not a work session.
const MaxManualLog = 12 * time.Hour

var (
	ErrAlreadyRunning = errors.New("timer: a block is already running")
	ErrNotRunning     = errors.New("timer: no block is running")
	ErrNoActivity     = errors.New("timer: activity required")
	ErrFlowRange      = errors.New("timer: flow rating must be between 1 and 5")
	ErrDurationRange  = errors.New("timer: manual duration must be within (0, 12] hours")
	ErrUnknownToken   = errors.New("timer: no pending capture for token")
)

// untitledActivity labels a stopped block whose activity was lost, e.g. a
// hand-edited document with the field blanked.
const untitledActivity = "Untitled session"

// Workflow drives the timer state machine over the persisted TimerState. It
// only mutates State; persisting the surrounding aggregate is the caller's
// job. At most one block runs at a time, but any number of pending captures
// may be outstanding.
type Workflow struct {
	State *state.TimerState
	Clock func() time.Time // test hook; nil means wall clock
}

func (w *Workflow) now() state.Timestamp {
	if w.Clock != nil {
		return state.Timestamp{Time: w.Clock().UTC().Truncate(time.Microsecond)}
	}
	return state.Now()
}

// Running reports whether a block is currently being tracked.
func (w *Workflow) Running() bool {
	return w.State.Running != nil
}

// Start begins tracking a block, capturing the pre-block flow and emotion.
// Rejected while a block is already running; the new parameters are discarded.
func (w *Workflow) Start(activity, category string, flowBefore int, emotionBefore string) error {
	if w.State.Running != nil {
		return ErrAlreadyRunning
	}
	if activity == "" {
		return ErrNoActivity
	}
	if flowBefore < MinFlow || flowBefore > MaxFlow {
		return ErrFlowRange
	}
	w.State.Running = &state.RunningTimer{
		Activity:      activity,
		Category:      category,
		FlowBefore:    flowBefore,
		EmotionBefore: emotionBefore,
		StartedAt:     w.now(),
	}
	return nil
}

// Stop ends the running block. It returns the finished TimeEntry and the
// pending flow-capture seeded with the pre-block context; the caller appends
// both to the aggregate and persists.
func (w *Workflow) Stop() (*state.TimeEntry, *state.PendingCapture, error) {
	running := w.State.Running
	if running == nil {
		return nil, nil, ErrNotRunning
	}
	activity := running.Activity
	if activity == "" {
		activity = untitledActivity
	}
	entry := state.NewTimeEntry(activity, running.Category, running.StartedAt, w.now())
	pending := w.addPending(entry, running.FlowBefore, running.EmotionBefore)
	w.State.Running = nil
	return entry, pending, nil
}

// ManualLog records a block after the fact, independent of the running state:
// start is synthesized as now minus d, end as now. Duration must lie in
// (0, 12] hours; nothing is created for out-of-range input.
func (w *Workflow) ManualLog(activity, category string, d time.Duration, flowBefore int, emotionBefore string) (*state.TimeEntry, *state.PendingCapture, error) {
	if activity == "" {
		return nil, nil, ErrNoActivity
	}
	if d <= 0 || d > MaxManualLog {
		return nil, nil, ErrDurationRange
	}
	if flowBefore < MinFlow || flowBefore > MaxFlow {
		return nil, nil, ErrFlowRange
	}
	end := w.now()
	start := state.Timestamp{Time: end.Add(-d)}
	entry := state.NewTimeEntry(activity, category, start, end)
	pending := w.addPending(entry, flowBefore, emotionBefore)
	return entry, pending, nil
}

// Resolve removes and returns the pending capture for token, whether the
// caller intends to submit a flow log or skip it. Skipping is a normal
// outcome, not a failure.
func (w *Workflow) Resolve(token string) (*state.PendingCapture, error) {
	for i, pending := range w.State.PendingCaptures {
		if pending.Token == token {
			w.State.PendingCaptures = append(
				w.State.PendingCaptures[:i], w.State.PendingCaptures[i+1:]...)
			return &pending, nil
		}
	}
	return nil, ErrUnknownToken
}

func (w *Workflow) addPending(entry *state.TimeEntry, flowBefore int, emotionBefore string) *state.PendingCapture {
	pending := state.PendingCapture{
		Token:         state.NewID(),
		TimeEntryID:   entry.ID,
		Activity:      entry.Activity,
		FlowBefore:    flowBefore,
		EmotionBefore: emotionBefore,
	}
	w.State.PendingCaptures = append(w.State.PendingCaptures, pending)
	return &pending
}
