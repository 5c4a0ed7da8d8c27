package timer

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/actionmenu/pkg/state"
)

func testClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestStartStop(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	w := &Workflow{State: &state.TimerState{}, Clock: testClock(start)}

	if err := w.Start("draft chapter", "Creative", 4, "Excited"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !w.Running() {
		t.Fatalf("expected running after start")
	}

	w.Clock = testClock(start.Add(50 * time.Minute))
	entry, pending, err := w.Stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if w.Running() {
		t.Fatalf("expected idle after stop")
	}
	if entry.Activity != "draft chapter" || entry.Category != "Creative" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if got := entry.DurationHours(); got != 0.83 {
		t.Fatalf("expected 0.83 hours, got %v", got)
	}
	if pending.TimeEntryID != entry.ID {
		t.Fatalf("pending should reference the entry")
	}
	if pending.FlowBefore != 4 || pending.EmotionBefore != "Excited" {
		t.Fatalf("pending should carry pre-block context: %+v", pending)
	}
	if len(w.State.PendingCaptures) != 1 {
		t.Fatalf("expected one outstanding capture")
	}
}

func TestStopWithoutStart(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	if _, _, err := w.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
}

func TestDoubleStartDiscardsNewParams(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	if err := w.Start("first", "Working", 3, "Calm"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := w.Start("second", "Body", 5, "Energized"); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
	if w.State.Running.Activity != "first" {
		t.Fatalf("second start should not touch the running block")
	}
}

func TestStartValidation(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	if err := w.Start("", "Working", 3, ""); !errors.Is(err, ErrNoActivity) {
		t.Fatalf("expected ErrNoActivity, got %v", err)
	}
	if err := w.Start("x", "Working", 0, ""); !errors.Is(err, ErrFlowRange) {
		t.Fatalf("expected ErrFlowRange, got %v", err)
	}
	if err := w.Start("x", "Working", 6, ""); !errors.Is(err, ErrFlowRange) {
		t.Fatalf("expected ErrFlowRange, got %v", err)
	}
	if w.Running() {
		t.Fatalf("failed starts must leave the timer idle")
	}
}

func TestManualLog(t *testing.T) {
	end := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	w := &Workflow{State: &state.TimerState{}, Clock: testClock(end)}

	entry, pending, err := w.ManualLog("reviewed PRs", "Working", 90*time.Minute, 3, "Calm")
	if err != nil {
		t.Fatalf("manual log: %v", err)
	}
	if got := entry.DurationHours(); got != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got)
	}
	if !entry.End.Equal(end) {
		t.Fatalf("end should be now")
	}
	if !entry.Start.Equal(end.Add(-90 * time.Minute)) {
		t.Fatalf("start should be now minus duration")
	}
	if pending == nil || pending.Activity != "reviewed PRs" {
		t.Fatalf("manual log should leave a pending capture")
	}
}

func TestManualLogBounds(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	if _, _, err := w.ManualLog("x", "Working", 0, 3, ""); !errors.Is(err, ErrDurationRange) {
		t.Fatalf("expected ErrDurationRange for zero, got %v", err)
	}
	if _, _, err := w.ManualLog("x", "Working", 13*time.Hour, 3, ""); !errors.Is(err, ErrDurationRange) {
		t.Fatalf("expected ErrDurationRange for 13h, got %v", err)
	}
	if _, _, err := w.ManualLog("x", "Working", 12*time.Hour, 3, ""); err != nil {
		t.Fatalf("12h exactly should be accepted, got %v", err)
	}
}

func TestManualLogWhileRunning(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	if err := w.Start("live block", "Working", 3, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, _, err := w.ManualLog("backfill", "Body", time.Hour, 3, ""); err != nil {
		t.Fatalf("manual log should be independent of the running block: %v", err)
	}
	if !w.Running() {
		t.Fatalf("running block must survive a manual log")
	}
}

func TestResolve(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	_, p1, err := w.ManualLog("one", "Working", time.Hour, 3, "")
	if err != nil {
		t.Fatalf("manual log: %v", err)
	}
	_, p2, err := w.ManualLog("two", "Working", time.Hour, 3, "")
	if err != nil {
		t.Fatalf("manual log: %v", err)
	}
	if len(w.State.PendingCaptures) != 2 {
		t.Fatalf("expected two outstanding captures")
	}

	got, err := w.Resolve(p1.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Token != p1.Token {
		t.Fatalf("resolved the wrong capture")
	}
	if len(w.State.PendingCaptures) != 1 {
		t.Fatalf("resolve should pop exactly one capture")
	}
	if w.State.PendingCaptures[0].Token != p2.Token {
		t.Fatalf("the other capture must remain")
	}

	if _, err := w.Resolve(p1.Token); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken on double resolve, got %v", err)
	}
}

func TestStopBlankActivityFallback(t *testing.T) {
	w := &Workflow{State: &state.TimerState{}}
	// Simulates a hand-edited document with the activity blanked.
	w.State.Running = &state.RunningTimer{StartedAt: state.Now()}
	entry, _, err := w.Stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry.Activity != "Untitled session" {
		t.Fatalf("expected fallback activity, got %q", entry.Activity)
	}
}
