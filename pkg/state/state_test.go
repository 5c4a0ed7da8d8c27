package state

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if !s.Reflections.Empty() {
		t.Fatalf("expected empty reflections")
	}
	for _, bucket := range DefaultWeeklyBuckets() {
		actions, ok := s.WeeklyActions[bucket]
		if !ok {
			t.Fatalf("missing bucket %q", bucket)
		}
		if len(actions) != 0 {
			t.Fatalf("expected empty bucket %q", bucket)
		}
	}
	if len(s.TimerCats) != len(DefaultTimerCategories()) {
		t.Fatalf("expected default timer categories, got %v", s.TimerCats)
	}
	if s.Timer.Running != nil {
		t.Fatalf("expected idle timer")
	}
}

func TestNormalizeBackfills(t *testing.T) {
	s := &AppState{}
	s.Normalize()
	if s.WeeklyActions == nil {
		t.Fatalf("expected weekly map")
	}
	for _, bucket := range DefaultWeeklyBuckets() {
		if _, ok := s.WeeklyActions[bucket]; !ok {
			t.Fatalf("missing bucket %q after normalize", bucket)
		}
	}
	if len(s.TimerCats) == 0 {
		t.Fatalf("expected timer categories after normalize")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Now()
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Timestamp
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(ts.Time) {
		t.Fatalf("round trip mismatch: %v != %v", got, ts)
	}
}

func TestTimestampZero(t *testing.T) {
	var ts Timestamp
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string for zero timestamp, got %s", b)
	}
	var got Timestamp
	if err := json.Unmarshal([]byte(`""`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero timestamp")
	}
}

func TestDurationHours(t *testing.T) {
	start := Now()
	end := Timestamp{Time: start.Add(90 * time.Minute)}
	e := NewTimeEntry("deep work", "Creative", start, end)
	if got := e.DurationHours(); got != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got)
	}
	if e.CalendarColor != CategoryColor("Creative") {
		t.Fatalf("expected creative color, got %s", e.CalendarColor)
	}
}

func TestDurationHoursRounds(t *testing.T) {
	start := Now()
	end := Timestamp{Time: start.Add(100 * time.Minute)}
	e := NewTimeEntry("x", "Working", start, end)
	if got := e.DurationHours(); got != 1.67 {
		t.Fatalf("expected 1.67 hours, got %v", got)
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != 32 {
		t.Fatalf("expected 32-char id, got %d: %s", len(id), id)
	}
	if id == NewID() {
		t.Fatalf("expected unique ids")
	}
}

func TestCategoryColorFallback(t *testing.T) {
	if CategoryColor("Creative") == DefaultColor {
		t.Fatalf("known category should map to a real color")
	}
	if CategoryColor("Gardening") != DefaultColor {
		t.Fatalf("unknown category should map to default")
	}
}

func TestParseHorizon(t *testing.T) {
	h, err := ParseHorizon("this week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != HorizonWeek {
		t.Fatalf("expected %q, got %q", HorizonWeek, h)
	}

	h, err = ParseHorizon("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != HorizonLongTerm {
		t.Fatalf("expected default horizon, got %q", h)
	}

	if _, err := ParseHorizon("someday"); err == nil {
		t.Fatalf("expected error for unknown horizon")
	}
}

func TestParseCaptureStatus(t *testing.T) {
	s, err := ParseCaptureStatus("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusToday {
		t.Fatalf("expected %q, got %q", StatusToday, s)
	}
	if _, err := ParseCaptureStatus("someday"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Blockage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KindBlockage {
		t.Fatalf("expected %q, got %q", KindBlockage, k)
	}
	if _, err := ParseKind("idea"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestGoalRenameOrphansHabitLink(t *testing.T) {
	s := New()
	g := NewSmartGoal("run a marathon")
	s.Goals = append(s.Goals, g)
	h := NewHabitPlan("morning run")
	h.LinkedGoal = g.Title
	s.Habits = append(s.Habits, h)

	if s.GoalByTitle(h.LinkedGoal) != g {
		t.Fatalf("expected link to resolve before rename")
	}
	g.Title = "run an ultra"
	if s.GoalByTitle(h.LinkedGoal) != nil {
		t.Fatalf("expected dangling link after rename")
	}
	if h.LinkedGoal != "run a marathon" {
		t.Fatalf("link text should be untouched by rename")
	}
}

func TestEffortByCategory(t *testing.T) {
	s := New()
	start := Now()
	s.TimeEntries = append(s.TimeEntries,
		NewTimeEntry("a", "Creative", start, Timestamp{Time: start.Add(time.Hour)}),
		NewTimeEntry("b", "Creative", start, Timestamp{Time: start.Add(30 * time.Minute)}),
		NewTimeEntry("c", "Body", start, Timestamp{Time: start.Add(45 * time.Minute)}),
	)
	totals := s.EffortByCategory()
	if totals["Creative"] != 1.5 {
		t.Fatalf("expected 1.5 creative hours, got %v", totals["Creative"])
	}
	if totals["Body"] != 0.75 {
		t.Fatalf("expected 0.75 body hours, got %v", totals["Body"])
	}
}

func TestAppStateJSONShape(t *testing.T) {
	s := New()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"reflections", "goals", "habits", "weekly_actions", "timer_categories",
		"time_entries", "flow_logs", "journal_entries", "quick_capture", "timer",
	} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("missing document key %q", key)
		}
	}
}
