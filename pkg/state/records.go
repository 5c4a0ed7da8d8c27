package state

import (
	"encoding/hex"
	"math"

	"github.com/google/uuid"
)

// NewID returns a fresh 32-character hex id.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// Reflections is the singleton free-text intentions block.
type Reflections struct {
	Values     string `json:"values"`
	Milestones string `json:"milestones"`
	Energy     string `json:"energy"`
}

// Empty reports whether no reflection field has been written.
func (r Reflections) Empty() bool {
	return r.Values == "" && r.Milestones == "" && r.Energy == ""
}

// SmartGoal is a goal broken down along the SMART axes.
type SmartGoal struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Specific      string  `json:"specific"`
	Measurable    string  `json:"measurable"`
	Achievable    string  `json:"achievable"`
	Relevant      string  `json:"relevant"`
	TimeBound     string  `json:"time_bound"`
	Horizon       Horizon `json:"horizon"`
	Category      string  `json:"category"`
	CalendarColor string  `json:"calendar_color"`
}

// NewSmartGoal assigns an id and defaults; the caller fills the optional SMART
// fields before appending the goal to state.
func NewSmartGoal(title string) *SmartGoal {
	return &SmartGoal{
		ID:            NewID(),
		Title:         title,
		Horizon:       HorizonLongTerm,
		Category:      "General",
		CalendarColor: DefaultColor,
	}
}

// HabitPlan describes a habit as anchor, frequency and success metric.
// LinkedGoal is a goal title, not an id; it may dangle if the goal is renamed
// or removed and lookups against it return nothing.
type HabitPlan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Anchor        string `json:"anchor"`
	Frequency     string `json:"frequency"`
	SuccessMetric string `json:"success_metric"`
	LinkedGoal    string `json:"linked_goal"`
}

// NewHabitPlan assigns an id to a named habit.
func NewHabitPlan(name string) *HabitPlan {
	return &HabitPlan{ID: NewID(), Name: name}
}

// TimeEntry is one tracked block of work.
type TimeEntry struct {
	ID            string    `json:"id"`
	Activity      string    `json:"activity"`
	Category      string    `json:"category"`
	Start         Timestamp `json:"start"`
	End           Timestamp `json:"end"`
	CalendarColor string    `json:"calendar_color"`
}

// NewTimeEntry creates a tracked block. End must not precede start; callers
// validate before constructing.
func NewTimeEntry(activity, category string, start, end Timestamp) *TimeEntry {
	return &TimeEntry{
		ID:            NewID(),
		Activity:      activity,
		Category:      category,
		Start:         start,
		End:           end,
		CalendarColor: CategoryColor(category),
	}
}

// DurationHours derives the block length in hours, rounded to two decimals.
// Never stored; always recomputed from start/end.
func (t *TimeEntry) DurationHours() float64 {
	h := t.End.Sub(t.Start.Time).Hours()
	return math.Round(h*100) / 100
}

// FlowLog captures the before/after flow and emotion reflection for a block.
// TimeEntryID is a soft reference; deleting the entry does not cascade here.
type FlowLog struct {
	ID                string    `json:"id"`
	TimeEntryID       string    `json:"time_entry_id"`
	FlowBefore        int       `json:"flow_before"`
	FlowAfter         int       `json:"flow_after"`
	EmotionBefore     string    `json:"emotion_before"`
	EmotionAfter      string    `json:"emotion_after"`
	FeelingMessage    string    `json:"feeling_message"`
	FeelingMotivation string    `json:"feeling_motivation"`
	CreatedAt         Timestamp `json:"created_at"`
}

// NewFlowLog stamps a flow reflection with id and creation time.
func NewFlowLog(timeEntryID string, flowBefore, flowAfter int, emotionBefore, emotionAfter, message, motivation string) *FlowLog {
	return &FlowLog{
		ID:                NewID(),
		TimeEntryID:       timeEntryID,
		FlowBefore:        flowBefore,
		FlowAfter:         flowAfter,
		EmotionBefore:     emotionBefore,
		EmotionAfter:      emotionAfter,
		FeelingMessage:    message,
		FeelingMotivation: motivation,
		CreatedAt:         Now(),
	}
}

// JournalSuggestion is a classified fragment of journal text. Value type with
// no id; it lives inside the entry it was extracted from.
type JournalSuggestion struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// JournalEntry is a saved free-write with its tags and the suggestions frozen
// at save time. Re-running the classifier later does not rewrite old entries.
type JournalEntry struct {
	ID          string              `json:"id"`
	CreatedAt   Timestamp           `json:"created_at"`
	Text        string              `json:"text"`
	Tags        []string            `json:"tags"`
	Suggestions []JournalSuggestion `json:"suggestions"`
}

// NewJournalEntry freezes text, tags and suggestions into a dated entry.
func NewJournalEntry(text string, tags []string, suggestions []JournalSuggestion) *JournalEntry {
	return &JournalEntry{
		ID:          NewID(),
		CreatedAt:   Now(),
		Text:        text,
		Tags:        tags,
		Suggestions: suggestions,
	}
}

// QuickCaptureItem is an inbox thought awaiting triage.
type QuickCaptureItem struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Status    CaptureStatus `json:"status"`
	CreatedAt Timestamp     `json:"created_at"`
}

// NewQuickCaptureItem captures text into the inbox.
func NewQuickCaptureItem(text string) *QuickCaptureItem {
	return &QuickCaptureItem{
		ID:        NewID(),
		Text:      text,
		Status:    StatusInbox,
		CreatedAt: Now(),
	}
}

// RunningTimer is the live deep-work block, present while the timer runs.
type RunningTimer struct {
	Activity      string    `json:"activity"`
	Category      string    `json:"category"`
	FlowBefore    int       `json:"flow_before"`
	EmotionBefore string    `json:"emotion_before"`
	StartedAt     Timestamp `json:"started_at"`
}

// PendingCapture is an unresolved flow-capture step for a logged block. Any
// number may be outstanding at once; each is resolved by submit or skip.
type PendingCapture struct {
	Token         string `json:"token"`
	TimeEntryID   string `json:"time_entry_id"`
	Activity      string `json:"activity"`
	FlowBefore    int    `json:"flow_before"`
	EmotionBefore string `json:"emotion_before"`
}

// TimerState persists the workflow between CLI invocations: at most one
// running block plus the captures still waiting on a reflection.
type TimerState struct {
	Running         *RunningTimer    `json:"running,omitempty"`
	PendingCaptures []PendingCapture `json:"pending_captures,omitempty"`
}
