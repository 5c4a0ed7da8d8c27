package state

// AppState is the single root aggregate. Every collection below is owned
// exclusively by this struct; cross-record relations are by id or title
// string, never by shared pointers across collections.
type AppState struct {
	Reflections    Reflections         `json:"reflections"`
	Goals          []*SmartGoal        `json:"goals"`
	Habits         []*HabitPlan        `json:"habits"`
	WeeklyActions  map[string][]string `json:"weekly_actions"`
	TimerCats      []string            `json:"timer_categories"`
	TimeEntries    []*TimeEntry        `json:"time_entries"`
	FlowLogs       []*FlowLog          `json:"flow_logs"`
	JournalEntries []*JournalEntry     `json:"journal_entries"`
	QuickCapture   []*QuickCaptureItem `json:"quick_capture"`
	Timer          TimerState          `json:"timer"`
}

// New returns the documented cold-start defaults: empty reflections, empty
// collections, the default weekly buckets and timer categories, idle timer.
func New() *AppState {
	weekly := make(map[string][]string, len(DefaultWeeklyBuckets()))
	for _, bucket := range DefaultWeeklyBuckets() {
		weekly[bucket] = []string{}
	}
	return &AppState{
		Goals:          []*SmartGoal{},
		Habits:         []*HabitPlan{},
		WeeklyActions:  weekly,
		TimerCats:      append([]string(nil), DefaultTimerCategories()...),
		TimeEntries:    []*TimeEntry{},
		FlowLogs:       []*FlowLog{},
		JournalEntries: []*JournalEntry{},
		QuickCapture:   []*QuickCaptureItem{},
	}
}

// Normalize backfills zero-value collections after decoding an older or
// partial document so callers never see nil maps or missing buckets.
func (s *AppState) Normalize() {
	if s.WeeklyActions == nil {
		s.WeeklyActions = make(map[string][]string, len(DefaultWeeklyBuckets()))
	}
	for _, bucket := range DefaultWeeklyBuckets() {
		if _, ok := s.WeeklyActions[bucket]; !ok {
			s.WeeklyActions[bucket] = []string{}
		}
	}
	if len(s.TimerCats) == 0 {
		s.TimerCats = append([]string(nil), DefaultTimerCategories()...)
	}
}

// GoalByTitle resolves a goal by its exact title. Habits link to goals by
// title, so a renamed or removed goal simply stops resolving.
func (s *AppState) GoalByTitle(title string) *SmartGoal {
	for _, g := range s.Goals {
		if g.Title == title {
			return g
		}
	}
	return nil
}

// TimeEntryByID resolves a tracked block by id, nil when absent.
func (s *AppState) TimeEntryByID(id string) *TimeEntry {
	for _, e := range s.TimeEntries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// QuickCaptureByID resolves a capture item by id, nil when absent.
func (s *AppState) QuickCaptureByID(id string) *QuickCaptureItem {
	for _, item := range s.QuickCapture {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// HasTimerCategory reports whether label already exists, case-sensitive.
func (s *AppState) HasTimerCategory(label string) bool {
	for _, c := range s.TimerCats {
		if c == label {
			return true
		}
	}
	return false
}

// EffortByCategory sums derived hours per category across all time entries.
func (s *AppState) EffortByCategory() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range s.TimeEntries {
		totals[e.Category] += e.DurationHours()
	}
	return totals
}
