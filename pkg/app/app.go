// Package app exposes the state-mutation operations over the AppState
// aggregate. Every command follows the same discipline: validate, mutate the
// in-memory state, then synchronously persist the full document. Callers
// re-read state afterward rather than consuming return values from the write
// path.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
	"tableflip.dev/actionmenu/pkg/timer"
)

var (
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrEmptyReflection = errors.New("app: write at least one reflection before committing")
	ErrGoalTitle       = errors.New("app: goal title required")
	ErrHabitName       = errors.New("app: habit name required")
	ErrActionText      = errors.New("app: action text required")
	ErrUnknownBucket   = errors.New("app: unknown weekly bucket")
	ErrNoTodayActions  = errors.New("app: add at least one action to the Today bucket first")
	ErrCategoryLabel   = errors.New("app: category label required")
	ErrDuplicateLabel  = errors.New("app: category already exists")
)

// FocusLimit caps how many Today actions are promoted into the focus view.
const FocusLimit = 3

// Service binds the loaded aggregate to its persistence gateway and the timer
// workflow. One Service instance owns the single live AppState; operations run
// one at a time.
type Service struct {
	Persistence store.Persistence
	State       *state.AppState

	workflow timer.Workflow
}

// New loads (or cold-starts) the aggregate from persistence and wraps it in a
// Service.
func New(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	s := p.Load(ctx)
	return NewWithState(p, s), nil
}

// NewWithState wraps an already-loaded aggregate. Used by tests and by callers
// that manage loading themselves.
func NewWithState(p store.Persistence, s *state.AppState) *Service {
	svc := &Service{Persistence: p, State: s}
	svc.workflow = timer.Workflow{State: &s.Timer}
	return svc
}

func (s *Service) persist(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.Save(ctx, s.State)
}

// CommitIntentions writes the reflections singleton. At least one field must
// be non-empty.
func (s *Service) CommitIntentions(ctx context.Context, values, milestones, energy string) error {
	r := state.Reflections{
		Values:     strings.TrimSpace(values),
		Milestones: strings.TrimSpace(milestones),
		Energy:     strings.TrimSpace(energy),
	}
	if r.Empty() {
		return ErrEmptyReflection
	}
	s.State.Reflections = r
	return s.persist(ctx)
}

// GoalInput carries the SMART fields for a new goal. Everything but Title is
// optional.
type GoalInput struct {
	Title      string
	Specific   string
	Measurable string
	Achievable string
	Relevant   string
	TimeBound  string
	Horizon    state.Horizon
	Category   string
}

// AddGoal appends a new SMART goal. The calendar color derives from the
// category; unknown categories map to the default color.
func (s *Service) AddGoal(ctx context.Context, in GoalInput) (*state.SmartGoal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrGoalTitle
	}
	g := state.NewSmartGoal(title)
	g.Specific = strings.TrimSpace(in.Specific)
	g.Measurable = strings.TrimSpace(in.Measurable)
	g.Achievable = strings.TrimSpace(in.Achievable)
	g.Relevant = strings.TrimSpace(in.Relevant)
	g.TimeBound = strings.TrimSpace(in.TimeBound)
	if in.Horizon != "" {
		g.Horizon = in.Horizon
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		g.Category = c
	}
	g.CalendarColor = state.CategoryColor(g.Category)
	s.State.Goals = append(s.State.Goals, g)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// HabitInput carries the cue/anchor design fields for a new habit.
type HabitInput struct {
	Name          string
	Anchor        string
	Frequency     string
	SuccessMetric string
	LinkedGoal    string
}

// AddHabit appends a new habit plan. LinkedGoal is stored as given — a goal
// title, unvalidated; it may reference a goal that does not exist.
func (s *Service) AddHabit(ctx context.Context, in HabitInput) (*state.HabitPlan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrHabitName
	}
	h := state.NewHabitPlan(name)
	h.Anchor = strings.TrimSpace(in.Anchor)
	h.Frequency = strings.TrimSpace(in.Frequency)
	h.SuccessMetric = strings.TrimSpace(in.SuccessMetric)
	h.LinkedGoal = strings.TrimSpace(in.LinkedGoal)
	s.State.Habits = append(s.State.Habits, h)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// AddWeeklyAction appends an action label to one of the existing weekly
// buckets. A non-empty motivation becomes part of the permanent label in the
// form "action (motivation)".
func (s *Service) AddWeeklyAction(ctx context.Context, bucket, action, motivation string) (string, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return "", ErrActionText
	}
	if _, ok := s.State.WeeklyActions[bucket]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}
	label := action
	if m := strings.TrimSpace(motivation); m != "" {
		label = fmt.Sprintf("%s (%s)", action, m)
	}
	s.State.WeeklyActions[bucket] = append(s.State.WeeklyActions[bucket], label)
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return label, nil
}

// SendFocusToToday copies up to the first three Today actions into a
// transient focus view. Nothing is persisted; it requires at least one Today
// action.
func (s *Service) SendFocusToToday() ([]string, error) {
	today := s.State.WeeklyActions["Today"]
	if len(today) == 0 {
		return nil, ErrNoTodayActions
	}
	n := len(today)
	if n > FocusLimit {
		n = FocusLimit
	}
	return append([]string(nil), today[:n]...), nil
}

// AddTimerCategory appends a user-defined deep-work category. Labels are
// unique, case-sensitive.
func (s *Service) AddTimerCategory(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrCategoryLabel
	}
	if s.State.HasTimerCategory(label) {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	s.State.TimerCats = append(s.State.TimerCats, label)
	return s.persist(ctx)
}
