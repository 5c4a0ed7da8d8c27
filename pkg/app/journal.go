package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/suggest"
)

var (
	ErrJournalText    = errors.New("app: journal text required")
	ErrSuggestionText = errors.New("app: suggestion text required")
	ErrUnknownTarget  = errors.New("app: unknown promotion target")
)

// PromoteTarget names where a suggestion is sent.
type PromoteTarget string

const (
	TargetToday        PromoteTarget = "today"
	TargetGoalDraft    PromoteTarget = "goal-draft"
	TargetHabitDraft   PromoteTarget = "habit-draft"
	TargetQuickCapture PromoteTarget = "quick-capture"
)

// PromoteTargets returns the supported promotion targets.
func PromoteTargets() []PromoteTarget {
	return []PromoteTarget{TargetToday, TargetGoalDraft, TargetHabitDraft, TargetQuickCapture}
}

// ParsePromoteTarget converts raw input to a PromoteTarget.
func ParsePromoteTarget(raw string) (PromoteTarget, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range PromoteTargets() {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, raw)
}

// Suggestions runs the classifier over in-progress text without saving
// anything. UIs call this on every edit.
func (s *Service) Suggestions(text string) []state.JournalSuggestion {
	return suggest.Extract(text)
}

// SaveJournalEntry classifies and tags the text once, then freezes the result
// into a persisted entry. Old entries are never re-classified.
func (s *Service) SaveJournalEntry(ctx context.Context, text string) (*state.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrJournalText
	}
	entry := state.NewJournalEntry(text, suggest.Tags(text), suggest.Extract(text))
	s.State.JournalEntries = append(s.State.JournalEntries, entry)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

// Promotion is the outcome of promoting a suggestion. Exactly one of the
// fields beyond Target is meaningful, depending on the target.
type Promotion struct {
	Target PromoteTarget

	// Label is the weekly action appended to the Today bucket.
	Label string
	// DraftText is staged text for a goal or habit form. Nothing is persisted
	// for drafts; a human completes and submits the form.
	DraftText string
	// Item is the quick-capture record created in the inbox.
	Item *state.QuickCaptureItem
}

// PromoteSuggestion sends a suggestion's text to the chosen target. Today and
// quick-capture mutate and persist state; the draft targets only stage text.
func (s *Service) PromoteSuggestion(ctx context.Context, sg state.JournalSuggestion, target PromoteTarget) (*Promotion, error) {
	text := strings.TrimSpace(sg.Text)
	if text == "" {
		return nil, ErrSuggestionText
	}
	switch target {
	case TargetToday:
		label, err := s.AddWeeklyAction(ctx, "Today", text, "")
		if err != nil {
			return nil, err
		}
		return &Promotion{Target: target, Label: label}, nil
	case TargetGoalDraft, TargetHabitDraft:
		return &Promotion{Target: target, DraftText: text}, nil
	case TargetQuickCapture:
		item, err := s.AddQuickCapture(ctx, text)
		if err != nil {
			return nil, err
		}
		return &Promotion{Target: target, Item: item}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
}
