// Package state defines the record types and the AppState aggregate that the
// rest of actionmenu mutates and persists.
package state

import (
	"fmt"
	"strings"
)

// Horizon is the planning horizon attached to a goal.
type Horizon string

const (
	HorizonToday    Horizon = "Today"
	HorizonWeek     Horizon = "This Week"
	HorizonMonth    Horizon = "This Month"
	HorizonLongTerm Horizon = "Long Term"
)

// Horizons returns the supported goal horizons.
func Horizons() []Horizon {
	return []Horizon{HorizonToday, HorizonWeek, HorizonMonth, HorizonLongTerm}
}

// ParseHorizon converts raw input to a Horizon. Empty input defaults to the
// long-term horizon.
func ParseHorizon(raw string) (Horizon, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return HorizonLongTerm, nil
	}
	for _, candidate := range Horizons() {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return HorizonLongTerm, fmt.Errorf("state: unknown horizon %q", raw)
}

// CaptureStatus is the triage state of a quick-capture item.
type CaptureStatus string

const (
	StatusInbox    CaptureStatus = "Inbox"
	StatusToday    CaptureStatus = "Today"
	StatusLater    CaptureStatus = "Later"
	StatusArchived CaptureStatus = "Archived"
)

// CaptureStatuses returns the quick-capture statuses in triage order.
func CaptureStatuses() []CaptureStatus {
	return []CaptureStatus{StatusInbox, StatusToday, StatusLater, StatusArchived}
}

// ParseCaptureStatus converts raw input to a CaptureStatus.
func ParseCaptureStatus(raw string) (CaptureStatus, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range CaptureStatuses() {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("state: unknown capture status %q", raw)
}

// Kind classifies a journal suggestion.
type Kind string

const (
	KindGoal     Kind = "goal"
	KindHabit    Kind = "habit"
	KindAction   Kind = "action"
	KindBlockage Kind = "blockage"
)

// Kinds returns suggestion kinds in classifier priority order. The first
// matching kind in this order wins for a sentence.
func Kinds() []Kind {
	return []Kind{KindGoal, KindHabit, KindAction, KindBlockage}
}

// ParseKind converts raw input to a suggestion Kind.
func ParseKind(raw string) (Kind, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range Kinds() {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("state: unknown suggestion kind %q", raw)
}

// DefaultColor tags records whose category has no calendar color mapping.
const DefaultColor = "default"

var categoryColors = map[string]string{
	"General":  "#7a7a7a",
	"Creative": "#ee8130",
	"Startup":  "#0078d4",
	"Learning": "#7357ff",
	"Body":     "#2e8b57",
	"Recovery": "#c55bff",
}

// Categories returns the fixed category vocabulary used by goals and journal
// tag inference.
func Categories() []string {
	return []string{"General", "Creative", "Startup", "Learning", "Body", "Recovery"}
}

// CategoryColor maps a category to its calendar color, falling back to
// DefaultColor for unknown categories.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultColor
}

// Emotions returns the emotion vocabulary offered before and after a block.
func Emotions() []string {
	return []string{
		"Calm",
		"Curious",
		"Confident",
		"Energized",
		"Bored",
		"Anxious",
		"Tired",
		"Stuck",
		"Excited",
	}
}

// DefaultWeeklyBuckets returns the weekly action buckets, in board order.
func DefaultWeeklyBuckets() []string {
	return []string{"Today", "This Week", "This Month"}
}

// DefaultTimerCategories returns the starter deep-work categories. The list is
// user-extensible at runtime.
func DefaultTimerCategories() []string {
	return []string{"Creative", "Learning", "Working", "Body", "Recovery"}
}
