// Package suggest turns free journal text into typed, actionable suggestions.
// It is a deterministic keyword matcher, not NLP: same text in, same
// suggestions out, no state and no I/O.
package suggest

import (
	"regexp"
	"strings"

	"tableflip.dev/actionmenu/pkg/state"
)

var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// patterns holds the trigger phrases per kind. Order of evaluation comes from
// state.Kinds(): goal, habit, action, blockage — first match wins per
// sentence. The order mirrors the original vocabulary and carries no deeper
// weighting.
var patterns = map[state.Kind]*regexp.Regexp{
	state.KindGoal: regexp.MustCompile(
		`(?i)\b(want to|goal|aspire|dream|become|vision|plan to|aim to|objective|target|would love)\b`),
	state.KindHabit: regexp.MustCompile(
		`(?i)\b(habit|every day|routine|ritual|each morning|before bed|after I|whenever I)\b`),
	state.KindAction: regexp.MustCompile(
		`(?i)\b(today|this week|tonight|right now|start|finish|send|draft|schedule|call|ship|email|publish)\b`),
	state.KindBlockage: regexp.MustCompile(
		`(?i)\b(stuck|blocked|fear|worried|can't|overwhelmed|tired|burned out|anxious|procrastinat)\w*\b`),
}

// Extract splits text into sentence-like chunks and classifies each one.
// Output order equals sentence order; unmatched chunks yield nothing.
func Extract(text string) []state.JournalSuggestion {
	suggestions := make([]state.JournalSuggestion, 0)
	for _, sentence := range sentences(text) {
		if kind, ok := matchKind(sentence); ok {
			suggestions = append(suggestions, state.JournalSuggestion{Text: sentence, Kind: kind})
		}
	}
	return suggestions
}

func sentences(text string) []string {
	chunks := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func matchKind(sentence string) (state.Kind, bool) {
	for _, kind := range state.Kinds() {
		if patterns[kind].MatchString(sentence) {
			return kind, true
		}
	}
	return "", false
}

// Tags infers category tags for a journal entry: a case-insensitive substring
// match of each category name, plus "rest"/"recover" implying Recovery.
// Result order follows the category vocabulary and is deduplicated.
func Tags(text string) []string {
	lower := strings.ToLower(text)
	tags := make([]string, 0)
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	for _, category := range state.Categories() {
		if strings.Contains(lower, strings.ToLower(category)) {
			add(category)
		}
	}
	if strings.Contains(lower, "rest") || strings.Contains(lower, "recover") {
		add("Recovery")
	}
	return tags
}
