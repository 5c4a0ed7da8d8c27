package suggest

import (
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/actionmenu/pkg/state"
)

func TestExtractClassifiesSentences(t *testing.T) {
	text := "I want to become the best CTO. Today I will ship the new API. " +
		"Every day after standup I should review the team habits."

	got := Extract(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d: %v", len(got), got)
	}

	wantKinds := []state.Kind{state.KindGoal, state.KindAction, state.KindHabit}
	for i, want := range wantKinds {
		if got[i].Kind != want {
			t.Fatalf("suggestion %d: expected kind %q, got %q", i, want, got[i].Kind)
		}
	}
	if !strings.Contains(got[1].Text, "ship the new API") {
		t.Fatalf("expected action text to mention the API, got %q", got[1].Text)
	}
}

func TestExtractPriorityOrder(t *testing.T) {
	// "want to" (goal) and "today" (action) in one sentence: goal wins.
	got := Extract("I want to start today! Done.")
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if got[0].Kind != state.KindGoal {
		t.Fatalf("expected goal to win, got %q", got[0].Kind)
	}
}

func TestExtractBlockage(t *testing.T) {
	got := Extract("I keep procrastinating on the report? It bothers me.")
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if got[0].Kind != state.KindBlockage {
		t.Fatalf("expected blockage, got %q", got[0].Kind)
	}
}

func TestExtractNoMatches(t *testing.T) {
	got := Extract("The sky was grey. Nothing much happened.")
	if len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "I want to run more. Today I will call the gym."
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Fatalf("expected no suggestions for empty text, got %v", got)
	}
}

func TestTags(t *testing.T) {
	got := Tags("Did some learning, then creative work, then took time to rest.")
	want := []string{"Creative", "Learning", "Recovery"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTagsDeduplicates(t *testing.T) {
	got := Tags("recovery day, mostly recovery and rest")
	want := []string{"Recovery"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTagsNone(t *testing.T) {
	if got := Tags("wrote in the park"); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}
