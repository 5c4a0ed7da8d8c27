package timeutil

import (
	"testing"
	"time"
)

func TestParseDurationComposite(t *testing.T) {
	dur, label, err := ParseDuration("1h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseDurationWords(t *testing.T) {
	dur, label, err := ParseDuration("2 hours 15 mins")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2*time.Hour + 15*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "2h15m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseDurationRejectsDays(t *testing.T) {
	if _, _, err := ParseDuration("2d"); err == nil {
		t.Fatalf("expected error for day unit")
	}
}

func TestParseDurationEmpty(t *testing.T) {
	if _, _, err := ParseDuration("  "); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestParseDurationInvalid(t *testing.T) {
	if _, _, err := ParseDuration("noop"); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestFormatDuration(t *testing.T) {
	got := FormatDuration(90 * time.Minute)
	if got != "1h30m" {
		t.Fatalf("expected 1h30m, got %s", got)
	}
	if FormatDuration(0) != "0s" {
		t.Fatalf("expected 0s for zero duration")
	}
}
