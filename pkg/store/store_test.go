package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestColdStartDefaults(t *testing.T) {
	p, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	s := p.Load(context.Background())
	if s == nil {
		t.Fatalf("load must never return nil")
	}
	if len(s.TimerCats) == 0 {
		t.Fatalf("cold start should carry default timer categories")
	}
	if _, ok := s.WeeklyActions["Today"]; !ok {
		t.Fatalf("cold start should carry default weekly buckets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	s := p.Load(ctx)
	s.Reflections.Values = "craft"
	s.WeeklyActions["Today"] = append(s.WeeklyActions["Today"], "write 200 words")
	if err := p.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second gateway over the same path sees the document.
	p2, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got := p2.Load(ctx)
	if got.Reflections.Values != "craft" {
		t.Fatalf("reflections lost in round trip: %+v", got.Reflections)
	}
	today := got.WeeklyActions["Today"]
	if len(today) != 1 || today[0] != "write 200 words" {
		t.Fatalf("weekly actions lost in round trip: %v", today)
	}
}

func TestCorruptDocumentHealsToDefaults(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "state.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt document: %v", err)
	}

	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := p.Load(context.Background())
	if s == nil {
		t.Fatalf("corrupt document must yield defaults, not nil")
	}
	if len(s.TimerCats) == 0 {
		t.Fatalf("defaults should carry timer categories")
	}
	if len(s.Goals) != 0 || len(s.TimeEntries) != 0 {
		t.Fatalf("corrupt document must not leak partial data")
	}
}

func TestPartialDocumentNormalizes(t *testing.T) {
	base := t.TempDir()
	doc := `{"reflections":{"values":"craft","milestones":"","energy":""}}`
	if err := os.WriteFile(filepath.Join(base, "state.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write partial document: %v", err)
	}

	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := p.Load(context.Background())
	if s.Reflections.Values != "craft" {
		t.Fatalf("expected reflections to survive, got %+v", s.Reflections)
	}
	if _, ok := s.WeeklyActions["This Month"]; !ok {
		t.Fatalf("missing buckets should be backfilled")
	}
	if len(s.TimerCats) == 0 {
		t.Fatalf("missing timer categories should be backfilled")
	}
}

func TestWatchEmitsOnSave(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Let the watcher goroutine subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	s := p.Load(ctx)
	s.Reflections.Values = "craft"
	if err := p.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatalf("watch channel closed unexpectedly")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a change event after save")
	}

	cancel()
	select {
	case <-drained(ch):
	case <-time.After(3 * time.Second):
		t.Fatalf("expected channel to close after cancel")
	}
}

// drained signals once ch is closed, discarding any buffered events.
func drained(ch <-chan Event) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range ch {
		}
		close(done)
	}()
	return done
}
