// Package track provides runners for the deep-work timer workflow.
package track

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Start begins tracking a block, recording the pre-block flow and emotion.
type Start struct {
	Activity      string
	Category      string
	FlowBefore    int
	EmotionBefore string

	Persistence store.Persistence
}

func (s *Start) Do(ctx context.Context) error {
	svc, err := app.New(ctx, s.Persistence)
	if err != nil {
		return err
	}
	if err := svc.StartTimer(ctx, s.Activity, s.Category, s.FlowBefore, s.EmotionBefore); err != nil {
		return err
	}
	fmt.Printf("Tracking: %s\n", s.Activity)
	return nil
}

// Stop ends the running block, logs the TimeEntry, and prompts for the
// deferred flow capture.
type Stop struct {
	Persistence store.Persistence
}

func (s *Stop) Do(ctx context.Context) error {
	svc, err := app.New(ctx, s.Persistence)
	if err != nil {
		return err
	}
	_, pending, err := svc.StopTimer(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Time Tracker")
	pp.TimeEntries(svc.State.TimeEntries)
	pp.PendingCapture(pending)
	return nil
}

// Log records a block after the fact with a bounded duration.
type Log struct {
	Activity      string
	Category      string
	Duration      time.Duration
	FlowBefore    int
	EmotionBefore string

	Persistence store.Persistence
}

func (l *Log) Do(ctx context.Context) error {
	svc, err := app.New(ctx, l.Persistence)
	if err != nil {
		return err
	}
	_, pending, err := svc.ManualLog(ctx, l.Activity, l.Category, l.Duration, l.FlowBefore, l.EmotionBefore)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Time Tracker")
	pp.TimeEntries(svc.State.TimeEntries)
	pp.PendingCapture(pending)
	return nil
}

// Flow resolves a pending capture by submitting the post-block reflection.
type Flow struct {
	Token        string
	FlowAfter    int
	EmotionAfter string
	Message      string
	Motivation   string

	Persistence store.Persistence
}

func (f *Flow) Do(ctx context.Context) error {
	svc, err := app.New(ctx, f.Persistence)
	if err != nil {
		return err
	}
	if _, err := svc.SubmitFlowCapture(ctx, f.Token, f.FlowAfter, f.EmotionAfter, f.Message, f.Motivation); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Flow Log")
	pp.FlowLogs(svc.State.FlowLogs, svc.State)
	return nil
}

// Skip resolves a pending capture without creating a flow log.
type Skip struct {
	Token string

	Persistence store.Persistence
}

func (s *Skip) Do(ctx context.Context) error {
	svc, err := app.New(ctx, s.Persistence)
	if err != nil {
		return err
	}
	if err := svc.SkipFlowCapture(ctx, s.Token); err != nil {
		return err
	}
	fmt.Println("Capture skipped.")
	return nil
}
