// Package journal provides runners for saving entries, previewing
// suggestions, and promoting suggestions into other parts of the state.
package journal

import (
	"context"
	"fmt"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
	"tableflip.dev/actionmenu/pkg/suggest"
)

// Save classifies and persists a journal entry with suggestions frozen at
// save time.
type Save struct {
	Text string

	Persistence store.Persistence
}

func (s *Save) Do(ctx context.Context) error {
	svc, err := app.New(ctx, s.Persistence)
	if err != nil {
		return err
	}
	entry, err := svc.SaveJournalEntry(ctx, s.Text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Saved entry")
	pp.JournalEntries([]*state.JournalEntry{entry})
	return nil
}

// Suggest previews suggestions for in-progress text without saving anything.
// Pure: no persistence is touched.
type Suggest struct {
	Text string
}

func (s *Suggest) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Actionable suggestions")
	pp.Suggestions(suggest.Extract(s.Text))
	return nil
}

// Promote sends a suggestion to Today, a goal/habit draft, or quick capture.
type Promote struct {
	Kind   state.Kind
	Text   string
	Target app.PromoteTarget

	Persistence store.Persistence
}

func (p *Promote) Do(ctx context.Context) error {
	svc, err := app.New(ctx, p.Persistence)
	if err != nil {
		return err
	}
	result, err := svc.PromoteSuggestion(ctx, state.JournalSuggestion{Text: p.Text, Kind: p.Kind}, p.Target)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	switch result.Target {
	case app.TargetToday:
		pp.Title("Today")
		pp.Focus([]string{result.Label})
	case app.TargetGoalDraft:
		fmt.Printf("Drafted goal title: %s\n", result.DraftText)
		fmt.Println("Complete it with: actionmenu add goal ...")
	case app.TargetHabitDraft:
		fmt.Printf("Drafted habit name: %s\n", result.DraftText)
		fmt.Println("Complete it with: actionmenu add habit ...")
	case app.TargetQuickCapture:
		pp.Title("Quick Capture")
		pp.QuickCapture(svc.State.QuickCapture)
	}
	return nil
}
