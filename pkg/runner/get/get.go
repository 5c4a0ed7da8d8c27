// Package get provides the read-only runner that renders state sections.
package get

import (
	"context"
	"fmt"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Section names accepted by the get command.
const (
	SectionReflections = "reflections"
	SectionGoals       = "goals"
	SectionHabits      = "habits"
	SectionWeekly      = "weekly"
	SectionEntries     = "entries"
	SectionEffort      = "effort"
	SectionFlow        = "flow"
	SectionJournal     = "journal"
	SectionCapture     = "capture"
)

// Get renders one section of the state, or all of them.
type Get struct {
	Section string
	ShowID  bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc, err := app.New(ctx, g.Persistence)
	if err != nil {
		return err
	}
	s := svc.State
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	switch g.Section {
	case SectionReflections:
		pp.Title("Intentions")
		pp.Reflections(s.Reflections)
	case SectionGoals:
		pp.TitleWithCount("Goals", len(s.Goals))
		pp.Goals(s.Goals)
	case SectionHabits:
		pp.TitleWithCount("Habits", len(s.Habits))
		pp.Habits(s.Habits)
	case SectionWeekly:
		pp.Weekly(s.WeeklyActions)
	case SectionEntries:
		pp.TitleWithCount("Time Tracker", len(s.TimeEntries))
		pp.TimeEntries(s.TimeEntries)
	case SectionEffort:
		pp.Title("Effort by category")
		pp.Effort(s.EffortByCategory())
	case SectionFlow:
		pp.TitleWithCount("Flow Log", len(s.FlowLogs))
		pp.FlowLogs(s.FlowLogs, s)
	case SectionJournal:
		pp.TitleWithCount("Journal", len(s.JournalEntries))
		pp.JournalEntries(s.JournalEntries)
	case SectionCapture:
		pp.TitleWithCount("Quick Capture", len(s.QuickCapture))
		pp.QuickCapture(s.QuickCapture)
	case "", "all":
		pp.Title("Intentions")
		pp.Reflections(s.Reflections)
		pp.TitleWithCount("Goals", len(s.Goals))
		pp.Goals(s.Goals)
		pp.TitleWithCount("Habits", len(s.Habits))
		pp.Habits(s.Habits)
		pp.Weekly(s.WeeklyActions)
		pp.TitleWithCount("Time Tracker", len(s.TimeEntries))
		pp.TimeEntries(s.TimeEntries)
		pp.TitleWithCount("Quick Capture", len(s.QuickCapture))
		pp.QuickCapture(s.QuickCapture)
	default:
		return fmt.Errorf("get: unknown section %q", g.Section)
	}
	return nil
}
