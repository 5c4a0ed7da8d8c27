package weekly

import (
	"context"
	"fmt"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Add appends an action to a weekly bucket and prints the board.
type Add struct {
	Bucket     string
	Action     string
	Motivation string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc, err := app.New(ctx, a.Persistence)
	if err != nil {
		return err
	}
	if _, err := svc.AddWeeklyAction(ctx, a.Bucket, a.Action, a.Motivation); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Weekly(svc.State.WeeklyActions)
	return nil
}

// Focus picks up to three Today actions into the focus view.
type Focus struct {
	Persistence store.Persistence
}

func (f *Focus) Do(ctx context.Context) error {
	svc, err := app.New(ctx, f.Persistence)
	if err != nil {
		return err
	}
	actions, err := svc.SendFocusToToday()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Today Focus")
	pp.Focus(actions)
	return nil
}

// AddCategory registers a custom deep-work category for the timer.
type AddCategory struct {
	Label string

	Persistence store.Persistence
}

func (a *AddCategory) Do(ctx context.Context) error {
	svc, err := app.New(ctx, a.Persistence)
	if err != nil {
		return err
	}
	if err := svc.AddTimerCategory(ctx, a.Label); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Deep-work categories", len(svc.State.TimerCats))
	for _, c := range svc.State.TimerCats {
		fmt.Printf("  %s\n", c)
	}
	pp.NewLine()
	return nil
}
