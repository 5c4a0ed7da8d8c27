package habit

import (
	"context"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Add creates a habit plan and prints the updated habit list.
type Add struct {
	Input  app.HabitInput
	ShowID bool

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc, err := app.New(ctx, a.Persistence)
	if err != nil {
		return err
	}
	if _, err := svc.AddHabit(ctx, a.Input); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.TitleWithCount("Habits", len(svc.State.Habits))
	pp.Habits(svc.State.Habits)
	return nil
}
