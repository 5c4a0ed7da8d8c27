package goal

import (
	"context"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Add creates a SMART goal and prints the updated goal list.
type Add struct {
	Input  app.GoalInput
	ShowID bool

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc, err := app.New(ctx, a.Persistence)
	if err != nil {
		return err
	}
	if _, err := svc.AddGoal(ctx, a.Input); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.TitleWithCount("SMART Goals", len(svc.State.Goals))
	pp.Goals(svc.State.Goals)
	return nil
}
