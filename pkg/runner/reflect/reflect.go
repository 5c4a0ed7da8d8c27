package reflect

import (
	"context"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/store"
)

// Commit writes the reflections singleton and echoes it back.
type Commit struct {
	Values     string
	Milestones string
	Energy     string

	Persistence store.Persistence
}

func (c *Commit) Do(ctx context.Context) error {
	svc, err := app.New(ctx, c.Persistence)
	if err != nil {
		return err
	}
	if err := svc.CommitIntentions(ctx, c.Values, c.Milestones, c.Energy); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("North Star")
	pp.Reflections(svc.State.Reflections)
	return nil
}
