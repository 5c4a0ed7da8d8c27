// Package capture provides runners for the quick-capture inbox.
package capture

import (
	"context"
	"fmt"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/printers"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
)

// Add drops a thought into the inbox.
type Add struct {
	Text string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc, err := app.New(ctx, a.Persistence)
	if err != nil {
		return err
	}
	if _, err := svc.AddQuickCapture(ctx, a.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Quick Capture", len(svc.State.QuickCapture))
	pp.QuickCapture(svc.State.QuickCapture)
	return nil
}

// Status triages the selected items into a new status and reports how many
// actually moved.
type Status struct {
	IDs    []string
	Status state.CaptureStatus

	Persistence store.Persistence
}

func (s *Status) Do(ctx context.Context) error {
	svc, err := app.New(ctx, s.Persistence)
	if err != nil {
		return err
	}
	changed, err := svc.UpdateQuickCaptureStatus(ctx, s.IDs, s.Status)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %d item(s) to %s.\n", changed, s.Status)

	pp := printers.PrettyPrint{}
	pp.QuickCapture(svc.State.QuickCapture)
	return nil
}

// Edit replaces an item's text in place.
type Edit struct {
	ID   string
	Text string

	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	svc, err := app.New(ctx, e.Persistence)
	if err != nil {
		return err
	}
	if err := svc.EditQuickCaptureText(ctx, e.ID, e.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.QuickCapture(svc.State.QuickCapture)
	return nil
}

// Delete removes the selected items and reports the count removed.
type Delete struct {
	IDs []string

	Persistence store.Persistence
}

func (d *Delete) Do(ctx context.Context) error {
	svc, err := app.New(ctx, d.Persistence)
	if err != nil {
		return err
	}
	removed, err := svc.DeleteQuickCaptureItems(ctx, d.IDs)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d item(s).\n", removed)

	pp := printers.PrettyPrint{}
	pp.QuickCapture(svc.State.QuickCapture)
	return nil
}
