package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/actionmenu/pkg/state"
)

var (
	ErrCaptureText     = errors.New("app: capture text required")
	ErrCaptureNotFound = errors.New("app: capture item not found")
	ErrTextUnchanged   = errors.New("app: new text matches the current text")
)

// AddQuickCapture drops a thought into the inbox.
func (s *Service) AddQuickCapture(ctx context.Context, text string) (*state.QuickCaptureItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCaptureText
	}
	item := state.NewQuickCaptureItem(text)
	s.State.QuickCapture = append(s.State.QuickCapture, item)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuickCaptureStatus moves the selected items to the target status and
// reports how many actually changed. Items already in the target status do
// not count, and the batch persists at most once — only when something
// changed.
func (s *Service) UpdateQuickCaptureStatus(ctx context.Context, ids []string, status state.CaptureStatus) (int, error) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	changed := 0
	for _, item := range s.State.QuickCapture {
		if selected[item.ID] && item.Status != status {
			item.Status = status
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := s.persist(ctx); err != nil {
		return changed, err
	}
	return changed, nil
}

// EditQuickCaptureText replaces an item's text in place. The new text must be
// non-empty and differ from the current text to count as an update.
func (s *Service) EditQuickCaptureText(ctx context.Context, id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrCaptureText
	}
	item := s.State.QuickCaptureByID(id)
	if item == nil {
		return ErrCaptureNotFound
	}
	if item.Text == text {
		return ErrTextUnchanged
	}
	item.Text = text
	return s.persist(ctx)
}

// DeleteQuickCaptureItems removes the matching ids outright — no soft-delete
// flag — and reports the count removed. Persistence only happens when at
// least one item went away.
func (s *Service) DeleteQuickCaptureItems(ctx context.Context, ids []string) (int, error) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	kept := s.State.QuickCapture[:0]
	removed := 0
	for _, item := range s.State.QuickCapture {
		if selected[item.ID] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.State.QuickCapture = kept
	if removed == 0 {
		return 0, nil
	}
	if err := s.persist(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}
