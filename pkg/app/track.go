package app

import (
	"context"
	"time"

	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/timer"
)

// StartTimer begins tracking a deep-work block. Rejected while another block
// is running; the rejected call's parameters are discarded and nothing is
// persisted.
func (s *Service) StartTimer(ctx context.Context, activity, category string, flowBefore int, emotionBefore string) error {
	if err := s.workflow.Start(activity, category, flowBefore, emotionBefore); err != nil {
		return err
	}
	return s.persist(ctx)
}

// StopTimer ends the running block, appends the finished TimeEntry, and
// returns the pending flow-capture the caller resolves with
// SubmitFlowCapture or SkipFlowCapture.
func (s *Service) StopTimer(ctx context.Context) (*state.TimeEntry, *state.PendingCapture, error) {
	entry, pending, err := s.workflow.Stop()
	if err != nil {
		return nil, nil, err
	}
	s.State.TimeEntries = append(s.State.TimeEntries, entry)
	if err := s.persist(ctx); err != nil {
		return nil, nil, err
	}
	return entry, pending, nil
}

// ManualLog records a block after the fact: start = now - d, end = now. The
// duration must lie in (0, 12] hours; nothing is created otherwise. The
// returned pending capture works exactly like StopTimer's.
func (s *Service) ManualLog(ctx context.Context, activity, category string, d time.Duration, flowBefore int, emotionBefore string) (*state.TimeEntry, *state.PendingCapture, error) {
	entry, pending, err := s.workflow.ManualLog(activity, category, d, flowBefore, emotionBefore)
	if err != nil {
		return nil, nil, err
	}
	s.State.TimeEntries = append(s.State.TimeEntries, entry)
	if err := s.persist(ctx); err != nil {
		return nil, nil, err
	}
	return entry, pending, nil
}

// SubmitFlowCapture resolves a pending capture with the post-block
// reflection, creating and persisting the FlowLog. The flow rating is
// validated before the pending capture is consumed, so a bad rating leaves
// the capture outstanding.
func (s *Service) SubmitFlowCapture(ctx context.Context, token string, flowAfter int, emotionAfter, message, motivation string) (*state.FlowLog, error) {
	if flowAfter < timer.MinFlow || flowAfter > timer.MaxFlow {
		return nil, timer.ErrFlowRange
	}
	pending, err := s.workflow.Resolve(token)
	if err != nil {
		return nil, err
	}
	log := state.NewFlowLog(
		pending.TimeEntryID,
		pending.FlowBefore, flowAfter,
		pending.EmotionBefore, emotionAfter,
		message, motivation,
	)
	s.State.FlowLogs = append(s.State.FlowLogs, log)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return log, nil
}

// SkipFlowCapture discards a pending capture without creating a FlowLog.
// Skipping is a normal outcome; only the pending list shrinks.
func (s *Service) SkipFlowCapture(ctx context.Context, token string) error {
	if _, err := s.workflow.Resolve(token); err != nil {
		return err
	}
	return s.persist(ctx)
}

// TimerRunning reports whether a block is currently tracked.
func (s *Service) TimerRunning() bool {
	return s.workflow.Running()
}
