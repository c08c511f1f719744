package domain

// TransitionPolicy decides whether a requested status change is legal.
// The zero value reproduces the backend UI's production behavior,
// including the rule that blocks moving a pending task to in progress;
// set AllowPendingProgress to lift that rule.
type TransitionPolicy struct {
	AllowPendingProgress bool
}

// Check validates a status change. prev is nil for a task that has never
// had a status; any initial status may be chosen then. Rules are applied
// in priority order and the first match wins. Check is pure: no I/O, no
// shared state.
func (p TransitionPolicy) Check(prev *Status, next Status) error {
	if prev == nil {
		return nil
	}
	if *prev == StatusInProgress && next == StatusPending {
		return ErrTransitionBackToPending
	}
	if *prev == StatusCompleted && next != StatusCompleted {
		return ErrCompletedImmutable
	}
	if !p.AllowPendingProgress && *prev == StatusPending && next == StatusInProgress {
		return ErrTransitionStartInProgress
	}
	return nil
}
