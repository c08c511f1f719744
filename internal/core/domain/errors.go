package domain

import "errors"

var (
	ErrTitleRequired  = errors.New("task title is required")
	ErrTaskIDRequired = errors.New("task id required for update")
	ErrUnknownStatus  = errors.New("unknown task status")

	ErrTransitionBackToPending   = errors.New("cannot return an in-progress task to pending")
	ErrCompletedImmutable        = errors.New("a completed task cannot be modified, only deleted")
	ErrTransitionStartInProgress = errors.New("cannot mark a pending task as in progress")
)
