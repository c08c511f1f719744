package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"tareas/internal/core/domain"
	"tareas/internal/core/ports"
	"tareas/internal/session"
	"tareas/pkg/clienterr"
)

// TaskStore owns the authoritative in-memory task list. Mutations are
// never optimistic: the list only changes with data the backend returned,
// so past every successful round trip the local copy matches the last
// known server state.
type TaskStore struct {
	repo    ports.TaskRepository
	session *session.Session
	policy  domain.TransitionPolicy
	lang    string

	mu         sync.RWMutex
	tasks      []domain.Task
	selected   *domain.Task
	loading    bool
	lastError  string
	refreshSeq uint64
}

func New(repo ports.TaskRepository, sess *session.Session, policy domain.TransitionPolicy, lang string) *TaskStore {
	return &TaskStore{
		repo:    repo,
		session: sess,
		policy:  policy,
		lang:    lang,
	}
}

// Refresh replaces the task list wholesale with the backend's view. Each
// call takes a fresh sequence number; a response that arrives after a
// newer refresh has been issued is discarded so it cannot overwrite
// fresher state.
func (s *TaskStore) Refresh(ctx context.Context, filter domain.TaskFilter) error {
	s.mu.Lock()
	s.refreshSeq++
	seq := s.refreshSeq
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	tasks, err := s.repo.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.refreshSeq {
		zap.L().Debug("discarding stale refresh response", zap.Uint64("seq", seq), zap.Uint64("latest", s.refreshSeq))
		return nil
	}

	s.loading = false
	if err != nil {
		s.lastError = s.message(err, clienterr.MsgFailLoadTasks)
		return err
	}

	s.tasks = tasks
	return nil
}

// Create persists a draft and appends the backend's returned record to
// the end of the list. The owner is stamped from the session; a draft
// never carries an id. The error is returned so the caller can keep its
// form open.
func (s *TaskStore) Create(ctx context.Context, draft domain.Task) (domain.Task, error) {
	draft.ID = nil
	draft.OwnerID = s.session.UserID()

	created, err := s.repo.Create(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = s.message(err, clienterr.MsgFailCreateTask)
		return domain.Task{}, err
	}

	s.lastError = ""
	s.tasks = append(s.tasks, created)
	return created, nil
}

// Update runs the transition guard against the currently held copy before
// any network dispatch, then replaces the matching entry with the backend
// echo and clears the selection. On failure the selection is kept so the
// edit dialog can stay open.
func (s *TaskStore) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	if !task.Persisted() {
		err := domain.ErrTaskIDRequired
		s.setError(err, clienterr.MsgFailUpdateTask)
		return domain.Task{}, err
	}

	if err := s.policy.Check(s.currentStatus(*task.ID), task.Status); err != nil {
		s.setError(err, clienterr.MsgFailUpdateTask)
		return domain.Task{}, err
	}

	updated, err := s.repo.Update(ctx, task)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = s.message(err, clienterr.MsgFailUpdateTask)
		return domain.Task{}, err
	}

	s.lastError = ""
	for i := range s.tasks {
		if s.tasks[i].ID != nil && updated.ID != nil && *s.tasks[i].ID == *updated.ID {
			s.tasks[i] = updated
			break
		}
	}
	s.selected = nil
	return updated, nil
}

// Delete removes the entry with the matching id, but only after the
// backend confirms the deletion.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = s.message(err, clienterr.MsgFailDeleteTask)
		return err
	}

	s.lastError = ""
	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != nil && *t.ID == id {
			continue
		}
		tasks = append(tasks, t)
	}
	s.tasks = tasks
	return nil
}

// Select sets the task held for editing or deletion dialogs. Passing nil
// clears the selection. Pure state assignment, no network effect.
func (s *TaskStore) Select(task *domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task == nil {
		s.selected = nil
		return
	}
	value := *task
	s.selected = &value
}

// Tasks returns a copy of the list in server-assigned order.
func (s *TaskStore) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *TaskStore) Selected() *domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	value := *s.selected
	return &value
}

func (s *TaskStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded human-readable error message, or "".
func (s *TaskStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *TaskStore) currentStatus(id int64) *domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID != nil && *s.tasks[i].ID == id {
			status := s.tasks[i].Status
			return &status
		}
	}
	return nil
}

func (s *TaskStore) setError(err error, fallbackKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = s.message(err, fallbackKey)
}

// message turns an error into the localized string recorded for the
// presentation layer. Backend-provided messages win over the generic
// per-operation fallback.
func (s *TaskStore) message(err error, fallbackKey string) string {
	var fetchErr clienterr.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Message != "" {
		return fetchErr.Message
	}

	var validationErr clienterr.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	key := fallbackKey
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		key = clienterr.MsgTitleRequired
	case errors.Is(err, domain.ErrTaskIDRequired):
		key = clienterr.MsgTaskIDRequired
	case errors.Is(err, domain.ErrUnknownStatus):
		key = clienterr.MsgUnknownStatus
	case errors.Is(err, domain.ErrTransitionBackToPending):
		key = clienterr.MsgTransitionBackToPending
	case errors.Is(err, domain.ErrCompletedImmutable):
		key = clienterr.MsgCompletedImmutable
	case errors.Is(err, domain.ErrTransitionStartInProgress):
		key = clienterr.MsgTransitionStartInProgress
	}
	return clienterr.Translate(key, s.lang)
}
