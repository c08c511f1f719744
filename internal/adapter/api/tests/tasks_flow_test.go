package tests

import (
	"context"

	"tareas/internal/core/domain"
)

func (s *TasksFlowSuite) TestCreate_AppearsExactlyOnceWithServerID() {
	s.login()

	created := s.mustCreate("Buy milk", "", domain.StatusPending, "2024-01-01")
	s.Require().Equal(int64(7), *created.ID)

	count := 0
	for _, task := range s.store.Tasks() {
		if *task.ID == 7 {
			count++
			s.Require().Equal("Buy milk", task.Title)
			s.Require().Equal(domain.StatusPending, task.Status)
			s.Require().Equal("2024-01-01", task.DueDate.Format(domain.DateLayout))
			s.Require().Equal(int64(42), task.OwnerID)
		}
	}
	s.Require().Equal(1, count)
}

func (s *TasksFlowSuite) TestUpdateThenRefresh_NoStaleDraftLingers() {
	s.login()

	created := s.mustCreate("Redactar informe", "borrador", domain.StatusInProgress, "")

	edited := created
	edited.Description = "versión final"
	edited.Status = domain.StatusCompleted

	updated, err := s.store.Update(context.Background(), edited)
	s.Require().NoError(err)

	s.Require().NoError(s.store.Refresh(context.Background(), domain.TaskFilter{}))

	tasks := s.store.Tasks()
	s.Require().Len(tasks, 1)
	s.Require().Equal(updated, tasks[0])
	s.Require().Equal("versión final", tasks[0].Description)
	s.Require().Equal(domain.StatusCompleted, tasks[0].Status)
}

func (s *TasksFlowSuite) TestCompletedTask_CannotBeMovedBack() {
	s.login()

	created := s.mustCreate("Llamar al banco", "", domain.StatusCompleted, "")
	s.store.Select(&created)

	edited := created
	edited.Status = domain.StatusPending

	_, err := s.store.Update(context.Background(), edited)
	s.Require().ErrorIs(err, domain.ErrCompletedImmutable)
	s.Require().Equal("A completed task cannot be modified, only deleted", s.store.Err())

	// Neither side moved.
	s.Require().Equal(domain.StatusCompleted, s.store.Tasks()[0].Status)
	s.Require().NoError(s.store.Refresh(context.Background(), domain.TaskFilter{}))
	s.Require().Equal(domain.StatusCompleted, s.store.Tasks()[0].Status)
}

func (s *TasksFlowSuite) TestDelete_RemovesExactlyOne() {
	s.login()

	s.mustCreate("Comprar leche", "", domain.StatusPending, "")
	keep := s.mustCreate("Pagar alquiler", "", domain.StatusPending, "")
	doomed := s.mustCreate("Llamar al banco", "", domain.StatusPending, "")

	s.Require().NoError(s.store.Delete(context.Background(), *doomed.ID))

	ids := s.taskIDs()
	s.Require().Len(ids, 2)
	s.Require().NotContains(ids, *doomed.ID)
	s.Require().Contains(ids, *keep.ID)
}

func (s *TasksFlowSuite) TestDelete_NotFoundKeepsListIntact() {
	s.login()

	s.mustCreate("Comprar leche", "", domain.StatusPending, "")
	before := s.store.Tasks()

	err := s.store.Delete(context.Background(), 99)
	s.Require().Error(err)

	s.Require().Equal("Tarea no encontrada", s.store.Err())
	s.Require().Equal(before, s.store.Tasks())
}

func (s *TasksFlowSuite) TestListFilters_AreAppliedByBackend() {
	s.login()

	s.mustCreate("Comprar leche", "", domain.StatusPending, "2024-01-01")
	s.mustCreate("Pagar alquiler", "", domain.StatusCompleted, "2024-02-01")

	s.Require().NoError(s.store.Refresh(context.Background(), domain.TaskFilter{Status: domain.StatusCompleted}))
	s.Require().Len(s.store.Tasks(), 1)
	s.Require().Equal("Pagar alquiler", s.store.Tasks()[0].Title)

	s.Require().NoError(s.store.Refresh(context.Background(), domain.TaskFilter{Text: "leche"}))
	s.Require().Len(s.store.Tasks(), 1)
	s.Require().Equal("Comprar leche", s.store.Tasks()[0].Title)
}

func (s *TasksFlowSuite) TestWithoutSession_RequestsAreSentAnd401Surfaces() {
	err := s.store.Refresh(context.Background(), domain.TaskFilter{})
	s.Require().Error(err)
	s.Require().Equal("No autorizado", s.store.Err())
	s.Require().Empty(s.store.Tasks())
}

func (s *TasksFlowSuite) TestSignupThenLogin() {
	message, err := s.auth.Signup(context.Background(), "Ana", "ana@example.com", "secreta")
	s.Require().NoError(err)
	s.Require().Equal("Usuario creado", message)

	s.login()
	s.Require().True(s.session.IsAuthenticated())
	s.Require().Equal(int64(42), s.session.UserID())
	s.Require().Equal("ana@example.com", s.session.Email())
}
