package mapper

import (
	"time"

	"tareas/internal/adapter/api/dto"
	"tareas/internal/core/domain"
)

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		Titulo:      task.Title,
		Descripcion: task.Description,
		Estado:      string(task.Status),
		UsuarioID:   task.OwnerID,
	}

	if task.ID != nil {
		value := *task.ID
		item.ID = &value
	}

	if task.DueDate != nil {
		item.FechaLimite = task.DueDate.Format(domain.DateLayout)
	}

	return item
}

func ToDomainTasks(items []dto.TaskItem) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task, err := ToDomainTask(item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func ToDomainTask(item dto.TaskItem) (domain.Task, error) {
	status, err := domain.ParseStatus(item.Estado)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		Title:       item.Titulo,
		Description: item.Descripcion,
		Status:      status,
		OwnerID:     item.UsuarioID,
	}

	if item.ID != nil {
		value := *item.ID
		task.ID = &value
	}

	if item.FechaLimite != "" {
		dueDate, err := parseDate(item.FechaLimite)
		if err != nil {
			return domain.Task{}, err
		}
		task.DueDate = &dueDate
	}

	return task, nil
}

// parseDate accepts the canonical date-only layout and, for tolerance
// with backends that echo full timestamps, RFC 3339.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(domain.DateLayout, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Truncate(24 * time.Hour), nil
}
