package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type CreateTaskInput struct {
	Title       string
	Description *string
	ProjectID   *uuid.UUID
	// Status is accepted for symmetry with updates but new tasks always
	// start in todo.
	Status   model.TaskStatus
	Priority model.TaskPriority
	Assignee *string
	Deadline *time.Time
}

// ListTasks returns tasks newest first with every embedded collection
// filled in.
func (s *TaskService) ListTasks(ctx context.Context, f model.TaskFilter) ([]model.Task, error) {
	if s.store == nil {
		s.degraded("list tasks")
		return []model.Task{}, nil
	}
	tasks, err := s.store.Tasks.List(ctx, f)
	if err != nil {
		return nil, s.fail("list tasks", err)
	}

	now := s.now()
	out := make([]model.Task, 0, len(tasks))
	for i := range tasks {
		t := tasks[i]
		if f.Overdue && !t.IsOverdue(now) {
			continue
		}
		if f.DueSoon && !t.IsDueSoon(now) {
			continue
		}
		t.Normalize()
		out = append(out, t)
	}
	return out, nil
}

// GetTask loads the task with its project and subtasks, then fetches
// comments and attachments side by side.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	task, err := s.store.Tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get task", err)
	}

	var (
		comments    []model.Comment
		attachments []model.Attachment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.store.Comments.ListByTask(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		attachments, err = s.store.Attachments.ListByTask(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("get task", err)
	}

	task.Comments = comments
	task.Attachments = attachments
	task.Normalize()
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("task title is required")
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalid("unknown priority %q", priority)
	}

	assignee := in.Assignee
	if assignee != nil && strings.TrimSpace(*assignee) == "" {
		assignee = nil
	}

	task := &model.Task{
		Title:       title,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		Status:      model.StatusTodo,
		Priority:    priority,
		Assignee:    assignee,
		Deadline:    in.Deadline,
	}
	if err := s.store.Tasks.Create(ctx, task); err != nil {
		return nil, s.fail("create task", err)
	}
	return s.GetTask(ctx, task.ID)
}

// UpdateTask applies a partial update and returns the re-read task. Moving
// a task into done stamps completed_at; moving it out clears it.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (*model.Task, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, invalid("task title cannot be empty")
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, invalid("unknown priority %q", *patch.Priority)
	}
	if patch.Assignee != nil && strings.TrimSpace(*patch.Assignee) == "" {
		patch.Assignee = nil
		patch.ClearAssignee = true
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, invalid("unknown status %q", *patch.Status)
		}
		current, err := s.store.Tasks.GetByID(ctx, id)
		if err != nil {
			return nil, s.fail("update task", err)
		}
		switch {
		case *patch.Status == model.StatusDone && current.Status != model.StatusDone:
			if patch.CompletedAt == nil {
				now := s.now()
				patch.CompletedAt = &now
			}
		case *patch.Status != model.StatusDone && current.CompletedAt != nil:
			patch.ClearComplete = true
			patch.CompletedAt = nil
		}
	}

	if err := s.store.Tasks.Update(ctx, id, patch.Columns()); err != nil {
		return nil, s.fail("update task", err)
	}
	return s.GetTask(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if err := s.store.Tasks.Delete(ctx, id); err != nil {
		return s.fail("delete task", err)
	}
	return nil
}
