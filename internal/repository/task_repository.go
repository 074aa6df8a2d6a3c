package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func orderedSubtasks(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func orderedComments(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit("Project", "Subtasks", "Comments", "Attachments").Create(task).Error
}

// GetByID loads a task with its project and subtasks. Comments and
// attachments are read separately.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Subtasks", orderedSubtasks).
		First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// List retrieves tasks with every embedded collection, newest first. Only
// the equality filters are pushed down to SQL.
func (r *TaskRepository) List(ctx context.Context, f model.TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Subtasks", orderedSubtasks).
		Preload("Comments", orderedComments).
		Preload("Attachments.File")

	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}
	if f.Assignee != nil {
		q = q.Where("assignee = ?", *f.Assignee)
	}
	if f.HasDeadline {
		q = q.Where("deadline IS NOT NULL")
	}

	var tasks []model.Task
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOpenWithDeadline returns unfinished tasks that have a deadline,
// earliest deadline first.
func (r *TaskRepository) ListOpenWithDeadline(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Project", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "color")
		}).
		Where("deadline IS NOT NULL AND status <> ?", model.StatusDone).
		Order("deadline ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListForStats loads only the columns the statistics need.
func (r *TaskRepository) ListForStats(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Select("id", "status", "priority", "deadline", "completed_at").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies the given columns to a task
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, cols map[string]any) error {
	if len(cols) == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTaskNotFound
		}
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task together with its subtasks, comments and
// attachment links so no child row is left referencing it.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{&model.Subtask{}, &model.Comment{}, &model.Attachment{}} {
			if err := tx.Where("task_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Task{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}
