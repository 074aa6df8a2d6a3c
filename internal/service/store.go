package service

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	List(ctx context.Context, includeArchived bool) ([]model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id uuid.UUID, cols map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, f model.TaskFilter) ([]model.Task, error)
	ListOpenWithDeadline(ctx context.Context) ([]model.Task, error)
	ListForStats(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, cols map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubtaskRepository interface {
	Create(ctx context.Context, subtask *model.Subtask, explicitOrder bool) error
	Update(ctx context.Context, id uuid.UUID, cols map[string]any) (*model.Subtask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *model.Attachment) (*model.Attachment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Attachment, error)
	Delete(ctx context.Context, taskID, fileID uuid.UUID) error
}

// Store groups the repositories the service talks to. A nil *Store means
// the row store is not configured.
type Store struct {
	Projects    ProjectRepository
	Tasks       TaskRepository
	Subtasks    SubtaskRepository
	Comments    CommentRepository
	Attachments AttachmentRepository
}

// NewGormStore builds a Store backed by the gorm repositories.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Projects:    repository.NewProjectRepository(db),
		Tasks:       repository.NewTaskRepository(db),
		Subtasks:    repository.NewSubtaskRepository(db),
		Comments:    repository.NewCommentRepository(db),
		Attachments: repository.NewAttachmentRepository(db),
	}
}
