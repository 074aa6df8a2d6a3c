package handler

import (
	"context"
	"errors"
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskService is the part of service.TaskService the HTTP layer uses.
type TaskService interface {
	Configured() bool

	ListProjects(ctx context.Context, includeArchived bool) ([]model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	CreateProject(ctx context.Context, in service.CreateProjectInput) (*model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, patch service.ProjectPatch) (*model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	ListTasks(ctx context.Context, f model.TaskFilter) ([]model.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error)
	CreateTask(ctx context.Context, in service.CreateTaskInput) (*model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	GetTaskStats(ctx context.Context) (model.TaskStats, error)
	GetDeadlineAlerts(ctx context.Context) ([]model.DeadlineAlert, error)

	CreateSubtask(ctx context.Context, in service.CreateSubtaskInput) (*model.Subtask, error)
	ToggleSubtask(ctx context.Context, id uuid.UUID, completed bool) (*model.Subtask, error)
	UpdateSubtask(ctx context.Context, id uuid.UUID, title string) (*model.Subtask, error)
	DeleteSubtask(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, in service.AddCommentInput) (*model.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error

	AttachFile(ctx context.Context, in service.AttachFileInput) (*model.Attachment, error)
	DetachFile(ctx context.Context, taskID, fileID uuid.UUID) error
}

var _ TaskService = (*service.TaskService)(nil)

// parseID reads a uuid path parameter, answering 400 when it is malformed.
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, entity string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Task store is not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
	}
}

// actor picks the acting user: an explicit value from the request body
// wins, then the authenticated user.
func actor(c *gin.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v, ok := c.Get(middleware.UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
