package handler_test

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTaskService is a testify mock of handler.TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockTaskService) ListProjects(ctx context.Context, includeArchived bool) ([]model.Project, error) {
	args := m.Called(ctx, includeArchived)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockTaskService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) CreateProject(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) UpdateProject(ctx context.Context, id uuid.UUID, patch service.ProjectPatch) (*model.Project, error) {
	args := m.Called(ctx, id, patch)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) ListTasks(ctx context.Context, f model.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, in service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, in)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (*model.Task, error) {
	args := m.Called(ctx, id, patch)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) GetTaskStats(ctx context.Context) (model.TaskStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.TaskStats), args.Error(1)
}

func (m *MockTaskService) GetDeadlineAlerts(ctx context.Context) ([]model.DeadlineAlert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.DeadlineAlert), args.Error(1)
}

func (m *MockTaskService) CreateSubtask(ctx context.Context, in service.CreateSubtaskInput) (*model.Subtask, error) {
	args := m.Called(ctx, in)
	if s := args.Get(0); s != nil {
		return s.(*model.Subtask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) ToggleSubtask(ctx context.Context, id uuid.UUID, completed bool) (*model.Subtask, error) {
	args := m.Called(ctx, id, completed)
	if s := args.Get(0); s != nil {
		return s.(*model.Subtask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) UpdateSubtask(ctx context.Context, id uuid.UUID, title string) (*model.Subtask, error) {
	args := m.Called(ctx, id, title)
	if s := args.Get(0); s != nil {
		return s.(*model.Subtask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) DeleteSubtask(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) AddComment(ctx context.Context, in service.AddCommentInput) (*model.Comment, error) {
	args := m.Called(ctx, in)
	if c := args.Get(0); c != nil {
		return c.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) AttachFile(ctx context.Context, in service.AttachFileInput) (*model.Attachment, error) {
	args := m.Called(ctx, in)
	if a := args.Get(0); a != nil {
		return a.(*model.Attachment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) DetachFile(ctx context.Context, taskID, fileID uuid.UUID) error {
	return m.Called(ctx, taskID, fileID).Error(0)
}
