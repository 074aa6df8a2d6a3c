package service

import (
	"context"
	"strings"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

const DefaultProjectColor = "#6366f1"

type CreateProjectInput struct {
	Name        string
	Description *string
	Color       string
	CreatedBy   string
}

// ProjectPatch carries a partial project update. An empty description
// clears it.
type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
	Archived    *bool
}

func (p ProjectPatch) columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			cols["description"] = nil
		} else {
			cols["description"] = *p.Description
		}
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	if p.Archived != nil {
		cols["archived"] = *p.Archived
	}
	return cols
}

func (s *TaskService) ListProjects(ctx context.Context, includeArchived bool) ([]model.Project, error) {
	if s.store == nil {
		s.degraded("list projects")
		return []model.Project{}, nil
	}
	projects, err := s.store.Projects.List(ctx, includeArchived)
	if err != nil {
		return nil, s.fail("list projects", err)
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

func (s *TaskService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	project, err := s.store.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get project", err)
	}
	return project, nil
}

func (s *TaskService) CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("project name is required")
	}
	color := in.Color
	if color == "" {
		color = DefaultProjectColor
	}

	project := &model.Project{
		Name:        name,
		Description: in.Description,
		Color:       color,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.store.Projects.Create(ctx, project); err != nil {
		return nil, s.fail("create project", err)
	}
	return project, nil
}

func (s *TaskService) UpdateProject(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*model.Project, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, invalid("project name cannot be empty")
	}
	if err := s.store.Projects.Update(ctx, id, patch.columns()); err != nil {
		return nil, s.fail("update project", err)
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes the project. Its tasks stay and become unassigned.
func (s *TaskService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if err := s.store.Projects.Delete(ctx, id); err != nil {
		return s.fail("delete project", err)
	}
	return nil
}
