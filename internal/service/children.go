package service

import (
	"context"
	"strings"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

type CreateSubtaskInput struct {
	TaskID    uuid.UUID
	Title     string
	SortOrder *int
}

type AddCommentInput struct {
	TaskID  uuid.UUID
	Content string
	Author  string
}

type AttachFileInput struct {
	TaskID     uuid.UUID
	FileID     uuid.UUID
	AttachedBy string
}

// CreateSubtask appends a subtask to its task unless an explicit sort order
// is given.
func (s *TaskService) CreateSubtask(ctx context.Context, in CreateSubtaskInput) (*model.Subtask, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("subtask title is required")
	}

	subtask := &model.Subtask{TaskID: in.TaskID, Title: title}
	if in.SortOrder != nil {
		subtask.SortOrder = *in.SortOrder
	}
	if err := s.store.Subtasks.Create(ctx, subtask, in.SortOrder != nil); err != nil {
		return nil, s.fail("create subtask", err)
	}
	return subtask, nil
}

func (s *TaskService) ToggleSubtask(ctx context.Context, id uuid.UUID, completed bool) (*model.Subtask, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	subtask, err := s.store.Subtasks.Update(ctx, id, map[string]any{"completed": completed})
	if err != nil {
		return nil, s.fail("toggle subtask", err)
	}
	return subtask, nil
}

func (s *TaskService) UpdateSubtask(ctx context.Context, id uuid.UUID, title string) (*model.Subtask, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("subtask title is required")
	}
	subtask, err := s.store.Subtasks.Update(ctx, id, map[string]any{"title": title})
	if err != nil {
		return nil, s.fail("update subtask", err)
	}
	return subtask, nil
}

func (s *TaskService) DeleteSubtask(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if err := s.store.Subtasks.Delete(ctx, id); err != nil {
		return s.fail("delete subtask", err)
	}
	return nil
}

func (s *TaskService) AddComment(ctx context.Context, in AddCommentInput) (*model.Comment, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, invalid("comment content is required")
	}

	comment := &model.Comment{TaskID: in.TaskID, Content: content, Author: in.Author}
	if err := s.store.Comments.Create(ctx, comment); err != nil {
		return nil, s.fail("add comment", err)
	}
	return comment, nil
}

func (s *TaskService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if err := s.store.Comments.Delete(ctx, id); err != nil {
		return s.fail("delete comment", err)
	}
	return nil
}

// AttachFile links a stored file to a task and returns the link with the
// file's metadata.
func (s *TaskService) AttachFile(ctx context.Context, in AttachFileInput) (*model.Attachment, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	attachment, err := s.store.Attachments.Create(ctx, &model.Attachment{
		TaskID:     in.TaskID,
		FileID:     in.FileID,
		AttachedBy: in.AttachedBy,
	})
	if err != nil {
		return nil, s.fail("attach file", err)
	}
	return attachment, nil
}

func (s *TaskService) DetachFile(ctx context.Context, taskID, fileID uuid.UUID) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if err := s.store.Attachments.Delete(ctx, taskID, fileID); err != nil {
		return s.fail("detach file", err)
	}
	return nil
}
