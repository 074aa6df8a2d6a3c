package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create links a file to a task and returns the link with file metadata.
// Attaching the same file twice returns the existing link. An unknown task
// or file gives ErrTaskNotFound or ErrFileNotFound.
func (r *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) (*model.Attachment, error) {
	err := r.db.WithContext(ctx).
		Omit("File").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(attachment).Error
	if err != nil {
		return nil, missingReference(err)
	}

	var stored model.Attachment
	err = r.db.WithContext(ctx).
		Preload("File").
		Where("task_id = ? AND file_id = ?", attachment.TaskID, attachment.FileID).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return &stored, nil
}

// ListByTask returns a task's attachments with file metadata.
func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Attachment, error) {
	var attachments []model.Attachment
	err := r.db.WithContext(ctx).
		Preload("File").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// Delete removes the link between a task and a file.
func (r *AttachmentRepository) Delete(ctx context.Context, taskID, fileID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("task_id = ? AND file_id = ?", taskID, fileID).
		Delete(&model.Attachment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
