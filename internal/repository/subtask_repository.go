package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

// Create inserts a subtask. Unless explicitOrder is set, the subtask is
// appended after the task's current last subtask. The parent task row is
// locked for the duration so concurrent appends cannot share a sort_order.
func (r *SubtaskRepository) Create(ctx context.Context, subtask *model.Subtask, explicitOrder bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent model.Task
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&parent, "id = ?", subtask.TaskID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if !explicitOrder {
			var maxOrder struct {
				Max int
			}
			if err := tx.Model(&model.Subtask{}).
				Select("COALESCE(MAX(sort_order), -1) AS max").
				Where("task_id = ?", subtask.TaskID).
				Scan(&maxOrder).Error; err != nil {
				return err
			}
			subtask.SortOrder = maxOrder.Max + 1
		}

		return tx.Create(subtask).Error
	})
}

func (r *SubtaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subtask, error) {
	var subtask model.Subtask
	if err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtaskNotFound
		}
		return nil, err
	}
	return &subtask, nil
}

// Update applies the columns and returns the stored subtask.
func (r *SubtaskRepository) Update(ctx context.Context, id uuid.UUID, cols map[string]any) (*model.Subtask, error) {
	result := r.db.WithContext(ctx).Model(&model.Subtask{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSubtaskNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SubtaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Subtask{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubtaskNotFound
	}
	return nil
}
