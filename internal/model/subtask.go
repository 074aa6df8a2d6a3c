package model

import "github.com/google/uuid"

type Subtask struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index:idx_subtasks_task_order,priority:1" json:"task_id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	SortOrder int       `gorm:"not null;default:0;index:idx_subtasks_task_order,priority:2" json:"sort_order"`
}
