package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	Content   string    `gorm:"not null" json:"content"`
	Author    string    `gorm:"not null" json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
