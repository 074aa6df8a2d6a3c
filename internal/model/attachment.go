package model

import (
	"time"

	"github.com/google/uuid"
)

// File is owned by the file storage service; tasks only read it.
type File struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	FileSize     int64     `json:"file_size"`
	PublicURL    string    `json:"public_url"`
}

type Attachment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attachments_task_file" json:"task_id"`
	FileID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attachments_task_file" json:"file_id"`
	AttachedBy string    `gorm:"not null" json:"attached_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	File *File `gorm:"foreignKey:FileID" json:"file,omitempty"`
}
