package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `gorm:"not null;default:'#6366f1'" json:"color"`
	Archived    bool      `gorm:"not null;default:false;index" json:"archived"`
	CreatedBy   string    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ProjectRef is the trimmed project embedded in deadline alerts.
type ProjectRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

func (p *Project) Ref() *ProjectRef {
	if p == nil {
		return nil
	}
	return &ProjectRef{ID: p.ID, Name: p.Name, Color: p.Color}
}
