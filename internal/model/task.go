package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// Statuses lists every status in board order.
var Statuses = []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

var Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description *string      `json:"description,omitempty"`
	ProjectID   *uuid.UUID   `gorm:"type:uuid;index" json:"project_id"`
	Status      TaskStatus   `gorm:"type:varchar(16);not null;default:'todo';index" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	Assignee    *string      `gorm:"index" json:"assignee,omitempty"`
	Deadline    *time.Time   `gorm:"index" json:"deadline,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`

	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Subtasks    []Subtask    `gorm:"foreignKey:TaskID" json:"subtasks"`
	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments"`
}

// Normalize replaces nil embedded collections with empty slices so they
// encode as [] rather than null.
func (t *Task) Normalize() {
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
	if t.Comments == nil {
		t.Comments = []Comment{}
	}
	if t.Attachments == nil {
		t.Attachments = []Attachment{}
	}
}

// TaskFilter narrows ListTasks. Overdue and DueSoon are evaluated after the
// query returns since they depend on the current time.
type TaskFilter struct {
	ProjectID   *uuid.UUID
	Status      *TaskStatus
	Priority    *TaskPriority
	Assignee    *string
	HasDeadline bool
	Overdue     bool
	DueSoon     bool
}

// TaskPatch carries a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	ProjectID        *uuid.UUID
	ClearProject     bool
	Status           *TaskStatus
	Priority         *TaskPriority
	Assignee         *string
	ClearAssignee    bool
	Deadline         *time.Time
	ClearDeadline    bool
	CompletedAt      *time.Time
	ClearComplete    bool
}

// Columns converts the patch into a column map for the store.
func (p TaskPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.ClearDescription {
		cols["description"] = nil
	} else if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.ClearProject {
		cols["project_id"] = nil
	} else if p.ProjectID != nil {
		cols["project_id"] = *p.ProjectID
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Priority != nil {
		cols["priority"] = *p.Priority
	}
	if p.ClearAssignee {
		cols["assignee"] = nil
	} else if p.Assignee != nil {
		cols["assignee"] = *p.Assignee
	}
	if p.ClearDeadline {
		cols["deadline"] = nil
	} else if p.Deadline != nil {
		cols["deadline"] = *p.Deadline
	}
	if p.ClearComplete {
		cols["completed_at"] = nil
	} else if p.CompletedAt != nil {
		cols["completed_at"] = *p.CompletedAt
	}
	return cols
}

type TaskStats struct {
	ByStatus          map[TaskStatus]int   `json:"by_status"`
	ByPriority        map[TaskPriority]int `json:"by_priority"`
	Overdue           int                  `json:"overdue"`
	DueSoon           int                  `json:"due_soon"`
	CompletedThisWeek int                  `json:"completed_this_week"`
	Total             int                  `json:"total"`
}

// NewTaskStats returns stats with every status and priority key present.
func NewTaskStats() TaskStats {
	st := TaskStats{
		ByStatus:   make(map[TaskStatus]int, len(Statuses)),
		ByPriority: make(map[TaskPriority]int, len(Priorities)),
	}
	for _, s := range Statuses {
		st.ByStatus[s] = 0
	}
	for _, p := range Priorities {
		st.ByPriority[p] = 0
	}
	return st
}
