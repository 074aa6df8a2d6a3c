package handler

import (
	"net/http"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	svc TaskService
}

func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// TaskQuery holds the list filters accepted on GET /tasks.
type TaskQuery struct {
	ProjectID   string `form:"project_id" binding:"omitempty,uuid"`
	Status      string `form:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority    string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Assignee    string `form:"assignee"`
	HasDeadline bool   `form:"has_deadline"`
	Overdue     bool   `form:"overdue"`
	DueSoon     bool   `form:"due_soon"`
}

func (q TaskQuery) filter() model.TaskFilter {
	var f model.TaskFilter
	if q.ProjectID != "" {
		id := uuid.MustParse(q.ProjectID)
		f.ProjectID = &id
	}
	if q.Status != "" {
		s := model.TaskStatus(q.Status)
		f.Status = &s
	}
	if q.Priority != "" {
		p := model.TaskPriority(q.Priority)
		f.Priority = &p
	}
	if q.Assignee != "" {
		a := q.Assignee
		f.Assignee = &a
	}
	f.HasDeadline = q.HasDeadline
	f.Overdue = q.Overdue
	f.DueSoon = q.DueSoon
	return f
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	ProjectID   *string    `json:"project_id" binding:"omitempty,uuid"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Assignee    *string    `json:"assignee"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateTaskRequest changes only the fields present. An empty project_id,
// assignee or description clears that field; clear_deadline removes the
// deadline.
type UpdateTaskRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	ProjectID     *string    `json:"project_id"`
	Status        *string    `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Assignee      *string    `json:"assignee"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clear_deadline"`
}

func (r UpdateTaskRequest) patch() (model.TaskPatch, error) {
	p := model.TaskPatch{
		Title:         r.Title,
		Deadline:      r.Deadline,
		ClearDeadline: r.ClearDeadline,
	}
	if r.Description != nil {
		if strings.TrimSpace(*r.Description) == "" {
			p.ClearDescription = true
		} else {
			p.Description = r.Description
		}
	}
	if r.Assignee != nil {
		if strings.TrimSpace(*r.Assignee) == "" {
			p.ClearAssignee = true
		} else {
			p.Assignee = r.Assignee
		}
	}
	if r.ProjectID != nil {
		if *r.ProjectID == "" {
			p.ClearProject = true
		} else {
			id, err := uuid.Parse(*r.ProjectID)
			if err != nil {
				return p, err
			}
			p.ProjectID = &id
		}
	}
	if r.Status != nil {
		s := model.TaskStatus(*r.Status)
		p.Status = &s
	}
	if r.Priority != nil {
		pr := model.TaskPriority(*r.Priority)
		p.Priority = &pr
	}
	return p, nil
}

// List godoc
// @Summary  List tasks
// @Tags     Tasks
// @Produce  json
// @Param    project_id   query string false "Project ID"
// @Param    status       query string false "Status"
// @Param    priority     query string false "Priority"
// @Param    assignee     query string false "Assignee"
// @Param    has_deadline query bool   false "Only tasks with a deadline"
// @Param    overdue      query bool   false "Only overdue open tasks"
// @Param    due_soon     query bool   false "Only open tasks due within 7 days"
// @Success  200 {array} model.Task
// @Router   /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var q TaskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters"})
		return
	}

	tasks, err := h.svc.ListTasks(c.Request.Context(), q.filter())
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetByID godoc
// @Summary  Get a task with subtasks, comments and attachments
// @Tags     Tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} model.Task
// @Router   /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.svc.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create godoc
// @Summary  Create a task (always starts in todo)
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    task body CreateTaskRequest true "Task"
// @Success  201 {object} map[string]interface{}
// @Router   /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	in := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		Priority:    model.TaskPriority(req.Priority),
		Assignee:    req.Assignee,
		Deadline:    req.Deadline,
	}
	if req.ProjectID != nil {
		id := uuid.MustParse(*req.ProjectID)
		in.ProjectID = &id
	}

	task, err := h.svc.CreateTask(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": task.ID, "task": task})
}

// Update godoc
// @Summary  Update a task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id   path string            true "Task ID"
// @Param    task body UpdateTaskRequest true "Fields to change"
// @Success  200 {object} map[string]interface{}
// @Router   /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	patch, err := req.patch()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	task, err := h.svc.UpdateTask(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// Delete godoc
// @Summary  Delete a task
// @Tags     Tasks
// @Param    id path string true "Task ID"
// @Success  200
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Stats godoc
// @Summary  Task counts by status and priority plus deadline figures
// @Tags     Tasks
// @Produce  json
// @Success  200 {object} model.TaskStats
// @Router   /tasks/stats [get]
func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.svc.GetTaskStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Alerts godoc
// @Summary  Open tasks due within a week, overdue first
// @Tags     Tasks
// @Produce  json
// @Success  200 {array} model.DeadlineAlert
// @Router   /tasks/alerts [get]
func (h *TaskHandler) Alerts(c *gin.Context) {
	alerts, err := h.svc.GetDeadlineAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusOK, alerts)
}
