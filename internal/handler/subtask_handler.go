package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type SubtaskHandler struct {
	svc TaskService
}

func NewSubtaskHandler(svc TaskService) *SubtaskHandler {
	return &SubtaskHandler{svc: svc}
}

type CreateSubtaskRequest struct {
	Title     string `json:"title" binding:"required"`
	SortOrder *int   `json:"sort_order" binding:"omitempty,min=0"`
}

type UpdateSubtaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type ToggleSubtaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// Create godoc
// @Summary  Add a subtask; it goes last unless sort_order is given
// @Tags     Subtasks
// @Accept   json
// @Produce  json
// @Param    id      path string               true "Task ID"
// @Param    subtask body CreateSubtaskRequest true "Subtask"
// @Success  201 {object} model.Subtask
// @Router   /tasks/{id}/subtasks [post]
func (h *SubtaskHandler) Create(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	subtask, err := h.svc.CreateSubtask(c.Request.Context(), service.CreateSubtaskInput{
		TaskID:    taskID,
		Title:     req.Title,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusCreated, subtask)
}

// Update godoc
// @Summary  Rename a subtask
// @Tags     Subtasks
// @Accept   json
// @Produce  json
// @Param    id      path string               true "Subtask ID"
// @Param    subtask body UpdateSubtaskRequest true "New title"
// @Success  200 {object} model.Subtask
// @Router   /subtasks/{id} [patch]
func (h *SubtaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "subtask")
	if !ok {
		return
	}

	var req UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	subtask, err := h.svc.UpdateSubtask(c.Request.Context(), id, req.Title)
	if err != nil {
		respondError(c, err, "Subtask")
		return
	}
	c.JSON(http.StatusOK, subtask)
}

// Toggle godoc
// @Summary  Mark a subtask complete or incomplete
// @Tags     Subtasks
// @Accept   json
// @Produce  json
// @Param    id      path string               true "Subtask ID"
// @Param    subtask body ToggleSubtaskRequest true "Completion flag"
// @Success  200 {object} model.Subtask
// @Router   /subtasks/{id}/toggle [patch]
func (h *SubtaskHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "id", "subtask")
	if !ok {
		return
	}

	var req ToggleSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	subtask, err := h.svc.ToggleSubtask(c.Request.Context(), id, *req.Completed)
	if err != nil {
		respondError(c, err, "Subtask")
		return
	}
	c.JSON(http.StatusOK, subtask)
}

// Delete godoc
// @Summary  Delete a subtask
// @Tags     Subtasks
// @Param    id path string true "Subtask ID"
// @Success  200
// @Router   /subtasks/{id} [delete]
func (h *SubtaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "subtask")
	if !ok {
		return
	}

	if err := h.svc.DeleteSubtask(c.Request.Context(), id); err != nil {
		respondError(c, err, "Subtask")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subtask deleted successfully"})
}
