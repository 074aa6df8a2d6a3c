package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttachmentHandler struct {
	svc TaskService
}

func NewAttachmentHandler(svc TaskService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

type AttachFileRequest struct {
	FileID     string `json:"file_id" binding:"required,uuid"`
	AttachedBy string `json:"attached_by"`
}

// Attach godoc
// @Summary  Attach a stored file to a task
// @Tags     Attachments
// @Accept   json
// @Produce  json
// @Param    id         path string            true "Task ID"
// @Param    attachment body AttachFileRequest true "File reference"
// @Success  201 {object} model.Attachment
// @Router   /tasks/{id}/attachments [post]
func (h *AttachmentHandler) Attach(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req AttachFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	attachedBy := actor(c, req.AttachedBy)
	if attachedBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attached_by is required"})
		return
	}

	attachment, err := h.svc.AttachFile(c.Request.Context(), service.AttachFileInput{
		TaskID:     taskID,
		FileID:     uuid.MustParse(req.FileID),
		AttachedBy: attachedBy,
	})
	if err != nil {
		respondError(c, err, "Task or file")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// Detach godoc
// @Summary  Remove a file from a task
// @Tags     Attachments
// @Param    id      path string true "Task ID"
// @Param    file_id path string true "File ID"
// @Success  200
// @Router   /tasks/{id}/attachments/{file_id} [delete]
func (h *AttachmentHandler) Detach(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}
	fileID, ok := parseID(c, "file_id", "file")
	if !ok {
		return
	}

	if err := h.svc.DetachFile(c.Request.Context(), taskID, fileID); err != nil {
		respondError(c, err, "Attachment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File detached successfully"})
}
