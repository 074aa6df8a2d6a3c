package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc TaskService
}

func NewCommentHandler(svc TaskService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
}

// Create godoc
// @Summary  Comment on a task
// @Tags     Comments
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Task ID"
// @Param    comment body AddCommentRequest true "Comment"
// @Success  201 {object} model.Comment
// @Router   /tasks/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	author := actor(c, req.Author)
	if author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author is required"})
		return
	}

	comment, err := h.svc.AddComment(c.Request.Context(), service.AddCommentInput{
		TaskID:  taskID,
		Content: req.Content,
		Author:  author,
	})
	if err != nil {
		respondError(c, err, "Task")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Delete godoc
// @Summary  Delete a comment
// @Tags     Comments
// @Param    id path string true "Comment ID"
// @Success  200
// @Router   /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "comment")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err, "Comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
