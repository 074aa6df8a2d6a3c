package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc TaskService
}

func NewProjectHandler(svc TaskService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Color       string  `json:"color" binding:"omitempty,hexcolor"`
	CreatedBy   string  `json:"created_by"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	Archived    *bool   `json:"archived"`
}

// List godoc
// @Summary  List projects
// @Tags     Projects
// @Produce  json
// @Param    include_archived query bool false "Include archived projects"
// @Success  200 {array} model.Project
// @Router   /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"

	projects, err := h.svc.ListProjects(c.Request.Context(), includeArchived)
	if err != nil {
		respondError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetByID godoc
// @Summary  Get a project
// @Tags     Projects
// @Produce  json
// @Param    id path string true "Project ID"
// @Success  200 {object} model.Project
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.svc.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary  Create a project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Param    project body CreateProjectRequest true "Project"
// @Success  201 {object} model.Project
// @Router   /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	createdBy := actor(c, req.CreatedBy)
	if createdBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "created_by is required"})
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		CreatedBy:   createdBy,
	})
	if err != nil {
		respondError(c, err, "Project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary  Update a project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Param    id      path string               true "Project ID"
// @Param    project body UpdateProjectRequest true "Fields to change"
// @Success  200 {object} model.Project
// @Router   /projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.svc.UpdateProject(c.Request.Context(), id, service.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Archived:    req.Archived,
	})
	if err != nil {
		respondError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary  Delete a project; its tasks become unassigned
// @Tags     Projects
// @Param    id path string true "Project ID"
// @Success  200
// @Router   /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
