package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a new design project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description Get all projects with pagination
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.projectService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a specific project by its UUID
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update project
// @Description Apply a partial update to an existing project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Delete a project and everything it owns (sections, rooms, assignments)
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

// GetProjectContractors handles GET /projects/:id/contractors
// @Summary List project contractors
// @Description Get the contractors attached to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ContractorAssignmentResponse "Successfully retrieved contractors"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/contractors [get]
func (h *ProjectHandler) GetProjectContractors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	resp, err := h.projectService.GetContractors(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignContractor handles POST /projects/:id/contractors/:contractorId
// @Summary Assign contractor to project
// @Description Attach a contractor to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param contractorId path string true "Contractor ID (UUID)"
// @Success 201 {object} map[string]string "Successfully assigned contractor"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Project or contractor not found"
// @Failure 409 {object} map[string]interface{} "Contractor already assigned"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/contractors/{contractorId} [post]
func (h *ProjectHandler) AssignContractor(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	contractorID, err := uuid.Parse(c.Param("contractorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor ID"})
		return
	}

	if err := h.projectService.AssignContractor(projectID, contractorID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "contractor assigned"})
}

// UnassignContractor handles DELETE /projects/:id/contractors/:contractorId
// @Summary Unassign contractor from project
// @Description Detach a contractor from a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param contractorId path string true "Contractor ID (UUID)"
// @Success 200 {object} map[string]string "Successfully unassigned contractor"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Project not found or contractor not assigned"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/contractors/{contractorId} [delete]
func (h *ProjectHandler) UnassignContractor(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	contractorID, err := uuid.Parse(c.Param("contractorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor ID"})
		return
	}

	if err := h.projectService.UnassignContractor(projectID, contractorID); err != nil {
		if apperrors.IsNotFound(err) || errors.Is(err, apperrors.ErrContractorNotAssigned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contractor unassigned"})
}
