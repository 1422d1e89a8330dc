package handlers

import (
	"errors"
	"net/http"

	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SectionHandler handles HTTP requests for section operations. Deletion is
// routed through the organizer service so the emptiness precondition holds.
type SectionHandler struct {
	sectionService   service.SectionServiceInterface
	organizerService service.OrganizerServiceInterface
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService service.SectionServiceInterface, organizerService service.OrganizerServiceInterface) *SectionHandler {
	return &SectionHandler{
		sectionService:   sectionService,
		organizerService: organizerService,
	}
}

// CreateSection handles POST /sections
// @Summary Create a new section
// @Description Create a named room grouping within a project
// @Tags sections
// @Accept json
// @Produce json
// @Param section body service.CreateSectionRequest true "Section data"
// @Success 201 {object} service.SectionResponse "Successfully created section"
// @Failure 400 {object} map[string]interface{} "Invalid request body or empty name"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /sections [post]
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req service.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.sectionService.Create(&req)
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

	c.JSON(http.StatusCreated, section)
}

// RenameSection handles PUT /sections/:id
// @Summary Rename section
// @Description Rename a section in place
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param section body service.RenameSectionRequest true "New name"
// @Success 200 {object} service.SectionResponse "Successfully renamed section"
// @Failure 400 {object} map[string]interface{} "Invalid request or empty name"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /sections/{id} [put]
func (h *SectionHandler) RenameSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section ID"})
		return
	}

	var req service.RenameSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.sectionService.Rename(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSectionNotFound) {
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

	c.JSON(http.StatusOK, section)
}

// DeleteSection handles DELETE /sections/:id
// @Summary Delete section
// @Description Delete a section; fails with 409 and the blocking-room count while any room is still assigned
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted section"
// @Failure 400 {object} map[string]interface{} "Invalid section ID"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Failure 409 {object} map[string]interface{} "Section still owns rooms"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /sections/{id} [delete]
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section ID"})
		return
	}

	if err := h.organizerService.DeleteSection(id); err != nil {
		if errors.Is(err, apperrors.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if notEmpty, ok := apperrors.AsNotEmpty(err); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error":          notEmpty.Error(),
				"blocking_rooms": notEmpty.Count,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "section deleted"})
}

// GetSectionsByProject handles GET /projects/:id/sections
// @Summary List project sections
// @Description Get all sections of a project in creation order
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.SectionResponse "Successfully retrieved sections"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/sections [get]
func (h *SectionHandler) GetSectionsByProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	sections, err := h.sectionService.GetByProject(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sections)
}

// GetProjectLayout handles GET /projects/:id/layout
// @Summary Get project room layout
// @Description Get the project's rooms grouped per section in display order, plus the unassigned bucket
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectLayoutResponse "Successfully retrieved layout"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/layout [get]
func (h *SectionHandler) GetProjectLayout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	layout, err := h.organizerService.GetProjectLayout(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, layout)
}
