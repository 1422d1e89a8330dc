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

// ContractorHandler handles HTTP requests for contractor operations
type ContractorHandler struct {
	contractorService service.ContractorServiceInterface
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractorService service.ContractorServiceInterface) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
	}
}

// CreateContractor handles POST /contractors
// @Summary Create a new contractor
// @Description Create a contractor in the studio's address book
// @Tags contractors
// @Accept json
// @Produce json
// @Param contractor body service.CreateContractorRequest true "Contractor data"
// @Success 201 {object} service.ContractorResponse "Successfully created contractor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req service.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contractor)
}

// ListContractors handles GET /contractors
// @Summary List contractors
// @Description Get all contractors with pagination
// @Tags contractors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ContractorListResponse "Successfully retrieved contractors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.contractorService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContractor handles GET /contractors/:id
// @Summary Get contractor by ID
// @Description Get a specific contractor by its UUID
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Success 200 {object} service.ContractorResponse "Successfully retrieved contractor"
// @Failure 400 {object} map[string]interface{} "Invalid contractor ID"
// @Failure 404 {object} map[string]interface{} "Contractor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contractors/{id} [get]
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor ID"})
		return
	}

	contractor, err := h.contractorService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// UpdateContractor handles PUT /contractors/:id
// @Summary Update contractor
// @Description Apply a partial update to a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Param contractor body service.UpdateContractorRequest true "Updated contractor data"
// @Success 200 {object} service.ContractorResponse "Successfully updated contractor"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Contractor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor ID"})
		return
	}

	var req service.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractorNotFound) {
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

	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor handles DELETE /contractors/:id
// @Summary Delete contractor
// @Description Delete a contractor and its project assignments
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted contractor"
// @Failure 400 {object} map[string]interface{} "Invalid contractor ID"
// @Failure 404 {object} map[string]interface{} "Contractor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor ID"})
		return
	}

	if err := h.contractorService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrContractorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contractor deleted"})
}
