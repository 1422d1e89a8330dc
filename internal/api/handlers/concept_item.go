package handlers

import (
	"errors"
	"net/http"

	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConceptItemHandler handles HTTP requests for a room's design-concept checklist
type ConceptItemHandler struct {
	conceptItemService service.ConceptItemServiceInterface
}

// NewConceptItemHandler creates a new concept item handler
func NewConceptItemHandler(conceptItemService service.ConceptItemServiceInterface) *ConceptItemHandler {
	return &ConceptItemHandler{
		conceptItemService: conceptItemService,
	}
}

// CreateConceptItem handles POST /rooms/:id/concept-items
// @Summary Add a checklist item to a room
// @Description Append a design-concept checklist item to the end of the room's list
// @Tags concept-items
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Param item body service.CreateConceptItemRequest true "Checklist item data"
// @Success 201 {object} service.ConceptItemResponse "Successfully created item"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id}/concept-items [post]
func (h *ConceptItemHandler) CreateConceptItem(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	var req service.CreateConceptItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.conceptItemService.Create(roomID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
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

	c.JSON(http.StatusCreated, item)
}

// GetConceptItems handles GET /rooms/:id/concept-items
// @Summary List a room's checklist items
// @Description Get the room's design-concept checklist in list order
// @Tags concept-items
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Success 200 {array} service.ConceptItemResponse "Successfully retrieved items"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id}/concept-items [get]
func (h *ConceptItemHandler) GetConceptItems(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	items, err := h.conceptItemService.GetByRoom(roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateConceptItem handles PUT /concept-items/:id
// @Summary Update checklist item
// @Description Apply a partial update to a checklist item, including toggling done
// @Tags concept-items
// @Accept json
// @Produce json
// @Param id path string true "Concept item ID (UUID)"
// @Param item body service.UpdateConceptItemRequest true "Updated item data"
// @Success 200 {object} service.ConceptItemResponse "Successfully updated item"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Concept item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /concept-items/{id} [put]
func (h *ConceptItemHandler) UpdateConceptItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid concept item ID"})
		return
	}

	var req service.UpdateConceptItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.conceptItemService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConceptItemNotFound) {
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

	c.JSON(http.StatusOK, item)
}

// DeleteConceptItem handles DELETE /concept-items/:id
// @Summary Delete checklist item
// @Description Remove a checklist item from its room's list
// @Tags concept-items
// @Accept json
// @Produce json
// @Param id path string true "Concept item ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted item"
// @Failure 400 {object} map[string]interface{} "Invalid concept item ID"
// @Failure 404 {object} map[string]interface{} "Concept item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /concept-items/{id} [delete]
func (h *ConceptItemHandler) DeleteConceptItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid concept item ID"})
		return
	}

	if err := h.conceptItemService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrConceptItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "concept item deleted"})
}
