package handlers

import (
	"errors"
	"net/http"

	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomHandler handles HTTP requests for room operations, including the
// organization engine's move and reorder commands
type RoomHandler struct {
	organizerService service.OrganizerServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(organizerService service.OrganizerServiceInterface) *RoomHandler {
	return &RoomHandler{
		organizerService: organizerService,
	}
}

// CreateRoom handles POST /rooms
// @Summary Create a new room
// @Description Create a room appended to the end of its destination bucket
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body service.CreateRoomRequest true "Room data"
// @Success 201 {object} service.RoomResponse "Successfully created room"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project or section not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.organizerService.CreateRoom(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidReference(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoom handles GET /rooms/:id
// @Summary Get room by ID
// @Description Get a specific room by its UUID
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Success 200 {object} service.RoomResponse "Successfully retrieved room"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	room, err := h.organizerService.GetRoom(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /rooms/:id
// @Summary Update room fields
// @Description Apply a partial field edit to a room; section and order are managed by move/reorder
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Param room body service.UpdateRoomRequest true "Updated room data"
// @Success 200 {object} service.RoomResponse "Successfully updated room"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	var req service.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.organizerService.UpdateRoom(id, &req)
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

	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:id
// @Summary Delete room
// @Description Delete a room and all its owned checklist data; siblings keep their order values
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted room"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	if err := h.organizerService.DeleteRoom(id); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// MoveRoom handles PUT /rooms/:id/section
// @Summary Move room to a section
// @Description Move a room to a section (or the unassigned bucket when section_id is null); the room lands at the end of the destination
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Param move body service.MoveRoomRequest true "Target section"
// @Success 200 {object} service.RoomResponse "Successfully moved room"
// @Failure 400 {object} map[string]interface{} "Invalid request or cross-project section"
// @Failure 404 {object} map[string]interface{} "Room or section not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id}/section [put]
func (h *RoomHandler) MoveRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	var req service.MoveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.organizerService.MoveRoomToSection(id, req.SectionID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidReference(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ReorderRoom handles POST /rooms/:id/reorder
// @Summary Reorder room within its bucket
// @Description Swap a room's position with its neighbor; past-the-boundary reorders are no-ops
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID (UUID)"
// @Param reorder body service.ReorderRoomRequest true "Direction (up or down)"
// @Success 200 {object} map[string]string "Reorder applied (or boundary no-op)"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error or partial swap"
// @Router /rooms/{id}/reorder [post]
func (h *RoomHandler) ReorderRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room ID"})
		return
	}

	var req service.ReorderRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.organizerService.ReorderRoom(id, req.Direction); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsPartialFailure(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
				"hint":  "re-fetch the layout before retrying",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room reordered"})
}
