package service

import (
	"strings"

	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
)

// RoomResponse represents a single room in API responses
type RoomResponse struct {
	ID          uuid.UUID         `json:"id"`
	ProjectID   uuid.UUID         `json:"project_id"`
	SectionID   *uuid.UUID        `json:"section_id"`
	RoomType    models.RoomType   `json:"room_type"`
	CustomName  string            `json:"custom_name,omitempty"`
	DisplayName string            `json:"display_name"`
	SortOrder   int               `json:"sort_order"`
	Status      models.RoomStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// SectionResponse represents a section in API responses
type SectionResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// SectionGroup is one section together with its rooms in display order
type SectionGroup struct {
	Section SectionResponse `json:"section"`
	Rooms   []RoomResponse  `json:"rooms"`
}

// ProjectLayoutResponse is the grouped-and-sorted view of a project's rooms:
// one group per section plus the unassigned bucket. Callers must not re-sort
// the room slices; their order is the display order.
type ProjectLayoutResponse struct {
	ProjectID  uuid.UUID      `json:"project_id"`
	Sections   []SectionGroup `json:"sections"`
	Unassigned []RoomResponse `json:"unassigned"`
}

// HumanizeRoomType converts a room type constant into a display label,
// e.g. MASTER_BEDROOM becomes "Master Bedroom".
func HumanizeRoomType(t models.RoomType) string {
	return humanize(string(t))
}

// HumanizeStatus converts a workflow status into a display label,
// e.g. in_progress becomes "In Progress".
func HumanizeStatus(s models.RoomStatus) string {
	return humanize(string(s))
}

// RoomDisplayName returns the custom name when set, else the humanized type
func RoomDisplayName(room *models.Room) string {
	if room.CustomName != "" {
		return room.CustomName
	}
	return HumanizeRoomType(room.RoomType)
}

func humanize(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

func toRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		ProjectID:   room.ProjectID,
		SectionID:   room.SectionID,
		RoomType:    room.RoomType,
		CustomName:  room.CustomName,
		DisplayName: RoomDisplayName(room),
		SortOrder:   room.SortOrder,
		Status:      room.Status,
		StatusLabel: HumanizeStatus(room.Status),
		CreatedAt:   room.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   room.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toSectionResponse(section *models.Section) SectionResponse {
	return SectionResponse{
		ID:        section.ID,
		ProjectID: section.ProjectID,
		Name:      section.Name,
		CreatedAt: section.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: section.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
