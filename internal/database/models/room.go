package models

import "github.com/google/uuid"

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeLivingRoom    RoomType = "LIVING_ROOM"
	RoomTypeKitchen       RoomType = "KITCHEN"
	RoomTypeDiningRoom    RoomType = "DINING_ROOM"
	RoomTypeMasterBedroom RoomType = "MASTER_BEDROOM"
	RoomTypeBedroom       RoomType = "BEDROOM"
	RoomTypeBathroom      RoomType = "BATHROOM"
	RoomTypeHomeOffice    RoomType = "HOME_OFFICE"
	RoomTypeHallway       RoomType = "HALLWAY"
	RoomTypeBalcony       RoomType = "BALCONY"
	RoomTypeOther         RoomType = "OTHER"
)

// ValidRoomTypes lists every accepted room type, used for request validation
var ValidRoomTypes = []RoomType{
	RoomTypeLivingRoom,
	RoomTypeKitchen,
	RoomTypeDiningRoom,
	RoomTypeMasterBedroom,
	RoomTypeBedroom,
	RoomTypeBathroom,
	RoomTypeHomeOffice,
	RoomTypeHallway,
	RoomTypeBalcony,
	RoomTypeOther,
}

// IsValid reports whether the room type is one of the known categories
func (t RoomType) IsValid() bool {
	for _, v := range ValidRoomTypes {
		if t == v {
			return true
		}
	}
	return false
}

// RoomStatus is the workflow status of a room. It is display-only: the
// organization engine never branches on it.
type RoomStatus string

const (
	RoomStatusConcept    RoomStatus = "concept"
	RoomStatusInProgress RoomStatus = "in_progress"
	RoomStatusReview     RoomStatus = "review"
	RoomStatusDone       RoomStatus = "done"
)

// Room is a unit of design work belonging to exactly one project and at most
// one section. SortOrder is only meaningful relative to siblings in the same
// bucket (section, or the unassigned bucket when SectionID is nil); values
// are not required to be contiguous.
type Room struct {
	BaseModel
	ProjectID  uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectionID  *uuid.UUID `json:"section_id" gorm:"type:uuid;index"`
	RoomType   RoomType   `json:"room_type" gorm:"type:varchar(50);not null" validate:"required"`
	CustomName string     `json:"custom_name" gorm:"size:120" validate:"max=120"`
	SortOrder  int        `json:"sort_order" gorm:"not null;default:0"`
	Status     RoomStatus `json:"status" gorm:"type:varchar(50);default:'concept'"`

	// Relationships
	Project      Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Section      *Section      `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	ConceptItems []ConceptItem `json:"concept_items,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
