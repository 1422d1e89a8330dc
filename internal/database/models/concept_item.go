package models

import "github.com/google/uuid"

// ConceptItem is one entry of a room's design-concept checklist. Items carry
// free-form notes, an optional reference link and an optional attachment URL
// (attachments themselves live in the external blob store).
type ConceptItem struct {
	BaseModel
	RoomID        uuid.UUID `json:"room_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title         string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Note          string    `json:"note" gorm:"type:text"`
	LinkURL       string    `json:"link_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	AttachmentURL string    `json:"attachment_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	Done          bool      `json:"done" gorm:"not null;default:false"`
	Position      int       `json:"position" gorm:"not null;default:0"`

	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ConceptItem
func (ConceptItem) TableName() string {
	return "concept_items"
}
