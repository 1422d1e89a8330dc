package models

import "github.com/google/uuid"

// Section is a user-named grouping of rooms within a project, such as a
// floor or a wing. A section may only be deleted once no rooms reference it.
type Section struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:120" validate:"required,min=1,max=120"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Rooms   []Room  `json:"rooms,omitempty" gorm:"foreignKey:SectionID"`
}

// TableName returns the table name for Section
func (Section) TableName() string {
	return "sections"
}
