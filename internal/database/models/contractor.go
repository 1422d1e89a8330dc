package models

import "github.com/google/uuid"

// Contractor represents an external contractor the studio works with
type Contractor struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Trade string `json:"trade" gorm:"size:120" validate:"max=120"`
	Email string `json:"email" gorm:"size:200" validate:"omitempty,email,max=200"`
	Phone string `json:"phone" gorm:"size:40" validate:"max=40"`

	// Relationships
	ProjectContractors []ProjectContractor `json:"project_contractors,omitempty" gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contractor
func (Contractor) TableName() string {
	return "contractors"
}

// ProjectContractor links a contractor to a project
type ProjectContractor struct {
	BaseModel
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_project_contractor" validate:"required"`
	ContractorID uuid.UUID `json:"contractor_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_project_contractor" validate:"required"`

	Project    Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Contractor Contractor `json:"contractor,omitempty" gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectContractor
func (ProjectContractor) TableName() string {
	return "project_contractors"
}
