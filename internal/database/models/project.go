package models

// ProjectStatus represents the lifecycle status of a design project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project represents a design project for a single client engagement
type Project struct {
	BaseModel
	Name          string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ClientName    string        `json:"client_name" gorm:"size:200" validate:"max=200"`
	Address       string        `json:"address" gorm:"size:300" validate:"max=300"`
	CoverImageURL string        `json:"cover_image_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	Status        ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'"`
	Notes         string        `json:"notes" gorm:"type:text"`

	// Relationships
	Sections           []Section           `json:"sections,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Rooms              []Room              `json:"rooms,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ProjectContractors []ProjectContractor `json:"project_contractors,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
