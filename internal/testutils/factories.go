package testutils

import (
	"time"

	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Project",
		ClientName: "Test Client",
		Address:    "12 Test Street",
		Status:     models.ProjectStatusActive,
		Notes:      "A test project",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// SectionFactory provides methods to create test Section data
type SectionFactory struct{}

// NewSectionFactory creates a new SectionFactory
func NewSectionFactory() *SectionFactory {
	return &SectionFactory{}
}

// Create creates a test Section with default values
func (f *SectionFactory) Create() *models.Section {
	return &models.Section{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: uuid.New(),
		Name:      "Ground Floor",
	}
}

// WithProject sets the project ID for the section
func (f *SectionFactory) WithProject(projectID uuid.UUID) *models.Section {
	section := f.Create()
	section.ProjectID = projectID
	return section
}

// WithName sets a custom name for the section
func (f *SectionFactory) WithName(name string) *models.Section {
	section := f.Create()
	section.Name = name
	return section
}

// RoomFactory provides methods to create test Room data
type RoomFactory struct{}

// NewRoomFactory creates a new RoomFactory
func NewRoomFactory() *RoomFactory {
	return &RoomFactory{}
}

// Create creates a test Room with default values. The room is unassigned
// (no section) at sort order 0.
func (f *RoomFactory) Create() *models.Room {
	return &models.Room{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: uuid.New(),
		SectionID: nil,
		RoomType:  models.RoomTypeLivingRoom,
		SortOrder: 0,
		Status:    models.RoomStatusConcept,
	}
}

// WithProject sets the project ID for the room
func (f *RoomFactory) WithProject(projectID uuid.UUID) *models.Room {
	room := f.Create()
	room.ProjectID = projectID
	return room
}

// WithSection places the room in a section at the given sort order
func (f *RoomFactory) WithSection(projectID, sectionID uuid.UUID, sortOrder int) *models.Room {
	room := f.Create()
	room.ProjectID = projectID
	room.SectionID = &sectionID
	room.SortOrder = sortOrder
	return room
}

// WithType sets a custom room type
func (f *RoomFactory) WithType(roomType models.RoomType) *models.Room {
	room := f.Create()
	room.RoomType = roomType
	return room
}

// WithCustomName sets a custom display name for the room
func (f *RoomFactory) WithCustomName(name string) *models.Room {
	room := f.Create()
	room.CustomName = name
	return room
}

// ContractorFactory provides methods to create test Contractor data
type ContractorFactory struct{}

// NewContractorFactory creates a new ContractorFactory
func NewContractorFactory() *ContractorFactory {
	return &ContractorFactory{}
}

// Create creates a test Contractor with default values
func (f *ContractorFactory) Create() *models.Contractor {
	id := uuid.New()
	return &models.Contractor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Test Contractor",
		Trade: "Electrical",
		// unique per contractor to avoid collisions across tests
		Email: "contractor-" + id.String()[:8] + "@test.com",
		Phone: "+1-555-0123",
	}
}

// WithName sets a custom name for the contractor
func (f *ContractorFactory) WithName(name string) *models.Contractor {
	contractor := f.Create()
	contractor.Name = name
	return contractor
}

// WithTrade sets a custom trade for the contractor
func (f *ContractorFactory) WithTrade(trade string) *models.Contractor {
	contractor := f.Create()
	contractor.Trade = trade
	return contractor
}

// ConceptItemFactory provides methods to create test ConceptItem data
type ConceptItemFactory struct{}

// NewConceptItemFactory creates a new ConceptItemFactory
func NewConceptItemFactory() *ConceptItemFactory {
	return &ConceptItemFactory{}
}

// Create creates a test ConceptItem with default values
func (f *ConceptItemFactory) Create() *models.ConceptItem {
	return &models.ConceptItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RoomID:   uuid.New(),
		Title:    "Pick paint color",
		Note:     "Client prefers warm tones",
		Done:     false,
		Position: 0,
	}
}

// WithRoom sets the room ID for the concept item
func (f *ConceptItemFactory) WithRoom(roomID uuid.UUID) *models.ConceptItem {
	item := f.Create()
	item.RoomID = roomID
	return item
}

// WithPosition sets a custom list position for the concept item
func (f *ConceptItemFactory) WithPosition(position int) *models.ConceptItem {
	item := f.Create()
	item.Position = position
	return item
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project     *ProjectFactory
	Section     *SectionFactory
	Room        *RoomFactory
	Contractor  *ContractorFactory
	ConceptItem *ConceptItemFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:     NewProjectFactory(),
		Section:     NewSectionFactory(),
		Room:        NewRoomFactory(),
		Contractor:  NewContractorFactory(),
		ConceptItem: NewConceptItemFactory(),
	}
}

// CreateProjectWithLayout creates a project with one section and two rooms in
// it plus one unassigned room, mirroring a small real-world layout.
func (fs *FactorySet) CreateProjectWithLayout() (*models.Project, *models.Section, []*models.Room) {
	project := fs.Project.Create()
	section := fs.Section.WithProject(project.ID)

	first := fs.Room.WithSection(project.ID, section.ID, 0)
	second := fs.Room.WithSection(project.ID, section.ID, 1)
	second.RoomType = models.RoomTypeKitchen
	unassigned := fs.Room.WithProject(project.ID)
	unassigned.RoomType = models.RoomTypeBedroom

	return project, section, []*models.Room{first, second, unassigned}
}
