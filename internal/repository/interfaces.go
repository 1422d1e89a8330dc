package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	GetWithContractors(id uuid.UUID) (*models.Project, error)
	AddContractor(projectID, contractorID uuid.UUID) error
	RemoveContractor(projectID, contractorID uuid.UUID) error
	CheckContractorInProject(projectID, contractorID uuid.UUID) (bool, error)
}

// SectionRepositoryInterface defines the interface for section repository operations
type SectionRepositoryInterface interface {
	Create(section *models.Section) error
	GetByID(id uuid.UUID) (*models.Section, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Section, error)
	Update(section *models.Section) error
	Delete(id uuid.UUID) error
}

// RoomRepositoryInterface defines the interface for room repository operations.
// GetBucket, MaxSortOrder and CountBySection are the ordering primitives the
// organization engine is built on.
type RoomRepositoryInterface interface {
	Create(room *models.Room) error
	GetByID(id uuid.UUID) (*models.Room, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Room, error)
	GetBucket(projectID uuid.UUID, sectionID *uuid.UUID) ([]models.Room, error)
	MaxSortOrder(projectID uuid.UUID, sectionID *uuid.UUID) (*int, error)
	CountBySection(sectionID uuid.UUID) (int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// ContractorRepositoryInterface defines the interface for contractor repository operations
type ContractorRepositoryInterface interface {
	Create(contractor *models.Contractor) error
	GetByID(id uuid.UUID) (*models.Contractor, error)
	GetAll(limit, offset int) ([]models.Contractor, int64, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Contractor, error)
	Update(contractor *models.Contractor) error
	Delete(id uuid.UUID) error
}

// ConceptItemRepositoryInterface defines the interface for concept item repository operations
type ConceptItemRepositoryInterface interface {
	Create(item *models.ConceptItem) error
	GetByID(id uuid.UUID) (*models.ConceptItem, error)
	GetByRoomID(roomID uuid.UUID) ([]models.ConceptItem, error)
	MaxPosition(roomID uuid.UUID) (*int, error)
	Update(item *models.ConceptItem) error
	Delete(id uuid.UUID) error
}
