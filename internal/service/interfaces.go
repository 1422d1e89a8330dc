package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetAll(page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
	GetContractors(projectID uuid.UUID) (*ContractorAssignmentResponse, error)
	AssignContractor(projectID, contractorID uuid.UUID) error
	UnassignContractor(projectID, contractorID uuid.UUID) error
}

// SectionServiceInterface defines the interface for section service
type SectionServiceInterface interface {
	Create(req *CreateSectionRequest) (*SectionResponse, error)
	Rename(id uuid.UUID, req *RenameSectionRequest) (*SectionResponse, error)
	GetByProject(projectID uuid.UUID) ([]SectionResponse, error)
}

// OrganizerServiceInterface defines the interface for the room and section
// organization engine
type OrganizerServiceInterface interface {
	GetProjectLayout(projectID uuid.UUID) (*ProjectLayoutResponse, error)
	CreateRoom(req *CreateRoomRequest) (*RoomResponse, error)
	GetRoom(id uuid.UUID) (*RoomResponse, error)
	UpdateRoom(id uuid.UUID, req *UpdateRoomRequest) (*RoomResponse, error)
	DeleteRoom(id uuid.UUID) error
	MoveRoomToSection(roomID uuid.UUID, sectionID *uuid.UUID) (*RoomResponse, error)
	ReorderRoom(roomID uuid.UUID, direction ReorderDirection) error
	DeleteSection(sectionID uuid.UUID) error
}

// ContractorServiceInterface defines the interface for contractor service
type ContractorServiceInterface interface {
	Create(req *CreateContractorRequest) (*ContractorResponse, error)
	GetByID(id uuid.UUID) (*ContractorResponse, error)
	GetAll(page, pageSize int) (*ContractorListResponse, error)
	Update(id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error)
	Delete(id uuid.UUID) error
}

// ConceptItemServiceInterface defines the interface for concept item service
type ConceptItemServiceInterface interface {
	Create(roomID uuid.UUID, req *CreateConceptItemRequest) (*ConceptItemResponse, error)
	GetByRoom(roomID uuid.UUID) ([]ConceptItemResponse, error)
	Update(id uuid.UUID, req *UpdateConceptItemRequest) (*ConceptItemResponse, error)
	Delete(id uuid.UUID) error
}
