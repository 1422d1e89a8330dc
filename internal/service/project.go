package service

import (
	"errors"
	"fmt"

	"design-studio-backend/internal/database/models"
	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo           repository.ProjectRepositoryInterface
	contractorRepo repository.ContractorRepositoryInterface
	validator      *validator.Validate
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	contractorRepo repository.ContractorRepositoryInterface,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		repo:           repo,
		contractorRepo: contractorRepo,
		validator:      validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name          string               `json:"name" validate:"required,min=1,max=200"`
	ClientName    string               `json:"client_name,omitempty" validate:"max=200"`
	Address       string               `json:"address,omitempty" validate:"max=300"`
	CoverImageURL string               `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	Status        models.ProjectStatus `json:"status,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// UpdateProjectRequest represents a partial update of a project. The cover
// image URL is whatever the external blob store returned after upload.
type UpdateProjectRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ClientName    *string               `json:"client_name,omitempty" validate:"omitempty,max=200"`
	Address       *string               `json:"address,omitempty" validate:"omitempty,max=300"`
	CoverImageURL *string               `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	Status        *models.ProjectStatus `json:"status,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	ClientName    string               `json:"client_name"`
	Address       string               `json:"address"`
	CoverImageURL string               `json:"cover_image_url"`
	Status        models.ProjectStatus `json:"status"`
	StatusLabel   string               `json:"status_label"`
	Notes         string               `json:"notes"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ContractorAssignmentResponse lists the contractors attached to a project
type ContractorAssignmentResponse struct {
	ProjectID   uuid.UUID            `json:"project_id"`
	Contractors []ContractorResponse `json:"contractors"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		Name:          req.Name,
		ClientName:    req.ClientName,
		Address:       req.Address,
		CoverImageURL: req.CoverImageURL,
		Status:        status,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// GetAll retrieves projects with pagination
func (s *ProjectService) GetAll(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Address != nil {
		project.Address = *req.Address
	}
	if req.CoverImageURL != nil {
		project.CoverImageURL = *req.CoverImageURL
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Notes != nil {
		project.Notes = *req.Notes
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project, cascading to sections, rooms and assignments
func (s *ProjectService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetContractors lists the contractors attached to a project
func (s *ProjectService) GetContractors(projectID uuid.UUID) (*ContractorAssignmentResponse, error) {
	if _, err := s.getProject(projectID); err != nil {
		return nil, err
	}

	contractors, err := s.contractorRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project contractors: %w", err)
	}

	responses := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		responses[i] = toContractorResponse(&contractors[i])
	}

	return &ContractorAssignmentResponse{
		ProjectID:   projectID,
		Contractors: responses,
	}, nil
}

// AssignContractor attaches a contractor to a project
func (s *ProjectService) AssignContractor(projectID, contractorID uuid.UUID) error {
	if _, err := s.getProject(projectID); err != nil {
		return err
	}
	if _, err := s.contractorRepo.GetByID(contractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContractorNotFound
		}
		return fmt.Errorf("failed to get contractor: %w", err)
	}

	assigned, err := s.repo.CheckContractorInProject(projectID, contractorID)
	if err != nil {
		return fmt.Errorf("failed to check contractor assignment: %w", err)
	}
	if assigned {
		return apperrors.ErrContractorAlreadyAssigned
	}

	if err := s.repo.AddContractor(projectID, contractorID); err != nil {
		return fmt.Errorf("failed to assign contractor: %w", err)
	}
	return nil
}

// UnassignContractor detaches a contractor from a project
func (s *ProjectService) UnassignContractor(projectID, contractorID uuid.UUID) error {
	if _, err := s.getProject(projectID); err != nil {
		return err
	}

	assigned, err := s.repo.CheckContractorInProject(projectID, contractorID)
	if err != nil {
		return fmt.Errorf("failed to check contractor assignment: %w", err)
	}
	if !assigned {
		return apperrors.ErrContractorNotAssigned
	}

	if err := s.repo.RemoveContractor(projectID, contractorID); err != nil {
		return fmt.Errorf("failed to unassign contractor: %w", err)
	}
	return nil
}

func (s *ProjectService) getProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		ClientName:    project.ClientName,
		Address:       project.Address,
		CoverImageURL: project.CoverImageURL,
		Status:        project.Status,
		StatusLabel:   humanize(string(project.Status)),
		Notes:         project.Notes,
		CreatedAt:     project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
