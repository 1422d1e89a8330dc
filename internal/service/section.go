package service

import (
	"errors"
	"fmt"
	"strings"

	"design-studio-backend/internal/database/models"
	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionService handles creation and renaming of sections. Deletion lives
// on the organizer service, which owns the emptiness precondition.
type SectionService struct {
	repo        repository.SectionRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// Ensure SectionService implements SectionServiceInterface
var _ SectionServiceInterface = (*SectionService)(nil)

// NewSectionService creates a new section service
func NewSectionService(
	repo repository.SectionRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	validator *validator.Validate,
) *SectionService {
	return &SectionService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateSectionRequest represents the request to create a section
type CreateSectionRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=120"`
}

// RenameSectionRequest represents the request to rename a section
type RenameSectionRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// Create creates a new section in a project
func (s *SectionService) Create(req *CreateSectionRequest) (*SectionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	name, err := normalizeSectionName(req.Name)
	if err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	section := &models.Section{
		ProjectID: req.ProjectID,
		Name:      name,
	}
	if err := s.repo.Create(section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	resp := toSectionResponse(section)
	return &resp, nil
}

// Rename renames a section in place
func (s *SectionService) Rename(id uuid.UUID, req *RenameSectionRequest) (*SectionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	name, err := normalizeSectionName(req.Name)
	if err != nil {
		return nil, err
	}

	section, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	section.Name = name
	if err := s.repo.Update(section); err != nil {
		return nil, fmt.Errorf("failed to rename section: %w", err)
	}

	resp := toSectionResponse(section)
	return &resp, nil
}

// GetByProject retrieves all sections of a project in creation order
func (s *SectionService) GetByProject(projectID uuid.UUID) ([]SectionResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	sections, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}

	responses := make([]SectionResponse, len(sections))
	for i := range sections {
		responses[i] = toSectionResponse(&sections[i])
	}
	return responses, nil
}

// normalizeSectionName trims the name and rejects empty or whitespace-only values
func normalizeSectionName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.NewValidationError("name", "must not be empty or whitespace")
	}
	return trimmed, nil
}
