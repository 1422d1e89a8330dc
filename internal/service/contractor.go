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

// ContractorService handles business logic for contractors
type ContractorService struct {
	repo      repository.ContractorRepositoryInterface
	validator *validator.Validate
}

// Ensure ContractorService implements ContractorServiceInterface
var _ ContractorServiceInterface = (*ContractorService)(nil)

// NewContractorService creates a new contractor service
func NewContractorService(repo repository.ContractorRepositoryInterface, validator *validator.Validate) *ContractorService {
	return &ContractorService{
		repo:      repo,
		validator: validator,
	}
}

// CreateContractorRequest represents the request to create a contractor
type CreateContractorRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Trade string `json:"trade,omitempty" validate:"max=120"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone string `json:"phone,omitempty" validate:"max=40"`
}

// UpdateContractorRequest represents a partial update of a contractor
type UpdateContractorRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Trade *string `json:"trade,omitempty" validate:"omitempty,max=120"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=40"`
}

// ContractorResponse represents a single contractor in API responses
type ContractorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Trade string    `json:"trade"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ContractorListResponse represents a paginated list of contractors
type ContractorListResponse struct {
	Contractors []ContractorResponse `json:"contractors"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new contractor
func (s *ContractorService) Create(req *CreateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contractor := &models.Contractor{
		Name:  req.Name,
		Trade: req.Trade,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.Create(contractor); err != nil {
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}

	resp := toContractorResponse(contractor)
	return &resp, nil
}

// GetByID retrieves a contractor by ID
func (s *ContractorService) GetByID(id uuid.UUID) (*ContractorResponse, error) {
	contractor, err := s.getContractor(id)
	if err != nil {
		return nil, err
	}
	resp := toContractorResponse(contractor)
	return &resp, nil
}

// GetAll retrieves contractors with pagination
func (s *ContractorService) GetAll(page, pageSize int) (*ContractorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	contractors, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get contractors: %w", err)
	}

	responses := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		responses[i] = toContractorResponse(&contractors[i])
	}

	return &ContractorListResponse{
		Contractors: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update applies a partial update to a contractor
func (s *ContractorService) Update(id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contractor, err := s.getContractor(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contractor.Name = *req.Name
	}
	if req.Trade != nil {
		contractor.Trade = *req.Trade
	}
	if req.Email != nil {
		contractor.Email = *req.Email
	}
	if req.Phone != nil {
		contractor.Phone = *req.Phone
	}

	if err := s.repo.Update(contractor); err != nil {
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}

	resp := toContractorResponse(contractor)
	return &resp, nil
}

// Delete deletes a contractor and its project assignments
func (s *ContractorService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContractorNotFound
		}
		return fmt.Errorf("failed to delete contractor: %w", err)
	}
	return nil
}

func (s *ContractorService) getContractor(id uuid.UUID) (*models.Contractor, error) {
	contractor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}
	return contractor, nil
}

func toContractorResponse(contractor *models.Contractor) ContractorResponse {
	return ContractorResponse{
		ID:    contractor.ID,
		Name:  contractor.Name,
		Trade: contractor.Trade,
		Email: contractor.Email,
		Phone: contractor.Phone,
	}
}
