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

// ConceptItemService handles a room's design-concept checklist. Plain list
// membership; none of the organization engine's ordering invariants apply.
type ConceptItemService struct {
	repo      repository.ConceptItemRepositoryInterface
	roomRepo  repository.RoomRepositoryInterface
	validator *validator.Validate
}

// Ensure ConceptItemService implements ConceptItemServiceInterface
var _ ConceptItemServiceInterface = (*ConceptItemService)(nil)

// NewConceptItemService creates a new concept item service
func NewConceptItemService(
	repo repository.ConceptItemRepositoryInterface,
	roomRepo repository.RoomRepositoryInterface,
	validator *validator.Validate,
) *ConceptItemService {
	return &ConceptItemService{
		repo:      repo,
		roomRepo:  roomRepo,
		validator: validator,
	}
}

// CreateConceptItemRequest represents the request to add a checklist item
type CreateConceptItemRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Note          string `json:"note,omitempty"`
	LinkURL       string `json:"link_url,omitempty" validate:"omitempty,url,max=500"`
	AttachmentURL string `json:"attachment_url,omitempty" validate:"omitempty,url,max=500"`
}

// UpdateConceptItemRequest represents a partial update of a checklist item
type UpdateConceptItemRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Note          *string `json:"note,omitempty"`
	LinkURL       *string `json:"link_url,omitempty" validate:"omitempty,url,max=500"`
	AttachmentURL *string `json:"attachment_url,omitempty" validate:"omitempty,url,max=500"`
	Done          *bool   `json:"done,omitempty"`
}

// ConceptItemResponse represents a checklist item in API responses
type ConceptItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	Title         string    `json:"title"`
	Note          string    `json:"note"`
	LinkURL       string    `json:"link_url"`
	AttachmentURL string    `json:"attachment_url"`
	Done          bool      `json:"done"`
	Position      int       `json:"position"`
}

// Create appends a checklist item to a room's list
func (s *ConceptItemService) Create(roomID uuid.UUID, req *CreateConceptItemRequest) (*ConceptItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	position := 0
	if max, err := s.repo.MaxPosition(roomID); err != nil {
		return nil, fmt.Errorf("failed to compute position: %w", err)
	} else if max != nil {
		position = *max + 1
	}

	item := &models.ConceptItem{
		RoomID:        roomID,
		Title:         req.Title,
		Note:          req.Note,
		LinkURL:       req.LinkURL,
		AttachmentURL: req.AttachmentURL,
		Position:      position,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create concept item: %w", err)
	}

	resp := toConceptItemResponse(item)
	return &resp, nil
}

// GetByRoom retrieves a room's checklist in list order
func (s *ConceptItemService) GetByRoom(roomID uuid.UUID) ([]ConceptItemResponse, error) {
	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	items, err := s.repo.GetByRoomID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get concept items: %w", err)
	}

	responses := make([]ConceptItemResponse, len(items))
	for i := range items {
		responses[i] = toConceptItemResponse(&items[i])
	}
	return responses, nil
}

// Update applies a partial update to a checklist item
func (s *ConceptItemService) Update(id uuid.UUID, req *UpdateConceptItemRequest) (*ConceptItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConceptItemNotFound
		}
		return nil, fmt.Errorf("failed to get concept item: %w", err)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Note != nil {
		item.Note = *req.Note
	}
	if req.LinkURL != nil {
		item.LinkURL = *req.LinkURL
	}
	if req.AttachmentURL != nil {
		item.AttachmentURL = *req.AttachmentURL
	}
	if req.Done != nil {
		item.Done = *req.Done
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update concept item: %w", err)
	}

	resp := toConceptItemResponse(item)
	return &resp, nil
}

// Delete removes a checklist item
func (s *ConceptItemService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrConceptItemNotFound
		}
		return fmt.Errorf("failed to delete concept item: %w", err)
	}
	return nil
}

func toConceptItemResponse(item *models.ConceptItem) ConceptItemResponse {
	return ConceptItemResponse{
		ID:            item.ID,
		RoomID:        item.RoomID,
		Title:         item.Title,
		Note:          item.Note,
		LinkURL:       item.LinkURL,
		AttachmentURL: item.AttachmentURL,
		Done:          item.Done,
		Position:      item.Position,
	}
}
