package service

import (
	"errors"
	"fmt"
	"sort"

	"design-studio-backend/internal/database/models"
	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/logger"
	"design-studio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReorderDirection is the direction of a pairwise reorder swap
type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"
	ReorderDown ReorderDirection = "down"
)

// IsValid reports whether the direction is one of up/down
func (d ReorderDirection) IsValid() bool {
	return d == ReorderUp || d == ReorderDown
}

// OrganizerService is the room and section organization engine. It groups a
// project's rooms into per-section buckets with a strict display order,
// moves rooms between buckets, swaps adjacent positions, and guards section
// deletion. Every operation re-derives its view of the bucket from a fresh
// read; no state is held between calls.
type OrganizerService struct {
	roomRepo    repository.RoomRepositoryInterface
	sectionRepo repository.SectionRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// Ensure OrganizerService implements OrganizerServiceInterface
var _ OrganizerServiceInterface = (*OrganizerService)(nil)

// NewOrganizerService creates a new organizer service
func NewOrganizerService(
	roomRepo repository.RoomRepositoryInterface,
	sectionRepo repository.SectionRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	validator *validator.Validate,
) *OrganizerService {
	return &OrganizerService{
		roomRepo:    roomRepo,
		sectionRepo: sectionRepo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateRoomRequest represents the request to create a room
type CreateRoomRequest struct {
	ProjectID  uuid.UUID         `json:"project_id" validate:"required"`
	RoomType   models.RoomType   `json:"room_type" validate:"required"`
	CustomName string            `json:"custom_name,omitempty" validate:"max=120"`
	SectionID  *uuid.UUID        `json:"section_id,omitempty"`
	Status     models.RoomStatus `json:"status,omitempty"`
}

// UpdateRoomRequest represents a partial field edit of a room. Section and
// order changes go through MoveRoomToSection and ReorderRoom instead.
type UpdateRoomRequest struct {
	RoomType   *models.RoomType   `json:"room_type,omitempty"`
	CustomName *string            `json:"custom_name,omitempty" validate:"omitempty,max=120"`
	Status     *models.RoomStatus `json:"status,omitempty"`
}

// MoveRoomRequest represents the request to move a room to a section
// (or to the unassigned bucket when section_id is null)
type MoveRoomRequest struct {
	SectionID *uuid.UUID `json:"section_id"`
}

// ReorderRoomRequest represents the request to swap a room with its neighbor
type ReorderRoomRequest struct {
	Direction ReorderDirection `json:"direction" validate:"required"`
}

// GetProjectLayout groups a project's rooms into one ordered bucket per
// section plus the unassigned bucket. Buckets sort by sort_order ascending
// with room id as the tie-break, so repeated calls against unchanged data
// return identical order.
func (s *OrganizerService) GetProjectLayout(projectID uuid.UUID) (*ProjectLayoutResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	sections, err := s.sectionRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}

	rooms, err := s.roomRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	buckets := make(map[uuid.UUID][]models.Room, len(sections))
	var unassigned []models.Room
	for _, room := range rooms {
		if room.SectionID == nil {
			unassigned = append(unassigned, room)
			continue
		}
		buckets[*room.SectionID] = append(buckets[*room.SectionID], room)
	}

	sortBucket(unassigned)

	layout := &ProjectLayoutResponse{
		ProjectID:  projectID,
		Sections:   make([]SectionGroup, 0, len(sections)),
		Unassigned: roomResponses(unassigned),
	}
	for i := range sections {
		bucket := buckets[sections[i].ID]
		sortBucket(bucket)
		layout.Sections = append(layout.Sections, SectionGroup{
			Section: toSectionResponse(&sections[i]),
			Rooms:   roomResponses(bucket),
		})
	}

	return layout, nil
}

// CreateRoom creates a room appended to the end of its destination bucket:
// sort_order = max(bucket) + 1, or 0 when the bucket is empty.
func (s *OrganizerService) CreateRoom(req *CreateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.RoomType.IsValid() {
		return nil, apperrors.NewValidationError("room_type", fmt.Sprintf("unknown room type %q", req.RoomType))
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if req.SectionID != nil {
		if err := s.checkSectionRef(req.ProjectID, *req.SectionID); err != nil {
			return nil, err
		}
	}

	order, err := s.nextSortOrder(req.ProjectID, req.SectionID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.RoomStatusConcept
	}

	room := &models.Room{
		ProjectID:  req.ProjectID,
		SectionID:  req.SectionID,
		RoomType:   req.RoomType,
		CustomName: req.CustomName,
		SortOrder:  order,
		Status:     status,
	}
	if err := s.roomRepo.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	resp := toRoomResponse(room)
	return &resp, nil
}

// GetRoom retrieves a single room
func (s *OrganizerService) GetRoom(id uuid.UUID) (*RoomResponse, error) {
	room, err := s.getRoom(id)
	if err != nil {
		return nil, err
	}
	resp := toRoomResponse(room)
	return &resp, nil
}

// UpdateRoom applies a partial field edit. Fields outside the patch are left
// untouched; section and order are not editable here.
func (s *OrganizerService) UpdateRoom(id uuid.UUID, req *UpdateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.RoomType != nil && !req.RoomType.IsValid() {
		return nil, apperrors.NewValidationError("room_type", fmt.Sprintf("unknown room type %q", *req.RoomType))
	}

	if _, err := s.getRoom(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.RoomType != nil {
		updates["room_type"] = *req.RoomType
	}
	if req.CustomName != nil {
		updates["custom_name"] = *req.CustomName
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := s.roomRepo.UpdateFields(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRoomNotFound
			}
			return nil, fmt.Errorf("failed to update room: %w", err)
		}
	}

	return s.GetRoom(id)
}

// DeleteRoom removes a room and its owned concept items. Surviving siblings
// keep their sort_order values; gaps are permitted and only relative order
// is meaningful.
func (s *OrganizerService) DeleteRoom(id uuid.UUID) error {
	if err := s.roomRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

// MoveRoomToSection reassigns a room's bucket. The room is appended to the
// end of the destination: sort_order and section_id change together in a
// single update so the room never lands mid-list.
func (s *OrganizerService) MoveRoomToSection(roomID uuid.UUID, sectionID *uuid.UUID) (*RoomResponse, error) {
	room, err := s.getRoom(roomID)
	if err != nil {
		return nil, err
	}

	if sectionID != nil {
		if err := s.checkSectionRef(room.ProjectID, *sectionID); err != nil {
			return nil, err
		}
	}

	order, err := s.nextSortOrder(room.ProjectID, sectionID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"section_id": sectionID,
		"sort_order": order,
	}
	if err := s.roomRepo.UpdateFields(roomID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to move room: %w", err)
	}

	return s.GetRoom(roomID)
}

// ReorderRoom swaps a room's sort_order with its adjacent sibling in the
// current bucket. The first or last room reordered past the boundary is a
// silent no-op. The swap writes exactly two rows; when the second write
// fails after the first succeeded the bucket is left in a valid but
// unswapped-half state and a PartialFailureError is returned so the caller
// can re-fetch and retry.
func (s *OrganizerService) ReorderRoom(roomID uuid.UUID, direction ReorderDirection) error {
	if !direction.IsValid() {
		return apperrors.NewValidationError("direction", fmt.Sprintf("unknown direction %q", direction))
	}

	room, err := s.getRoom(roomID)
	if err != nil {
		return err
	}

	bucket, err := s.roomRepo.GetBucket(room.ProjectID, room.SectionID)
	if err != nil {
		return fmt.Errorf("failed to read bucket: %w", err)
	}

	i := -1
	for idx := range bucket {
		if bucket[idx].ID == roomID {
			i = idx
			break
		}
	}
	if i < 0 {
		// Bucket changed under us between the two reads.
		return apperrors.ErrRoomNotFound
	}

	var j int
	switch direction {
	case ReorderUp:
		if i == 0 {
			return nil
		}
		j = i - 1
	case ReorderDown:
		if i == len(bucket)-1 {
			return nil
		}
		j = i + 1
	}

	target, sibling := bucket[i], bucket[j]
	if err := s.roomRepo.UpdateFields(target.ID, map[string]interface{}{"sort_order": sibling.SortOrder}); err != nil {
		return fmt.Errorf("failed to reorder room: %w", err)
	}
	if err := s.roomRepo.UpdateFields(sibling.ID, map[string]interface{}{"sort_order": target.SortOrder}); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"room_id":    target.ID,
			"sibling_id": sibling.ID,
			"direction":  direction,
		}).WithError(err).Error("second write of reorder swap failed, bucket left half-swapped")
		return apperrors.NewPartialFailureError("room reorder swap", err)
	}

	return nil
}

// DeleteSection removes a section once the engine has confirmed it owns no
// rooms. A non-empty section fails with a conflict carrying the blocking
// count and no mutation occurs.
func (s *OrganizerService) DeleteSection(sectionID uuid.UUID) error {
	if _, err := s.sectionRepo.GetByID(sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("failed to get section: %w", err)
	}

	count, err := s.roomRepo.CountBySection(sectionID)
	if err != nil {
		return fmt.Errorf("failed to count section rooms: %w", err)
	}
	if count > 0 {
		return apperrors.NewNotEmptyError("section", count)
	}

	if err := s.sectionRepo.Delete(sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

func (s *OrganizerService) getRoom(id uuid.UUID) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

// checkSectionRef verifies the section exists and belongs to the given project
func (s *OrganizerService) checkSectionRef(projectID, sectionID uuid.UUID) error {
	section, err := s.sectionRepo.GetByID(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("failed to get section: %w", err)
	}
	if section.ProjectID != projectID {
		return apperrors.ErrSectionWrongProject
	}
	return nil
}

// nextSortOrder computes the append position for a bucket
func (s *OrganizerService) nextSortOrder(projectID uuid.UUID, sectionID *uuid.UUID) (int, error) {
	max, err := s.roomRepo.MaxSortOrder(projectID, sectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute sort order: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// sortBucket orders rooms by sort_order ascending, id ascending on ties
func sortBucket(rooms []models.Room) {
	sort.SliceStable(rooms, func(a, b int) bool {
		if rooms[a].SortOrder != rooms[b].SortOrder {
			return rooms[a].SortOrder < rooms[b].SortOrder
		}
		return rooms[a].ID.String() < rooms[b].ID.String()
	})
}

func roomResponses(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i := range rooms {
		out[i] = toRoomResponse(&rooms[i])
	}
	return out
}
