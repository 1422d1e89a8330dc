package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *gorm.DB
}

// Ensure RoomRepository implements RoomRepositoryInterface
var _ RoomRepositoryInterface = (*RoomRepository)(nil)

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByProjectID retrieves all rooms for a project, unsorted
func (r *RoomRepository) GetByProjectID(projectID uuid.UUID) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("project_id = ?", projectID).Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetBucket retrieves the rooms sharing a section (nil for the unassigned
// bucket) sorted by sort_order with id as a deterministic tie-break.
func (r *RoomRepository) GetBucket(projectID uuid.UUID, sectionID *uuid.UUID) ([]models.Room, error) {
	var rooms []models.Room
	query := r.db.Where("project_id = ?", projectID)
	if sectionID == nil {
		query = query.Where("section_id IS NULL")
	} else {
		query = query.Where("section_id = ?", *sectionID)
	}
	err := query.Order("sort_order ASC, id ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// MaxSortOrder returns the highest sort_order in a bucket, or nil when the
// bucket is empty.
func (r *RoomRepository) MaxSortOrder(projectID uuid.UUID, sectionID *uuid.UUID) (*int, error) {
	var result struct {
		Max *int
	}
	query := r.db.Model(&models.Room{}).Select("MAX(sort_order) AS max").Where("project_id = ?", projectID)
	if sectionID == nil {
		query = query.Where("section_id IS NULL")
	} else {
		query = query.Where("section_id = ?", *sectionID)
	}
	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}
	return result.Max, nil
}

// CountBySection returns how many rooms reference a section
func (r *RoomRepository) CountBySection(sectionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

// UpdateFields applies a partial update to a single room. Section and order
// changes go through here so both columns land in one UPDATE.
func (r *RoomRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a room. Dependent concept items are removed by the
// database-level cascade; sibling sort_order values are never renumbered.
func (r *RoomRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
