package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConceptItemRepository handles database operations for design-concept checklist items
type ConceptItemRepository struct {
	db *gorm.DB
}

// Ensure ConceptItemRepository implements ConceptItemRepositoryInterface
var _ ConceptItemRepositoryInterface = (*ConceptItemRepository)(nil)

// NewConceptItemRepository creates a new concept item repository
func NewConceptItemRepository(db *gorm.DB) *ConceptItemRepository {
	return &ConceptItemRepository{db: db}
}

// Create creates a new concept item
func (r *ConceptItemRepository) Create(item *models.ConceptItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a concept item by ID
func (r *ConceptItemRepository) GetByID(id uuid.UUID) (*models.ConceptItem, error) {
	var item models.ConceptItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByRoomID retrieves a room's checklist in list order
func (r *ConceptItemRepository) GetByRoomID(roomID uuid.UUID) ([]models.ConceptItem, error) {
	var items []models.ConceptItem
	err := r.db.Where("room_id = ?", roomID).Order("position ASC, id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MaxPosition returns the highest position in a room's checklist, or nil
// when the checklist is empty
func (r *ConceptItemRepository) MaxPosition(roomID uuid.UUID) (*int, error) {
	var result struct {
		Max *int
	}
	err := r.db.Model(&models.ConceptItem{}).Select("MAX(position) AS max").Where("room_id = ?", roomID).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result.Max, nil
}

// Update updates a concept item
func (r *ConceptItemRepository) Update(item *models.ConceptItem) error {
	return r.db.Save(item).Error
}

// Delete deletes a concept item
func (r *ConceptItemRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ConceptItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
