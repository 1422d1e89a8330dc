package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *gorm.DB
}

// Ensure SectionRepository implements SectionRepositoryInterface
var _ SectionRepositoryInterface = (*SectionRepository)(nil)

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// Create creates a new section
func (r *SectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetByProjectID retrieves all sections for a project in creation order
func (r *SectionRepository) GetByProjectID(projectID uuid.UUID) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Where("project_id = ?", projectID).Order("created_at ASC, id ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// Update updates a section
func (r *SectionRepository) Update(section *models.Section) error {
	return r.db.Save(section).Error
}

// Delete deletes a section. Emptiness is a precondition checked by the
// organization engine, not re-checked here.
func (r *SectionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
