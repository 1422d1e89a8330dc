package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractorRepository handles database operations for contractors
type ContractorRepository struct {
	db *gorm.DB
}

// Ensure ContractorRepository implements ContractorRepositoryInterface
var _ ContractorRepositoryInterface = (*ContractorRepository)(nil)

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// Create creates a new contractor
func (r *ContractorRepository) Create(contractor *models.Contractor) error {
	return r.db.Create(contractor).Error
}

// GetByID retrieves a contractor by ID
func (r *ContractorRepository) GetByID(id uuid.UUID) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.First(&contractor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

// GetAll retrieves all contractors with pagination
func (r *ContractorRepository) GetAll(limit, offset int) ([]models.Contractor, int64, error) {
	var contractors []models.Contractor
	var total int64

	if err := r.db.Model(&models.Contractor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&contractors).Error
	if err != nil {
		return nil, 0, err
	}

	return contractors, total, nil
}

// GetByProjectID retrieves the contractors attached to a project
func (r *ContractorRepository) GetByProjectID(projectID uuid.UUID) ([]models.Contractor, error) {
	var contractors []models.Contractor
	subQuery := r.db.Model(&models.ProjectContractor{}).Select("contractor_id").Where("project_id = ?", projectID)
	err := r.db.Where("id IN (?)", subQuery).Order("name ASC").Find(&contractors).Error
	if err != nil {
		return nil, err
	}
	return contractors, nil
}

// Update updates a contractor
func (r *ContractorRepository) Update(contractor *models.Contractor) error {
	return r.db.Save(contractor).Error
}

// Delete deletes a contractor
func (r *ContractorRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Contractor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
