package repository

import (
	"design-studio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with pagination, newest first
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and cascades to its sections, rooms and
// contractor assignments
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetWithContractors retrieves a project with its contractor assignments
func (r *ProjectRepository) GetWithContractors(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("ProjectContractors.Contractor").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AddContractor attaches a contractor to a project
func (r *ProjectRepository) AddContractor(projectID, contractorID uuid.UUID) error {
	projectContractor := &models.ProjectContractor{
		ProjectID:    projectID,
		ContractorID: contractorID,
	}
	return r.db.Create(projectContractor).Error
}

// RemoveContractor detaches a contractor from a project
func (r *ProjectRepository) RemoveContractor(projectID, contractorID uuid.UUID) error {
	return r.db.Where("project_id = ? AND contractor_id = ?", projectID, contractorID).Delete(&models.ProjectContractor{}).Error
}

// CheckContractorInProject checks if a contractor is attached to a project
func (r *ProjectRepository) CheckContractorInProject(projectID, contractorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectContractor{}).Where("project_id = ? AND contractor_id = ?", projectID, contractorID).Count(&count).Error
	return count > 0, err
}
