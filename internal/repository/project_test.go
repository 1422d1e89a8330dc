package repository

import (
	"testing"

	"design-studio-backend/internal/database/models"
	"design-studio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *ProjectRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a project directly via gorm
func (suite *ProjectRepositoryTestSuite) createProject(name string) *models.Project {
	project := suite.factories.Project.WithName(name)
	err := suite.baseTestSuite.DB.Create(project).Error
	suite.NoError(err)
	return project
}

// helper to insert a contractor directly via gorm
func (suite *ProjectRepositoryTestSuite) createContractor() *models.Contractor {
	contractor := suite.factories.Contractor.Create()
	err := suite.baseTestSuite.DB.Create(contractor).Error
	suite.NoError(err)
	return contractor
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
	suite.NotZero(project.CreatedAt)
}

// TestGetAll tests pagination over projects
func (suite *ProjectRepositoryTestSuite) TestGetAll() {
	_ = suite.createProject("One")
	_ = suite.createProject("Two")
	_ = suite.createProject("Three")

	projects, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(projects, 2)

	rest, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestUpdate tests updating a project
func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.createProject("Before")

	project.Name = "After"
	project.Status = models.ProjectStatusArchived
	err := suite.repo.Update(project)
	suite.NoError(err)

	found, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("After", found.Name)
	suite.Equal(models.ProjectStatusArchived, found.Status)
}

// TestDelete tests deleting a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.createProject("Doomed")

	err := suite.repo.Delete(project.ID)
	suite.NoError(err)

	found, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestDelete_NotFound tests deleting a non-existent project
func (suite *ProjectRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAddAndCheckContractor tests attaching a contractor and the membership
// check
func (suite *ProjectRepositoryTestSuite) TestAddAndCheckContractor() {
	project := suite.createProject("Renovation")
	contractor := suite.createContractor()

	assigned, err := suite.repo.CheckContractorInProject(project.ID, contractor.ID)
	suite.NoError(err)
	suite.False(assigned)

	err = suite.repo.AddContractor(project.ID, contractor.ID)
	suite.NoError(err)

	assigned, err = suite.repo.CheckContractorInProject(project.ID, contractor.ID)
	suite.NoError(err)
	suite.True(assigned)
}

// TestRemoveContractor tests detaching a contractor from a project
func (suite *ProjectRepositoryTestSuite) TestRemoveContractor() {
	project := suite.createProject("Renovation")
	contractor := suite.createContractor()

	err := suite.repo.AddContractor(project.ID, contractor.ID)
	suite.NoError(err)

	err = suite.repo.RemoveContractor(project.ID, contractor.ID)
	suite.NoError(err)

	assigned, err := suite.repo.CheckContractorInProject(project.ID, contractor.ID)
	suite.NoError(err)
	suite.False(assigned)
}

// TestGetWithContractors tests preloading contractor assignments
func (suite *ProjectRepositoryTestSuite) TestGetWithContractors() {
	project := suite.createProject("Staffed")
	first := suite.createContractor()
	second := suite.createContractor()

	suite.NoError(suite.repo.AddContractor(project.ID, first.ID))
	suite.NoError(suite.repo.AddContractor(project.ID, second.ID))

	found, err := suite.repo.GetWithContractors(project.ID)

	suite.NoError(err)
	suite.Len(found.ProjectContractors, 2)
	for _, pc := range found.ProjectContractors {
		suite.NotEqual(uuid.Nil, pc.Contractor.ID)
	}
}

// Run the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
