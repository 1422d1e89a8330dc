package service_test

import (
	"testing"

	"design-studio-backend/internal/database/models"
	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/mocks"
	"design-studio-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SectionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSectionRepo *mocks.MockSectionRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	sectionService  *service.SectionService
	validator       *validator.Validate
}

func (suite *SectionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSectionRepo = mocks.NewMockSectionRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.sectionService = service.NewSectionService(
		suite.mockSectionRepo,
		suite.mockProjectRepo,
		suite.validator,
	)
}

func (suite *SectionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SectionServiceTestSuite) TestCreate_Success() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	suite.mockSectionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Section) error {
		s.ID = uuid.New()
		return nil
	})

	resp, err := suite.sectionService.Create(&service.CreateSectionRequest{
		ProjectID: projectID,
		Name:      "Ground Floor",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ground Floor", resp.Name)
	assert.Equal(suite.T(), projectID, resp.ProjectID)
}

func (suite *SectionServiceTestSuite) TestCreate_TrimsName() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	suite.mockSectionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Section) error {
		assert.Equal(suite.T(), "Attic", s.Name)
		s.ID = uuid.New()
		return nil
	})

	resp, err := suite.sectionService.Create(&service.CreateSectionRequest{
		ProjectID: projectID,
		Name:      "  Attic  ",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Attic", resp.Name)
}

func (suite *SectionServiceTestSuite) TestCreate_WhitespaceOnlyName() {
	resp, err := suite.sectionService.Create(&service.CreateSectionRequest{
		ProjectID: uuid.New(),
		Name:      "   ",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SectionServiceTestSuite) TestCreate_EmptyName() {
	resp, err := suite.sectionService.Create(&service.CreateSectionRequest{
		ProjectID: uuid.New(),
		Name:      "",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SectionServiceTestSuite) TestCreate_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.sectionService.Create(&service.CreateSectionRequest{
		ProjectID: projectID,
		Name:      "Basement",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *SectionServiceTestSuite) TestRename_Success() {
	section := &models.Section{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: uuid.New(),
		Name:      "Old Name",
	}

	suite.mockSectionRepo.EXPECT().GetByID(section.ID).Return(section, nil)
	suite.mockSectionRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *models.Section) error {
		assert.Equal(suite.T(), "New Name", s.Name)
		return nil
	})

	resp, err := suite.sectionService.Rename(section.ID, &service.RenameSectionRequest{Name: "New Name"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", resp.Name)
}

func (suite *SectionServiceTestSuite) TestRename_NotFound() {
	id := uuid.New()
	suite.mockSectionRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.sectionService.Rename(id, &service.RenameSectionRequest{Name: "Anything"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSectionNotFound)
}

func (suite *SectionServiceTestSuite) TestRename_WhitespaceOnlyName() {
	resp, err := suite.sectionService.Rename(uuid.New(), &service.RenameSectionRequest{Name: "\t \n"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SectionServiceTestSuite) TestGetByProject_CreationOrder() {
	projectID := uuid.New()
	sections := []models.Section{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "First"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "Second"},
	}

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	suite.mockSectionRepo.EXPECT().GetByProjectID(projectID).Return(sections, nil)

	resp, err := suite.sectionService.GetByProject(projectID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "First", resp[0].Name)
	assert.Equal(suite.T(), "Second", resp[1].Name)
}

func (suite *SectionServiceTestSuite) TestGetByProject_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.sectionService.GetByProject(projectID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func TestSectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SectionServiceTestSuite))
}
