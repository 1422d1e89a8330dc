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

type ConceptItemServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockItemRepo       *mocks.MockConceptItemRepositoryInterface
	mockRoomRepo       *mocks.MockRoomRepositoryInterface
	conceptItemService *service.ConceptItemService
	validator          *validator.Validate
}

func (suite *ConceptItemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockItemRepo = mocks.NewMockConceptItemRepositoryInterface(suite.ctrl)
	suite.mockRoomRepo = mocks.NewMockRoomRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.conceptItemService = service.NewConceptItemService(
		suite.mockItemRepo,
		suite.mockRoomRepo,
		suite.validator,
	)
}

func (suite *ConceptItemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConceptItemServiceTestSuite) TestCreate_AppendsToEndOfList() {
	roomID := uuid.New()
	max := 4

	suite.mockRoomRepo.EXPECT().GetByID(roomID).Return(&models.Room{BaseModel: models.BaseModel{ID: roomID}}, nil)
	suite.mockItemRepo.EXPECT().MaxPosition(roomID).Return(&max, nil)
	suite.mockItemRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.ConceptItem) error {
		assert.Equal(suite.T(), 5, item.Position)
		assert.False(suite.T(), item.Done)
		item.ID = uuid.New()
		return nil
	})

	resp, err := suite.conceptItemService.Create(roomID, &service.CreateConceptItemRequest{
		Title: "Pick paint color",
		Note:  "Client prefers warm tones",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.Position)
	assert.Equal(suite.T(), "Pick paint color", resp.Title)
}

func (suite *ConceptItemServiceTestSuite) TestCreate_EmptyListStartsAtZero() {
	roomID := uuid.New()

	suite.mockRoomRepo.EXPECT().GetByID(roomID).Return(&models.Room{BaseModel: models.BaseModel{ID: roomID}}, nil)
	suite.mockItemRepo.EXPECT().MaxPosition(roomID).Return(nil, nil)
	suite.mockItemRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.ConceptItem) error {
		assert.Equal(suite.T(), 0, item.Position)
		item.ID = uuid.New()
		return nil
	})

	resp, err := suite.conceptItemService.Create(roomID, &service.CreateConceptItemRequest{
		Title: "Source area rug",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Position)
}

func (suite *ConceptItemServiceTestSuite) TestCreate_RoomNotFound() {
	roomID := uuid.New()
	suite.mockRoomRepo.EXPECT().GetByID(roomID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.conceptItemService.Create(roomID, &service.CreateConceptItemRequest{
		Title: "Anything",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoomNotFound)
}

func (suite *ConceptItemServiceTestSuite) TestCreate_MissingTitle() {
	resp, err := suite.conceptItemService.Create(uuid.New(), &service.CreateConceptItemRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ConceptItemServiceTestSuite) TestGetByRoom_Success() {
	roomID := uuid.New()
	items := []models.ConceptItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, RoomID: roomID, Title: "First", Position: 0},
		{BaseModel: models.BaseModel{ID: uuid.New()}, RoomID: roomID, Title: "Second", Position: 1, Done: true},
	}

	suite.mockRoomRepo.EXPECT().GetByID(roomID).Return(&models.Room{BaseModel: models.BaseModel{ID: roomID}}, nil)
	suite.mockItemRepo.EXPECT().GetByRoomID(roomID).Return(items, nil)

	resp, err := suite.conceptItemService.GetByRoom(roomID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "First", resp[0].Title)
	assert.True(suite.T(), resp[1].Done)
}

func (suite *ConceptItemServiceTestSuite) TestGetByRoom_RoomNotFound() {
	roomID := uuid.New()
	suite.mockRoomRepo.EXPECT().GetByID(roomID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.conceptItemService.GetByRoom(roomID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoomNotFound)
}

func (suite *ConceptItemServiceTestSuite) TestUpdate_TogglesDoneOnly() {
	item := &models.ConceptItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RoomID:    uuid.New(),
		Title:     "Order sofa",
		Position:  2,
	}
	done := true

	suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)
	suite.mockItemRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.ConceptItem) error {
		assert.True(suite.T(), updated.Done)
		assert.Equal(suite.T(), "Order sofa", updated.Title)
		assert.Equal(suite.T(), 2, updated.Position)
		return nil
	})

	resp, err := suite.conceptItemService.Update(item.ID, &service.UpdateConceptItemRequest{Done: &done})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Done)
}

func (suite *ConceptItemServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	title := "New title"
	suite.mockItemRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.conceptItemService.Update(id, &service.UpdateConceptItemRequest{Title: &title})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConceptItemNotFound)
}

func (suite *ConceptItemServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockItemRepo.EXPECT().Delete(id).Return(nil)

	err := suite.conceptItemService.Delete(id)

	assert.NoError(suite.T(), err)
}

func (suite *ConceptItemServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockItemRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.conceptItemService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConceptItemNotFound)
}

func TestConceptItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConceptItemServiceTestSuite))
}
