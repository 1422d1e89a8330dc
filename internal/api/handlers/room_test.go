package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"design-studio-backend/internal/api/handlers"
	"design-studio-backend/internal/database/models"
	apperrors "design-studio-backend/internal/errors"
	"design-studio-backend/internal/mocks"
	"design-studio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoomHandlerTestSuite defines the test suite for RoomHandler
type RoomHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOrganizerSvc *mocks.MockOrganizerServiceInterface
	handler          *handlers.RoomHandler
	router           *gin.Engine
}

func (suite *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizerSvc = mocks.NewMockOrganizerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRoomHandler(suite.mockOrganizerSvc)

	suite.router = gin.New()
	suite.router.POST("/rooms", suite.handler.CreateRoom)
	suite.router.GET("/rooms/:id", suite.handler.GetRoom)
	suite.router.PUT("/rooms/:id", suite.handler.UpdateRoom)
	suite.router.DELETE("/rooms/:id", suite.handler.DeleteRoom)
	suite.router.PUT("/rooms/:id/section", suite.handler.MoveRoom)
	suite.router.POST("/rooms/:id/reorder", suite.handler.ReorderRoom)
}

func (suite *RoomHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_Success() {
	projectID := uuid.New()
	resp := &service.RoomResponse{
		ID:          uuid.New(),
		ProjectID:   projectID,
		RoomType:    models.RoomTypeKitchen,
		DisplayName: "Kitchen",
		SortOrder:   0,
		Status:      models.RoomStatusConcept,
		StatusLabel: "Concept",
	}
	suite.mockOrganizerSvc.EXPECT().CreateRoom(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": projectID,
		"room_type":  "KITCHEN",
	})
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.RoomResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Kitchen", got.DisplayName)
	assert.Equal(suite.T(), models.RoomTypeKitchen, got.RoomType)
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_UnknownRoomType() {
	suite.mockOrganizerSvc.EXPECT().CreateRoom(gomock.Any()).
		Return(nil, apperrors.NewValidationError("room_type", "unknown room type"))

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": uuid.New(),
		"room_type":  "GARAGE",
	})
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "room_type")
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_SectionInOtherProject() {
	suite.mockOrganizerSvc.EXPECT().CreateRoom(gomock.Any()).
		Return(nil, apperrors.ErrSectionWrongProject)

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": uuid.New(),
		"room_type":  "KITCHEN",
		"section_id": uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "different project")
}

func (suite *RoomHandlerTestSuite) TestGetRoom_Success() {
	id := uuid.New()
	resp := &service.RoomResponse{
		ID:          id,
		ProjectID:   uuid.New(),
		RoomType:    models.RoomTypeMasterBedroom,
		DisplayName: "Master Bedroom",
	}
	suite.mockOrganizerSvc.EXPECT().GetRoom(id).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Master Bedroom")
}

func (suite *RoomHandlerTestSuite) TestGetRoom_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/rooms/abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid room ID")
}

func (suite *RoomHandlerTestSuite) TestGetRoom_NotFound() {
	id := uuid.New()
	suite.mockOrganizerSvc.EXPECT().GetRoom(id).Return(nil, apperrors.ErrRoomNotFound)

	req := httptest.NewRequest(http.MethodGet, "/rooms/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RoomHandlerTestSuite) TestUpdateRoom_Success() {
	id := uuid.New()
	resp := &service.RoomResponse{
		ID:          id,
		RoomType:    models.RoomTypeBedroom,
		CustomName:  "Emma's Room",
		DisplayName: "Emma's Room",
	}
	suite.mockOrganizerSvc.EXPECT().UpdateRoom(id, gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]string{"custom_name": "Emma's Room"})
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+id.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Emma's Room")
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom_Success() {
	id := uuid.New()
	suite.mockOrganizerSvc.EXPECT().DeleteRoom(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/rooms/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "room deleted")
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom_NotFound() {
	id := uuid.New()
	suite.mockOrganizerSvc.EXPECT().DeleteRoom(id).Return(apperrors.ErrRoomNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/rooms/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RoomHandlerTestSuite) TestMoveRoom_ToSection() {
	roomID := uuid.New()
	sectionID := uuid.New()
	resp := &service.RoomResponse{ID: roomID, SectionID: &sectionID, SortOrder: 2}
	suite.mockOrganizerSvc.EXPECT().MoveRoomToSection(roomID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, target *uuid.UUID) (*service.RoomResponse, error) {
			assert.NotNil(suite.T(), target)
			assert.Equal(suite.T(), sectionID, *target)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]interface{}{"section_id": sectionID})
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+roomID.String()+"/section", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoomHandlerTestSuite) TestMoveRoom_ToUnassigned() {
	roomID := uuid.New()
	resp := &service.RoomResponse{ID: roomID, SectionID: nil, SortOrder: 0}
	suite.mockOrganizerSvc.EXPECT().MoveRoomToSection(roomID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, target *uuid.UUID) (*service.RoomResponse, error) {
			assert.Nil(suite.T(), target)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]interface{}{"section_id": nil})
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+roomID.String()+"/section", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoomHandlerTestSuite) TestMoveRoom_CrossProjectSection() {
	roomID := uuid.New()
	suite.mockOrganizerSvc.EXPECT().MoveRoomToSection(roomID, gomock.Any()).
		Return(nil, apperrors.ErrSectionWrongProject)

	body, _ := json.Marshal(map[string]interface{}{"section_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+roomID.String()+"/section", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RoomHandlerTestSuite) TestReorderRoom_Success() {
	roomID := uuid.New()
	suite.mockOrganizerSvc.EXPECT().ReorderRoom(roomID, service.ReorderUp).Return(nil)

	body, _ := json.Marshal(map[string]string{"direction": "up"})
	req := httptest.NewRequest(http.MethodPost, "/rooms/"+roomID.String()+"/reorder", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "room reordered")
}

func (suite *RoomHandlerTestSuite) TestReorderRoom_InvalidDirection() {
	roomID := uuid.New()
	suite.mockOrganizerSvc.EXPECT().ReorderRoom(roomID, service.ReorderDirection("sideways")).
		Return(apperrors.NewValidationError("direction", "must be up or down"))

	body, _ := json.Marshal(map[string]string{"direction": "sideways"})
	req := httptest.NewRequest(http.MethodPost, "/rooms/"+roomID.String()+"/reorder", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "direction")
}

func (suite *RoomHandlerTestSuite) TestReorderRoom_PartialFailure() {
	roomID := uuid.New()
	suite.mockOrganizerSvc.EXPECT().ReorderRoom(roomID, service.ReorderDown).
		Return(apperrors.NewPartialFailureError("room reorder swap", errors.New("connection reset")))

	body, _ := json.Marshal(map[string]string{"direction": "down"})
	req := httptest.NewRequest(http.MethodPost, "/rooms/"+roomID.String()+"/reorder", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var got map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(suite.T(), got["error"], "partial failure")
	assert.Contains(suite.T(), got["hint"], "re-fetch")
}

func (suite *RoomHandlerTestSuite) TestReorderRoom_NotFound() {
	roomID := uuid.New()
	suite.mockOrganizerSvc.EXPECT().ReorderRoom(roomID, service.ReorderUp).
		Return(apperrors.ErrRoomNotFound)

	body, _ := json.Marshal(map[string]string{"direction": "up"})
	req := httptest.NewRequest(http.MethodPost, "/rooms/"+roomID.String()+"/reorder", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestRoomHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}
