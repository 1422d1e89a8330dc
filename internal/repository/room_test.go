package repository

import (
	"testing"

	"design-studio-backend/internal/database/models"
	"design-studio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoomRepositoryTestSuite tests the RoomRepository
type RoomRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *RoomRepository
}

// SetupSuite runs before all tests in the suite
func (suite *RoomRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	suite.repo = NewRoomRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *RoomRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoomRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoomRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a project directly via gorm
func (suite *RoomRepositoryTestSuite) createProject() *models.Project {
	project := suite.factories.Project.Create()
	err := suite.baseTestSuite.DB.Create(project).Error
	suite.NoError(err)
	return project
}

// helper to insert a section directly via gorm
func (suite *RoomRepositoryTestSuite) createSection(projectID uuid.UUID) *models.Section {
	section := suite.factories.Section.WithProject(projectID)
	err := suite.baseTestSuite.DB.Create(section).Error
	suite.NoError(err)
	return section
}

// helper to insert a room in a section at a given sort order
func (suite *RoomRepositoryTestSuite) createRoom(projectID uuid.UUID, sectionID *uuid.UUID, sortOrder int) *models.Room {
	room := suite.factories.Room.WithProject(projectID)
	room.SectionID = sectionID
	room.SortOrder = sortOrder
	err := suite.baseTestSuite.DB.Create(room).Error
	suite.NoError(err)
	return room
}

// TestCreate tests creating a new room
func (suite *RoomRepositoryTestSuite) TestCreate() {
	project := suite.createProject()

	room := suite.factories.Room.WithProject(project.ID)
	err := suite.repo.Create(room)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, room.ID)
	suite.NotZero(room.CreatedAt)
}

// TestGetByID tests retrieving a room by ID
func (suite *RoomRepositoryTestSuite) TestGetByID() {
	project := suite.createProject()
	room := suite.createRoom(project.ID, nil, 0)

	found, err := suite.repo.GetByID(room.ID)

	suite.NoError(err)
	suite.Equal(room.ID, found.ID)
	suite.Equal(project.ID, found.ProjectID)
}

// TestGetByID_NotFound tests retrieving a non-existent room
func (suite *RoomRepositoryTestSuite) TestGetByID_NotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetBucket_OrderedBySortOrder tests that bucket rows come back sorted
// by sort_order even when inserted out of order
func (suite *RoomRepositoryTestSuite) TestGetBucket_OrderedBySortOrder() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	third := suite.createRoom(project.ID, &section.ID, 7)
	first := suite.createRoom(project.ID, &section.ID, 0)
	second := suite.createRoom(project.ID, &section.ID, 3)

	rooms, err := suite.repo.GetBucket(project.ID, &section.ID)

	suite.NoError(err)
	suite.Len(rooms, 3)
	suite.Equal(first.ID, rooms[0].ID)
	suite.Equal(second.ID, rooms[1].ID)
	suite.Equal(third.ID, rooms[2].ID)
}

// TestGetBucket_TieBreakByID tests that equal sort_order values are broken
// deterministically by id
func (suite *RoomRepositoryTestSuite) TestGetBucket_TieBreakByID() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	a := suite.createRoom(project.ID, &section.ID, 5)
	b := suite.createRoom(project.ID, &section.ID, 5)

	rooms, err := suite.repo.GetBucket(project.ID, &section.ID)

	suite.NoError(err)
	suite.Len(rooms, 2)
	if a.ID.String() < b.ID.String() {
		suite.Equal(a.ID, rooms[0].ID)
		suite.Equal(b.ID, rooms[1].ID)
	} else {
		suite.Equal(b.ID, rooms[0].ID)
		suite.Equal(a.ID, rooms[1].ID)
	}
}

// TestGetBucket_UnassignedOnlyMatchesNull tests that the nil bucket returns
// only rooms without a section
func (suite *RoomRepositoryTestSuite) TestGetBucket_UnassignedOnlyMatchesNull() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	_ = suite.createRoom(project.ID, &section.ID, 0)
	unassigned := suite.createRoom(project.ID, nil, 0)

	rooms, err := suite.repo.GetBucket(project.ID, nil)

	suite.NoError(err)
	suite.Len(rooms, 1)
	suite.Equal(unassigned.ID, rooms[0].ID)
}

// TestGetBucket_ScopedToProject tests that another project's rooms never
// leak into the bucket
func (suite *RoomRepositoryTestSuite) TestGetBucket_ScopedToProject() {
	project := suite.createProject()
	other := suite.createProject()

	_ = suite.createRoom(other.ID, nil, 0)
	mine := suite.createRoom(project.ID, nil, 0)

	rooms, err := suite.repo.GetBucket(project.ID, nil)

	suite.NoError(err)
	suite.Len(rooms, 1)
	suite.Equal(mine.ID, rooms[0].ID)
}

// TestMaxSortOrder tests that the highest sort_order in a bucket is returned
func (suite *RoomRepositoryTestSuite) TestMaxSortOrder() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	_ = suite.createRoom(project.ID, &section.ID, 0)
	_ = suite.createRoom(project.ID, &section.ID, 9)
	_ = suite.createRoom(project.ID, &section.ID, 4)

	max, err := suite.repo.MaxSortOrder(project.ID, &section.ID)

	suite.NoError(err)
	suite.NotNil(max)
	suite.Equal(9, *max)
}

// TestMaxSortOrder_EmptyBucket tests that an empty bucket yields nil, not zero
func (suite *RoomRepositoryTestSuite) TestMaxSortOrder_EmptyBucket() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	max, err := suite.repo.MaxSortOrder(project.ID, &section.ID)

	suite.NoError(err)
	suite.Nil(max)
}

// TestCountBySection tests counting the rooms assigned to a section
func (suite *RoomRepositoryTestSuite) TestCountBySection() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	_ = suite.createRoom(project.ID, &section.ID, 0)
	_ = suite.createRoom(project.ID, &section.ID, 1)
	_ = suite.createRoom(project.ID, nil, 0)

	count, err := suite.repo.CountBySection(section.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestUpdateFields tests a partial update touching section and order together
func (suite *RoomRepositoryTestSuite) TestUpdateFields() {
	project := suite.createProject()
	section := suite.createSection(project.ID)
	room := suite.createRoom(project.ID, nil, 0)

	err := suite.repo.UpdateFields(room.ID, map[string]interface{}{
		"section_id": section.ID,
		"sort_order": 3,
	})
	suite.NoError(err)

	updated, err := suite.repo.GetByID(room.ID)
	suite.NoError(err)
	suite.NotNil(updated.SectionID)
	suite.Equal(section.ID, *updated.SectionID)
	suite.Equal(3, updated.SortOrder)
}

// TestUpdateFields_NotFound tests that updating a missing room reports
// record-not-found instead of silently succeeding
func (suite *RoomRepositoryTestSuite) TestUpdateFields_NotFound() {
	err := suite.repo.UpdateFields(uuid.New(), map[string]interface{}{
		"sort_order": 1,
	})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDelete_LeavesSiblingOrdersUntouched tests that deleting a room never
// renumbers the remaining rooms in the bucket
func (suite *RoomRepositoryTestSuite) TestDelete_LeavesSiblingOrdersUntouched() {
	project := suite.createProject()
	section := suite.createSection(project.ID)

	_ = suite.createRoom(project.ID, &section.ID, 0)
	middle := suite.createRoom(project.ID, &section.ID, 1)
	last := suite.createRoom(project.ID, &section.ID, 2)

	err := suite.repo.Delete(middle.ID)
	suite.NoError(err)

	rooms, err := suite.repo.GetBucket(project.ID, &section.ID)
	suite.NoError(err)
	suite.Len(rooms, 2)
	// the gap at sort_order 1 remains
	suite.Equal(0, rooms[0].SortOrder)
	suite.Equal(2, rooms[1].SortOrder)
	suite.Equal(last.ID, rooms[1].ID)
}

// TestDelete_NotFound tests deleting a non-existent room
func (suite *RoomRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestRoomRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RoomRepositoryTestSuite))
}
