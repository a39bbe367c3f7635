package service_test

import (
	"testing"

	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/repository"
	"github.com/bkaraca/taskhive/internal/service"
	"github.com/bkaraca/taskhive/internal/testutil"
	"github.com/bkaraca/taskhive/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TodoServiceIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	todoService *service.TodoService

	owner     models.Principal
	stranger  models.Principal
	adminUser models.Principal
}

func (s *TodoServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	todoRepo := repository.NewTodoRepository(s.testDB.DB)
	s.todoService = service.NewTodoService(todoRepo)
}

func (s *TodoServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *TodoServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	userA, _ := testutil.CreateTestUser("owner", "owner@example.com", "Pass123456", models.RoleUser)
	userB, _ := testutil.CreateTestUser("stranger", "stranger@example.com", "Pass123456", models.RoleUser)
	adminUser, _ := testutil.DefaultAdminUser()

	require.NoError(s.T(), s.testDB.DB.Create(userA).Error)
	require.NoError(s.T(), s.testDB.DB.Create(userB).Error)
	require.NoError(s.T(), s.testDB.DB.Create(adminUser).Error)

	s.owner = models.Principal{ID: userA.ID, Username: userA.Username, Role: userA.Role}
	s.stranger = models.Principal{ID: userB.ID, Username: userB.Username, Role: userB.Role}
	s.adminUser = models.Principal{ID: adminUser.ID, Username: adminUser.Username, Role: adminUser.Role}
}

func (s *TodoServiceIntegrationTestSuite) validInput() service.TodoInput {
	return service.TodoInput{
		Title:       "Water the plants",
		Description: "Balcony and living room",
		Priority:    2,
		Complete:    false,
	}
}

func (s *TodoServiceIntegrationTestSuite) TestCreateAssignsOwner() {
	todo, err := s.todoService.Create(s.owner, s.validInput())

	require.NoError(s.T(), err)
	assert.NotZero(s.T(), todo.ID)
	assert.Equal(s.T(), s.owner.ID, todo.OwnerID)
}

func (s *TodoServiceIntegrationTestSuite) TestGetIsOwnershipOpaque() {
	todo, err := s.todoService.Create(s.owner, s.validInput())
	require.NoError(s.T(), err)

	// The stranger gets the same answer as for an id that does not exist
	_, err = s.todoService.Get(s.stranger, todo.ID)
	assert.ErrorIs(s.T(), err, service.ErrTodoNotFound)

	_, err = s.todoService.Get(s.stranger, 99999)
	assert.ErrorIs(s.T(), err, service.ErrTodoNotFound)
}

func (s *TodoServiceIntegrationTestSuite) TestUpdateRejectsInvalidPriority() {
	todo, err := s.todoService.Create(s.owner, s.validInput())
	require.NoError(s.T(), err)

	in := s.validInput()
	in.Priority = 0
	_, err = s.todoService.Update(s.owner, todo.ID, in)
	assert.Error(s.T(), err)
	assert.NotErrorIs(s.T(), err, service.ErrTodoNotFound)
}

func (s *TodoServiceIntegrationTestSuite) TestDeleteTwiceFails() {
	todo, err := s.todoService.Create(s.owner, s.validInput())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.todoService.Delete(s.owner, todo.ID))
	assert.ErrorIs(s.T(), s.todoService.Delete(s.owner, todo.ID), service.ErrTodoNotFound)
}

func (s *TodoServiceIntegrationTestSuite) TestListAllRequiresAdmin() {
	_, err := s.todoService.ListAll(s.owner)
	assert.ErrorIs(s.T(), err, service.ErrAdminRequired)
}

func (s *TodoServiceIntegrationTestSuite) TestAdminSeesAndDeletesAcrossOwners() {
	todoA, err := s.todoService.Create(s.owner, s.validInput())
	require.NoError(s.T(), err)
	_, err = s.todoService.Create(s.stranger, s.validInput())
	require.NoError(s.T(), err)

	all, err := s.todoService.ListAll(s.adminUser)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)

	require.NoError(s.T(), s.todoService.AdminDelete(s.adminUser, todoA.ID))

	_, err = s.todoService.Get(s.owner, todoA.ID)
	assert.ErrorIs(s.T(), err, service.ErrTodoNotFound)
}

func (s *TodoServiceIntegrationTestSuite) TestAdminDeleteRequiresAdmin() {
	todo, err := s.todoService.Create(s.owner, s.validInput())
	require.NoError(s.T(), err)

	err = s.todoService.AdminDelete(s.stranger, todo.ID)
	assert.ErrorIs(s.T(), err, service.ErrAdminRequired)
}

func TestTodoServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceIntegrationTestSuite))
}
