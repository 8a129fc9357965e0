package services

import (
	"context"
	"errors"
	"testing"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories"
	"docuport/internal/adapters/persistence/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDashboardFixture() (*mocks.MockUserRepository, *mocks.MockDocumentRepository, *DashboardService) {
	userRepo := new(mocks.MockUserRepository)
	docRepo := new(mocks.MockDocumentRepository)

	userService := NewUserService(userRepo)
	docService := NewDocumentService(docRepo, userRepo, uploadConfig())

	return userRepo, docRepo, NewDashboardService(userService, docService)
}

func TestDashboardService_GetAdminOverview(t *testing.T) {
	t.Run("joins users and documents", func(t *testing.T) {
		userRepo, docRepo, svc := newDashboardFixture()

		userRepo.On("Search", mock.Anything, repositories.UserSearchCriteria{}, 0, 20).
			Return([]*models.User{{ID: 1, Name: "Jane"}}, int64(1), nil)
		docRepo.On("List", mock.Anything, 0, 20).
			Return([]*models.Document{{ID: 1, FileName: "a.pdf"}}, int64(1), nil)

		overview, err := svc.GetAdminOverview(context.Background(), 0, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), overview.TotalUsers)
		assert.Equal(t, int64(1), overview.TotalDocuments)
		assert.Equal(t, "Jane", overview.Users[0].Name)
	})

	t.Run("fails fast when one fetch errors", func(t *testing.T) {
		userRepo, docRepo, svc := newDashboardFixture()

		userRepo.On("Search", mock.Anything, repositories.UserSearchCriteria{}, 0, 20).
			Return([]*models.User{{ID: 1}}, int64(1), nil).Maybe()
		docRepo.On("List", mock.Anything, 0, 20).
			Return(nil, int64(0), errors.New("db down"))

		overview, err := svc.GetAdminOverview(context.Background(), 0, 20)
		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}

func TestDashboardService_GetUserOverview(t *testing.T) {
	t.Run("joins profile and visible documents", func(t *testing.T) {
		userRepo, docRepo, svc := newDashboardFixture()

		userRepo.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Name: "Jane"}, nil)
		docRepo.On("ListForRecipient", mock.Anything, uint(7), 0, 20).
			Return([]*models.Document{{ID: 2, Broadcast: true}}, int64(1), nil)

		overview, err := svc.GetUserOverview(context.Background(), 7, 0, 20)
		assert.NoError(t, err)
		assert.Equal(t, "Jane", overview.Profile.Name)
		assert.Equal(t, int64(1), overview.TotalDocuments)
	})

	t.Run("fails fast when the profile fetch errors", func(t *testing.T) {
		userRepo, docRepo, svc := newDashboardFixture()

		userRepo.On("GetByID", mock.Anything, uint(7)).
			Return(nil, errors.New("db down"))
		docRepo.On("ListForRecipient", mock.Anything, uint(7), 0, 20).
			Return([]*models.Document{}, int64(0), nil).Maybe()

		overview, err := svc.GetUserOverview(context.Background(), 7, 0, 20)
		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}
