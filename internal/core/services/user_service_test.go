package services

import (
	"context"
	"testing"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories"
	"docuport/internal/adapters/persistence/repositories/mocks"
	"docuport/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUserService_SearchUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("passes criteria through unchanged", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		expected := repositories.UserSearchCriteria{
			Email: "jane",
			Name:  "Ja",
			Phone: "555",
		}
		userRepo.On("Search", ctx, expected, 20, 10).
			Return([]*models.User{{ID: 1, Name: "Jane"}}, int64(1), nil)

		result, err := svc.SearchUsers(ctx, &SearchUsersInput{
			Email:  "jane",
			Name:   "Ja",
			Phone:  "555",
			Offset: 20,
			Limit:  10,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		assert.Len(t, result.Users, 1)
		assert.Equal(t, "Jane", result.Users[0].Name)
	})

	t.Run("empty criteria lists everyone", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("Search", ctx, repositories.UserSearchCriteria{}, 0, 20).
			Return([]*models.User{{ID: 1}, {ID: 2}}, int64(2), nil)

		result, err := svc.SearchUsers(ctx, &SearchUsersInput{Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	existing := func() *models.User {
		return &models.User{
			ID:    3,
			Name:  "Old Name",
			Email: "old@example.com",
			Phone: "555-0100",
			City:  "Springfield",
		}
	}

	strPtr := func(s string) *string { return &s }

	t.Run("merges only provided fields and returns the single record", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			// Name changed; untouched fields survive the merge
			return u.Name == "New Name" &&
				u.Email == "old@example.com" &&
				u.Phone == "555-0100" &&
				u.City == "Springfield"
		})).Return(nil)

		result, err := svc.UpdateUser(ctx, 3, &UpdateUserInput{Name: strPtr("New Name")})
		assert.NoError(t, err)
		assert.Equal(t, "New Name", result.Name)
		assert.Equal(t, "old@example.com", result.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects email collision", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil)
		userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		_, err := svc.UpdateUser(ctx, 3, &UpdateUserInput{Email: strPtr("taken@example.com")})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("same email skips the uniqueness check", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil)
		userRepo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := svc.UpdateUser(ctx, 3, &UpdateUserInput{Email: strPtr("old@example.com")})
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateUser(ctx, 99, &UpdateUserInput{Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrUserNotFoundSvc)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	hashed, _ := password.Hash("old-password")

	t.Run("verifies old password before updating", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(&models.User{ID: 3, Password: hashed}, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			return password.Verify("new-password-1", u.Password)
		})).Return(nil)

		err := svc.ChangePassword(ctx, 3, &ChangePasswordInput{
			OldPassword: "old-password",
			NewPassword: "new-password-1",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(&models.User{ID: 3, Password: hashed}, nil)

		err := svc.ChangePassword(ctx, 3, &ChangePasswordInput{
			OldPassword: "wrong",
			NewPassword: "new-password-1",
		})
		assert.ErrorIs(t, err, ErrOldPasswordWrong)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects weak new password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("GetByID", ctx, uint(3)).Return(&models.User{ID: 3, Password: hashed}, nil)

		err := svc.ChangePassword(ctx, 3, &ChangePasswordInput{
			OldPassword: "old-password",
			NewPassword: "short",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
