package services

import (
	"context"
	"errors"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories"
	"docuport/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrUserNotFoundSvc    = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrOldPasswordWrong   = errors.New("old password is incorrect")
)

// UserService handles directory business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// SearchUsersInput represents directory search input. Empty criteria lists
// everyone; provided fields are prefix-matched and combined with AND.
type SearchUsersInput struct {
	Email  string
	Name   string
	Phone  string
	Page   int
	Limit  int
	Offset int
}

// SearchUsersOutput represents directory search output
type SearchUsersOutput struct {
	Users []*models.UserResponse `json:"users"`
	Total int64                  `json:"total"`
}

// UpdateUserInput represents a partial merge update. Nil fields are left
// untouched. Role is deliberately absent: roles are immutable after creation.
type UpdateUserInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Street         *string `json:"street"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	ZipCode        *string `json:"zip_code"`
	BankName       *string `json:"bank_name"`
	LastFourDigits *string `json:"last_four_digits"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// SearchUsers lists users matching the criteria
func (s *UserService) SearchUsers(ctx context.Context, input *SearchUsersInput) (*SearchUsersOutput, error) {
	criteria := repositories.UserSearchCriteria{
		Email: input.Email,
		Name:  input.Name,
		Phone: input.Phone,
	}

	users, total, err := s.userRepo.Search(ctx, criteria, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToResponse()
	}

	return &SearchUsersOutput{
		Users: userResponses,
		Total: total,
	}, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}

	return user.ToResponse(), nil
}

// UpdateUser applies a partial merge write and returns the single refreshed
// record. Callers needing a full listing request it separately.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		// Check if email already exists
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Street != nil {
		user.Street = *input.Street
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.ZipCode != nil {
		user.ZipCode = *input.ZipCode
	}
	if input.BankName != nil {
		user.BankName = *input.BankName
	}
	if input.LastFourDigits != nil {
		user.LastFourDigits = *input.LastFourDigits
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// GetProfile gets own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile updates own profile. Same merge semantics as UpdateUser.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateUserInput) (*models.UserResponse, error) {
	return s.UpdateUser(ctx, userID, input)
}

// ChangePassword changes user's password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFoundSvc
	}

	// Verify old password
	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	// Validate new password
	if !password.Validate(input.NewPassword) {
		return ErrWeakPassword
	}

	// Hash new password
	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
