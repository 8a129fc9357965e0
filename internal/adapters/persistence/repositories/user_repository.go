package repositories

import (
	"context"

	"docuport/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email. Email carries a unique index, so at most
// one record can match.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves a user record
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Search lists users matching the criteria with pagination. Every provided
// field is applied as a prefix condition on its own indexed column and the
// conditions AND together in one query, so "list all" and "search" share the
// same shape.
func (r *userRepository) Search(ctx context.Context, criteria UserSearchCriteria, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if criteria.Email != "" {
		query = query.Where("email LIKE ?", criteria.Email+"%")
	}
	if criteria.Name != "" {
		query = query.Where("name LIKE ?", criteria.Name+"%")
	}
	if criteria.Phone != "" {
		query = query.Where("phone LIKE ?", criteria.Phone+"%")
	}

	// Count total matches
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get matching users with pagination
	if err := query.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ExistsByEmail checks if email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
