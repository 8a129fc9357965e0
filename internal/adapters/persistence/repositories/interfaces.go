package repositories

import (
	"context"

	"docuport/internal/adapters/persistence/models"
)

// UserSearchCriteria holds optional directory search filters. Each provided
// field becomes an independent prefix condition; multiple fields combine with
// logical AND in a single query. Empty criteria means "list all".
type UserSearchCriteria struct {
	Email string
	Name  string
	Phone string
}

// IsEmpty reports whether no filter was provided
func (c UserSearchCriteria) IsEmpty() bool {
	return c.Email == "" && c.Name == "" && c.Phone == ""
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, criteria UserSearchCriteria, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// DocumentRepository defines document repository interface. Documents are
// append-only: no update or delete operations exist.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	List(ctx context.Context, offset, limit int) ([]*models.Document, int64, error)
	ListForRecipient(ctx context.Context, userID uint, offset, limit int) ([]*models.Document, int64, error)
	VisibleTo(ctx context.Context, docID, userID uint) (bool, error)
}
