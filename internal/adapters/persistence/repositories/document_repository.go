package repositories

import (
	"context"

	"docuport/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// listColumns excludes the inline data column so listings stay cheap even
// though file bytes live in the row.
var listColumns = []string{"id", "file_name", "content_type", "uploaded_by", "broadcast", "created_at"}

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create creates a document record together with its recipient rows
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetByID gets a document with its recipient rows and inline data
func (r *documentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).
		Preload("Recipients").
		Where("id = ?", id).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List lists all documents with pagination (metadata only)
func (r *documentRepository) List(ctx context.Context, offset, limit int) ([]*models.Document, int64, error) {
	var docs []*models.Document
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Document{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Select(listColumns).
		Preload("Recipients").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// ListForRecipient lists documents visible to one user: those with a recipient
// row for the user plus all broadcast documents. One indexed query, no
// client-side scan over the collection.
func (r *documentRepository) ListForRecipient(ctx context.Context, userID uint, offset, limit int) ([]*models.Document, int64, error) {
	var docs []*models.Document
	var total int64

	visible := r.visibleQuery(ctx, userID)

	if err := visible.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := visible.
		Select(listColumns).
		Preload("Recipients").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// VisibleTo checks whether a single document is visible to the user
func (r *documentRepository) VisibleTo(ctx context.Context, docID, userID uint) (bool, error) {
	var count int64
	err := r.visibleQuery(ctx, userID).
		Where("id = ?", docID).
		Count(&count).Error
	return count > 0, err
}

// visibleQuery builds the recipient-or-broadcast visibility condition
func (r *documentRepository) visibleQuery(ctx context.Context, userID uint) *gorm.DB {
	recipientDocs := r.db.
		Table("document_recipients").
		Select("document_id").
		Where("user_id = ?", userID)

	return r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("broadcast = ? OR id IN (?)", true, recipientDocs)
}
