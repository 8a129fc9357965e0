package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories"
	"docuport/internal/config"
	"docuport/internal/pkg/datauri"

	"gorm.io/gorm"
)

// Document errors
var (
	ErrFileRequired       = errors.New("file is required")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrDocumentForbidden  = errors.New("document not visible to this user")
	ErrRecipientNotFound  = errors.New("recipient not found")
)

// allowedContentTypes is the upload allow-list: PDF, legacy and OOXML Word,
// and plain text. Anything else is rejected before encoding.
var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// DocumentService handles document distribution business logic
type DocumentService struct {
	docRepo  repositories.DocumentRepository
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	userRepo repositories.UserRepository,
	cfg *config.Config,
) *DocumentService {
	return &DocumentService{
		docRepo:  docRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// UploadInput represents a document upload. An empty RecipientIDs slice means
// broadcast: the record is visible to every user.
type UploadInput struct {
	FileName     string
	ContentType  string
	Content      []byte
	UploadedBy   string
	RecipientIDs []uint
}

// ListDocumentsInput represents document listing input
type ListDocumentsInput struct {
	Offset int
	Limit  int
}

// ListDocumentsOutput represents document listing output
type ListDocumentsOutput struct {
	Documents []*models.DocumentResponse `json:"documents"`
	Total     int64                      `json:"total"`
}

// Upload validates, encodes, and stores one document, returning the single
// created record (metadata only).
func (s *DocumentService) Upload(ctx context.Context, input *UploadInput) (*models.DocumentResponse, error) {
	// 1. Validate file presence and size
	if len(input.Content) == 0 {
		return nil, ErrFileRequired
	}
	if s.cfg.Upload.MaxBytes > 0 && int64(len(input.Content)) > s.cfg.Upload.MaxBytes {
		return nil, ErrFileTooLarge
	}

	// 2. Validate content type before encoding
	contentType := normalizeContentType(input.ContentType)
	if !allowedContentTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, contentType)
	}

	// 3. Resolve recipients, snapshotting names at upload time
	recipients := make([]models.DocumentRecipient, 0, len(input.RecipientIDs))
	for _, id := range input.RecipientIDs {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrRecipientNotFound, id)
			}
			return nil, err
		}
		recipients = append(recipients, models.DocumentRecipient{
			UserID: user.ID,
			Name:   user.Name,
		})
	}

	// 4. Build the record; no recipients means broadcast to everyone
	doc := &models.Document{
		FileName:    input.FileName,
		ContentType: contentType,
		Data:        datauri.Encode(contentType, input.Content),
		UploadedBy:  input.UploadedBy,
		Broadcast:   len(recipients) == 0,
		Recipients:  recipients,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	log.Printf("✅ Document uploaded: %s by %s (recipients: %d, broadcast: %t)",
		doc.FileName, doc.UploadedBy, len(recipients), doc.Broadcast)

	return doc.ToResponse(), nil
}

// ListAll lists every document (admin view)
func (s *DocumentService) ListAll(ctx context.Context, input *ListDocumentsInput) (*ListDocumentsOutput, error) {
	docs, total, err := s.docRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}
	return buildListOutput(docs, total), nil
}

// ListForUser lists documents visible to one user: explicitly addressed ones
// plus broadcasts. Broadcast inclusion is a deliberate policy: a document
// shared with "everyone" is visible in every recipient-scoped listing.
func (s *DocumentService) ListForUser(ctx context.Context, userID uint, input *ListDocumentsInput) (*ListDocumentsOutput, error) {
	docs, total, err := s.docRepo.ListForRecipient(ctx, userID, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}
	return buildListOutput(docs, total), nil
}

// Get fetches a single document including its inline content. Non-admin
// callers can only fetch documents visible to them.
func (s *DocumentService) Get(ctx context.Context, docID uint, requester *models.User) (*models.DocumentResponse, error) {
	if !requester.IsAdmin() {
		visible, err := s.docRepo.VisibleTo(ctx, docID, requester.ID)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, ErrDocumentForbidden
		}
	}

	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return doc.ToResponseWithData(), nil
}

// buildListOutput converts records into metadata-only responses
func buildListOutput(docs []*models.Document, total int64) *ListDocumentsOutput {
	responses := make([]*models.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = doc.ToResponse()
	}
	return &ListDocumentsOutput{
		Documents: responses,
		Total:     total,
	}
}

// normalizeContentType strips parameters like "; charset=utf-8" that browsers
// append to multipart part headers
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
