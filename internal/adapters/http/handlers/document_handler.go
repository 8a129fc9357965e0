package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/core/services"
	"docuport/internal/pkg/pagination"
	"docuport/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document distribution endpoints
type DocumentHandler struct {
	docService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
	}
}

// Upload handles a document upload (Admin only). The file arrives as a
// multipart part named "file"; "recipient_ids" is a comma separated list of
// user IDs. An empty list broadcasts the document to every user.
// @Summary Upload document
// @Description Upload a document for selected recipients or everyone (Admin only)
// @Tags Documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file (PDF, Word, or plain text)"
// @Param recipient_ids formData string false "Comma separated recipient user IDs (empty = all users)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 413 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	recipientIDs, err := parseRecipientIDs(c.FormValue("recipient_ids"))
	if err != nil {
		return response.BadRequest(c, "Invalid recipient_ids")
	}

	uploaderName, _ := c.Locals("name").(string)

	input := &services.UploadInput{
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      content,
		UploadedBy:   uploaderName,
		RecipientIDs: recipientIDs,
	}

	doc, err := h.docService.Upload(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileRequired):
			return response.BadRequest(c, "File is required")
		case errors.Is(err, services.ErrFileTooLarge):
			return response.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds the size limit")
		case errors.Is(err, services.ErrFileTypeNotAllowed):
			return response.UnprocessableEntity(c, "File type not allowed")
		case errors.Is(err, services.ErrRecipientNotFound):
			return response.NotFound(c, "Recipient not found")
		default:
			return response.InternalServerError(c, "Failed to upload document")
		}
	}

	return response.Created(c, "Document uploaded successfully", fiber.Map{
		"document": doc,
	})
}

// ListAll handles listing every document (Admin only)
// @Summary List all documents
// @Description Get a paginated list of all documents (Admin only)
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /documents [get]
func (h *DocumentHandler) ListAll(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.docService.ListAll(c.Context(), &services.ListDocumentsInput{
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list documents")
	}

	return response.Success(c, "Documents retrieved successfully",
		pagination.NewResponse(result.Documents, params, result.Total))
}

// ListMine handles listing documents visible to the current user, both
// explicitly addressed and broadcast ones
// @Summary List my documents
// @Description Get documents shared with the current user, including broadcasts
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /documents/my [get]
func (h *DocumentHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	result, err := h.docService.ListForUser(c.Context(), userID, &services.ListDocumentsInput{
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list documents")
	}

	return response.Success(c, "Documents retrieved successfully",
		pagination.NewResponse(result.Documents, params, result.Total))
}

// Get handles fetching a single document with its inline content. Non-admin
// users can only fetch documents visible to them.
// @Summary Get document by ID
// @Description Get a single document including its content
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	// The visibility check only needs the requester's ID and role
	requester := &models.User{ID: userID, Role: role}

	doc, err := h.docService.Get(c.Context(), uint(id), requester)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDocumentForbidden):
			return response.Forbidden(c, "You don't have access to this document")
		case errors.Is(err, services.ErrDocumentNotFound):
			return response.NotFound(c, "Document not found")
		default:
			return response.InternalServerError(c, "Failed to get document")
		}
	}

	return response.Success(c, "Document retrieved successfully", fiber.Map{
		"document": doc,
	})
}

// parseRecipientIDs parses a comma separated ID list. Empty input yields an
// empty slice, which means broadcast.
func parseRecipientIDs(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
