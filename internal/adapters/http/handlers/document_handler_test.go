package handlers

import (
	"net/http/httptest"
	"testing"

	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories/mocks"
	"docuport/internal/config"
	"docuport/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParseRecipientIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []uint
		wantErr bool
	}{
		{"empty means broadcast", "", nil, false},
		{"single id", "7", []uint{7}, false},
		{"multiple ids", "7,8,9", []uint{7, 8, 9}, false},
		{"spaces tolerated", " 7 , 8 ", []uint{7, 8}, false},
		{"trailing comma tolerated", "7,8,", []uint{7, 8}, false},
		{"garbage rejected", "7,abc", nil, true},
		{"negative rejected", "-1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecipientIDs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeAuth injects the locals the auth middleware would set
func fakeAuth(userID uint, name, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("name", name)
		c.Locals("role", role)
		return c.Next()
	}
}

func newDocumentApp(docRepo *mocks.MockDocumentRepository, userID uint, role string) *fiber.App {
	userRepo := new(mocks.MockUserRepository)
	cfg := &config.Config{Upload: config.UploadConfig{MaxBytes: 1024}}
	svc := services.NewDocumentService(docRepo, userRepo, cfg)
	handler := NewDocumentHandler(svc)

	app := fiber.New()
	app.Use(fakeAuth(userID, "Tester", role))
	app.Get("/documents/my", handler.ListMine)
	app.Get("/documents/:id", handler.Get)
	return app
}

func TestDocumentHandler_Get_Forbidden(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepository)
	docRepo.On("VisibleTo", mock.Anything, uint(1), uint(7)).Return(false, nil)

	app := newDocumentApp(docRepo, 7, "user")

	req := httptest.NewRequest("GET", "/documents/1", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDocumentHandler_Get_AdminBypassesVisibility(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepository)
	docRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Document{
		ID:       1,
		FileName: "statement.pdf",
		Data:     "data:application/pdf;base64,JVBERg==",
	}, nil)

	app := newDocumentApp(docRepo, 2, "admin")

	req := httptest.NewRequest("GET", "/documents/1", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	docRepo.AssertNotCalled(t, "VisibleTo", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_ListMine(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepository)
	docRepo.On("ListForRecipient", mock.Anything, uint(7), 0, 20).
		Return([]*models.Document{{ID: 2, FileName: "everyone.txt", Broadcast: true}}, int64(1), nil)

	app := newDocumentApp(docRepo, 7, "user")

	req := httptest.NewRequest("GET", "/documents/my", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	docRepo.AssertExpectations(t)
}

func TestDocumentHandler_Get_BadID(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepository)
	app := newDocumentApp(docRepo, 7, "user")

	req := httptest.NewRequest("GET", "/documents/abc", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
