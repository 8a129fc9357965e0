package services

import (
	"context"

	"docuport/internal/adapters/persistence/models"

	"golang.org/x/sync/errgroup"
)

// DashboardService composes role-specific overview payloads
type DashboardService struct {
	userService *UserService
	docService  *DocumentService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(userService *UserService, docService *DocumentService) *DashboardService {
	return &DashboardService{
		userService: userService,
		docService:  docService,
	}
}

// AdminOverview represents the admin dashboard payload
type AdminOverview struct {
	Users          []*models.UserResponse     `json:"users"`
	TotalUsers     int64                      `json:"total_users"`
	Documents      []*models.DocumentResponse `json:"documents"`
	TotalDocuments int64                      `json:"total_documents"`
}

// UserOverview represents the user dashboard payload
type UserOverview struct {
	Profile        *models.UserResponse       `json:"profile"`
	Documents      []*models.DocumentResponse `json:"documents"`
	TotalDocuments int64                      `json:"total_documents"`
}

// GetAdminOverview loads the directory listing and the document listing
// concurrently and joins them fail-fast: if either fetch fails, the other is
// cancelled and neither result is applied.
func (s *DashboardService) GetAdminOverview(ctx context.Context, offset, limit int) (*AdminOverview, error) {
	var (
		users *SearchUsersOutput
		docs  *ListDocumentsOutput
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.userService.SearchUsers(gctx, &SearchUsersInput{Offset: offset, Limit: limit})
		return err
	})

	g.Go(func() error {
		var err error
		docs, err = s.docService.ListAll(gctx, &ListDocumentsInput{Offset: offset, Limit: limit})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &AdminOverview{
		Users:          users.Users,
		TotalUsers:     users.Total,
		Documents:      docs.Documents,
		TotalDocuments: docs.Total,
	}, nil
}

// GetUserOverview loads the user's own profile and their visible documents
func (s *DashboardService) GetUserOverview(ctx context.Context, userID uint, offset, limit int) (*UserOverview, error) {
	var (
		profile *models.UserResponse
		docs    *ListDocumentsOutput
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profile, err = s.userService.GetProfile(gctx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		docs, err = s.docService.ListForUser(gctx, userID, &ListDocumentsInput{Offset: offset, Limit: limit})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &UserOverview{
		Profile:        profile,
		Documents:      docs.Documents,
		TotalDocuments: docs.Total,
	}, nil
}
