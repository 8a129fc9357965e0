package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ============================================================
// Auth & Directory Tables
// ============================================================

// User represents users table
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:20;default:'user'" json:"role"`
	Phone    string `gorm:"size:20;index" json:"phone,omitempty"`

	// Optional postal address
	Street  string `gorm:"size:200" json:"street,omitempty"`
	City    string `gorm:"size:100" json:"city,omitempty"`
	State   string `gorm:"size:100" json:"state,omitempty"`
	ZipCode string `gorm:"size:20" json:"zip_code,omitempty"`

	// Optional partial bank reference (never the full account number)
	BankName       string `gorm:"size:100" json:"bank_name,omitempty"`
	LastFourDigits string `gorm:"size:4" json:"last_four_digits,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse DTO
type UserResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	Street         string    `json:"street,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	ZipCode        string    `json:"zip_code,omitempty"`
	BankName       string    `json:"bank_name,omitempty"`
	LastFourDigits string    `json:"last_four_digits,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Street:         u.Street,
		City:           u.City,
		State:          u.State,
		ZipCode:        u.ZipCode,
		BankName:       u.BankName,
		LastFourDigits: u.LastFourDigits,
		CreatedAt:      u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Document Tables
// ============================================================

// Document represents documents table. File bytes are stored inline as a
// MIME-tagged base64 data URI rather than in a separate blob store. Records
// are append-only: never mutated or deleted by the application.
type Document struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FileName    string `gorm:"size:255;not null" json:"file_name"`
	ContentType string `gorm:"size:100;not null" json:"content_type"`
	Data        string `gorm:"type:longtext;not null" json:"-"`
	UploadedBy  string `gorm:"size:100;not null" json:"uploaded_by"`
	// Broadcast marks the document visible to every user. An empty recipient
	// selection at upload time sets this instead of writing a sentinel
	// recipient row.
	Broadcast bool      `gorm:"not null;default:false;index" json:"broadcast"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	Recipients []DocumentRecipient `gorm:"foreignKey:DocumentID" json:"recipients,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentRecipient represents document_recipients table. One row per
// explicitly selected recipient; the name is a snapshot taken at upload time.
type DocumentRecipient struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	DocumentID uint   `gorm:"index;not null" json:"-"`
	UserID     uint   `gorm:"index;not null" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
}

func (DocumentRecipient) TableName() string {
	return "document_recipients"
}

// DocumentResponse DTO. Data is omitted from listings and only populated for
// single-document fetches to keep list payloads small.
type DocumentResponse struct {
	ID          uint                `json:"id"`
	FileName    string              `json:"file_name"`
	ContentType string              `json:"content_type"`
	UploadedBy  string              `json:"uploaded_by"`
	UploadedAt  time.Time           `json:"uploaded_at"`
	Broadcast   bool                `json:"broadcast"`
	Recipients  []DocumentRecipient `json:"recipients"`
	Data        string              `json:"data,omitempty"`
}

func (d *Document) ToResponse() *DocumentResponse {
	recipients := d.Recipients
	if recipients == nil {
		recipients = []DocumentRecipient{}
	}
	return &DocumentResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		UploadedBy:  d.UploadedBy,
		UploadedAt:  d.CreatedAt,
		Broadcast:   d.Broadcast,
		Recipients:  recipients,
	}
}

// ToResponseWithData includes the inline file content
func (d *Document) ToResponseWithData() *DocumentResponse {
	resp := d.ToResponse()
	resp.Data = d.Data
	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates/updates tables for all application models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Document{},
		&DocumentRecipient{},
	)
}
