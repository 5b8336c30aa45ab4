// File: internal/user/model.go
package user

import (
	"time"

	"farway_backend/internal/common"
)

// User represents a user profile document. The primary key is the opaque uid
// assigned by the identity provider at account creation; it never changes.
// uid, email and role are required after registration completes, everything
// else is optional and rendered as a placeholder by clients when absent.
type User struct {
	UID         string            `gorm:"type:varchar(128);primaryKey"`
	Email       string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role        string            `gorm:"type:varchar(20);not null;index"`
	FirstName   string            `gorm:"type:varchar(100)"`
	LastName    string            `gorm:"type:varchar(100)"`
	NationalID  string            `gorm:"type:varchar(50)"`
	Phone       string            `gorm:"type:varchar(30)"`
	BirthDate   string            `gorm:"type:varchar(20)"`
	Gender      string            `gorm:"type:varchar(20)"`
	GenderOther string            `gorm:"type:varchar(100)"`
	Description string            `gorm:"type:text"`
	Location    string            `gorm:"type:varchar(255)"`
	Languages   common.StringList `gorm:"type:text"`
	Interests   common.StringList `gorm:"type:text"`
	PhotoURL    string            `gorm:"type:text"`
	CreatedAt   time.Time         `gorm:"not null"`
	UpdatedAt   time.Time         `gorm:"not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// UpdateProfileRequest defines the structure for the profile edit screen.
// Languages and interests arrive as free text, comma separated, exactly as
// typed into the edit form.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"omitempty,max=100"`
	LastName    string `json:"last_name" binding:"omitempty,max=100"`
	NationalID  string `json:"national_id" binding:"omitempty,max=50"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	BirthDate   string `json:"birth_date" binding:"omitempty,max=20"`
	Gender      string `json:"gender" binding:"omitempty,max=20"`
	GenderOther string `json:"gender_other" binding:"omitempty,max=100"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"omitempty,max=255"`
	Languages   string `json:"languages"`
	Interests   string `json:"interests"`
}

// ProfileResponse defines the structure for profile data sent in API responses.
type ProfileResponse struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	NationalID  string    `json:"national_id,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	BirthDate   string    `json:"birth_date,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	GenderOther string    `json:"gender_other,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Languages   []string  `json:"languages,omitempty"`
	Interests   []string  `json:"interests,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
