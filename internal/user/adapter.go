// File: internal/user/adapter.go
package user

import (
	"farway_backend/internal/common"
	"farway_backend/internal/shared"
)

// DBToShared converts a GORM User model to the cross-package profile view.
func DBToShared(u *User) *shared.UserProfile {
	return &shared.UserProfile{
		UID:         u.UID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		NationalID:  u.NationalID,
		Phone:       u.Phone,
		BirthDate:   u.BirthDate,
		Gender:      u.Gender,
		GenderOther: u.GenderOther,
		Description: u.Description,
		Location:    u.Location,
		Languages:   append([]string(nil), u.Languages...),
		Interests:   append([]string(nil), u.Interests...),
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
	}
}

// SharedToDB converts the cross-package profile view to a GORM User model.
func SharedToDB(p *shared.UserProfile) *User {
	return &User{
		UID:         p.UID,
		Email:       p.Email,
		Role:        p.Role,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		NationalID:  p.NationalID,
		Phone:       p.Phone,
		BirthDate:   p.BirthDate,
		Gender:      p.Gender,
		GenderOther: p.GenderOther,
		Description: p.Description,
		Location:    p.Location,
		Languages:   common.StringList(append([]string(nil), p.Languages...)),
		Interests:   common.StringList(append([]string(nil), p.Interests...)),
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProfileResponse converts a profile to its API response DTO.
func ToProfileResponse(p *shared.UserProfile) ProfileResponse {
	return ProfileResponse{
		UID:         p.UID,
		Email:       p.Email,
		Role:        p.Role,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		NationalID:  p.NationalID,
		Phone:       p.Phone,
		BirthDate:   p.BirthDate,
		Gender:      p.Gender,
		GenderOther: p.GenderOther,
		Description: p.Description,
		Location:    p.Location,
		Languages:   p.Languages,
		Interests:   p.Interests,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
	}
}
