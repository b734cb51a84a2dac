package dto

import (
	"time"

	"github.com/guttosm/hogpulse/internal/domain/models"
)

// ProfileResponse is the public shape of a profile.
type ProfileResponse struct {
	ID          string    `json:"id"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	DisplayName *string   `json:"displayName"`
	Email       string    `json:"email" example:"juan@example.com"`
	Phone       *string   `json:"phone"`
	Region      *string   `json:"region"`
	City        *string   `json:"city"`
	UserRoles   []string  `json:"userRoles" example:"hog_raiser"`
	Provider    *string   `json:"provider" example:"google"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpdateProfileRequest is the body of PATCH /api/v1/users/profile.
// Every field is optional; omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName   *string  `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string  `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	DisplayName *string  `json:"displayName,omitempty" validate:"omitempty,max=100"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,max=30"`
	Region      *string  `json:"region,omitempty" validate:"omitempty,max=100"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	UserRoles   []string `json:"userRoles,omitempty" validate:"omitempty,dive,oneof=hog_raiser midman trader buyer"`
}

// Patch converts the request into a storage patch.
func (r UpdateProfileRequest) Patch() models.ProfilePatch {
	return models.ProfilePatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DisplayName: r.DisplayName,
		Email:       r.Email,
		Phone:       r.Phone,
		Region:      r.Region,
		City:        r.City,
		UserRoles:   r.UserRoles,
	}
}

// UpdateProfileResponse wraps the updated profile.
type UpdateProfileResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Profile updated successfully"`
	User    ProfileResponse `json:"user"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total int64 `json:"total" example:"42"`
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"20"`
}

// SubmissionsResponse is returned by GET /api/v1/users/submissions.
type SubmissionsResponse struct {
	Submissions []PriceObservationDTO `json:"submissions"`
	Pagination  Pagination            `json:"pagination"`
}

// FromProfile maps a stored profile to its public shape.
func FromProfile(p models.Profile) ProfileResponse {
	roles := []string(p.UserRoles)
	if roles == nil {
		roles = []string{}
	}
	return ProfileResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Phone:       p.Phone,
		Region:      p.Region,
		City:        p.City,
		UserRoles:   roles,
		Provider:    p.Provider,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromObservations maps a page of rows; the result is never nil.
func FromObservations(rows []models.PriceObservation) []PriceObservationDTO {
	out := make([]PriceObservationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromObservation(r))
	}
	return out
}
