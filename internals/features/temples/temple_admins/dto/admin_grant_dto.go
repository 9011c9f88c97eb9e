package dto

import (
	"github.com/google/uuid"

	"templeku_backend/internals/features/temples/temple_admins/model"
)

// Request grant admin ter-scope pura
type AdminGrantRequest struct {
	GrantUserID   uuid.UUID `json:"grant_user_id" validate:"required"`
	GrantTempleID uuid.UUID `json:"grant_temple_id" validate:"required"`
}

// Response grant
type AdminGrantResponse struct {
	GrantUserID       uuid.UUID  `json:"grant_user_id"`
	GrantIsAdmin      bool       `json:"grant_is_admin"`
	GrantIsSuperAdmin bool       `json:"grant_is_super_admin"`
	GrantTempleID     *uuid.UUID `json:"grant_temple_id,omitempty"`
	GrantCreatedAt    string     `json:"grant_created_at"`
}

func ToAdminGrantResponse(m *model.AdminGrantModel) *AdminGrantResponse {
	return &AdminGrantResponse{
		GrantUserID:       m.GrantUserID,
		GrantIsAdmin:      m.GrantIsAdmin,
		GrantIsSuperAdmin: m.GrantIsSuperAdmin,
		GrantTempleID:     m.GrantTempleID,
		GrantCreatedAt:    m.GrantCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToAdminGrantResponseList(models []model.AdminGrantModel) []AdminGrantResponse {
	out := make([]AdminGrantResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAdminGrantResponse(&models[i]))
	}
	return out
}
