package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/temples/temples/model"
)

// 🔹 Request untuk membuat pura
type TempleCreateRequest struct {
	TempleName        string  `json:"temple_name" validate:"required,min=3,max=100"`
	TempleLocation    string  `json:"temple_location" validate:"required"`
	TempleDescription *string `json:"temple_description"`
}

// 🔹 Request untuk update pura (partial / merge semantics).
// Field nil == tidak dikirim == tidak diubah. Khusus temple_description,
// "dikirim tapi null" dibedakan lewat raw body di controller.
type TempleUpdateRequest struct {
	TempleID          string  `json:"temple_id" validate:"required"`
	TempleName        *string `json:"temple_name"`
	TempleLocation    *string `json:"temple_location"`
	TempleDescription *string `json:"temple_description"`
}

// 🔹 Response pura
type TempleResponse struct {
	TempleID          uuid.UUID `json:"temple_id"`
	TempleName        string    `json:"temple_name"`
	TempleSlug        string    `json:"temple_slug"`
	TempleLocation    string    `json:"temple_location"`
	TempleDescription *string   `json:"temple_description"`
	TempleCreatedAt   string    `json:"temple_created_at"`
	TempleUpdatedAt   string    `json:"temple_updated_at"`
}

// 🔄 Konversi dari model → response
func FromModelTemple(m *model.TempleModel) *TempleResponse {
	return &TempleResponse{
		TempleID:          m.TempleID,
		TempleName:        m.TempleName,
		TempleSlug:        m.TempleSlug,
		TempleLocation:    m.TempleLocation,
		TempleDescription: m.TempleDescription,
		TempleCreatedAt:   m.TempleCreatedAt.Format(time.RFC3339),
		TempleUpdatedAt:   m.TempleUpdatedAt.Format(time.RFC3339),
	}
}

// 🔄 Konversi list model → list response
func FromModelTempleList(models []model.TempleModel) []TempleResponse {
	out := make([]TempleResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromModelTemple(&models[i]))
	}
	return out
}
