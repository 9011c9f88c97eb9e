package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/temples/events/model"
	helper "templeku_backend/internals/helpers"
)

// 🔹 Request untuk membuat event
type EventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,min=3,max=255"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventTempleID    uuid.UUID  `json:"event_temple_id" validate:"required"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
}

// 🔹 Request update event (partial)
type EventUpdateRequest struct {
	EventTitle       *string    `json:"event_title"`
	EventDescription *string    `json:"event_description"`
	EventLocation    *string    `json:"event_location"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
}

// 🔹 Response event
type EventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventSlug        string     `json:"event_slug"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventTempleID    uuid.UUID  `json:"event_temple_id"`
	EventStartsAt    *time.Time `json:"event_starts_at,omitempty"`
	EventCreatedAt   string     `json:"event_created_at"`
}

// 🔄 Konversi dari request → model
func (r *EventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventTitle:       r.EventTitle,
		EventSlug:        helper.GenerateSlug(r.EventTitle),
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventTempleID:    r.EventTempleID,
		EventStartsAt:    r.EventStartsAt,
	}
}

// 🔄 Konversi dari model → response
func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventTempleID:    m.EventTempleID,
		EventStartsAt:    m.EventStartsAt,
		EventCreatedAt:   m.EventCreatedAt.Format(time.RFC3339),
	}
}

// 🔄 Konversi list model → list response
func ToEventResponseList(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToEventResponse(&models[i]))
	}
	return out
}
