package dto

import (
	"github.com/google/uuid"

	"templeku_backend/internals/features/temples/events/model"
)

// Request untuk mendaftar event
type UserEventRegistrationRequest struct {
	EventID uuid.UUID `json:"user_event_registration_event_id" validate:"required"`
}

// Response pendaftaran event
type UserEventRegistrationResponse struct {
	ID         uuid.UUID `json:"user_event_registration_id"`
	EventID    uuid.UUID `json:"user_event_registration_event_id"`
	UserID     uuid.UUID `json:"user_event_registration_user_id"`
	Status     string    `json:"user_event_registration_status"`
	Registered string    `json:"user_event_registration_registered_at"`
}

func ToUserEventRegistrationResponse(m *model.UserEventRegistrationModel) *UserEventRegistrationResponse {
	return &UserEventRegistrationResponse{
		ID:         m.UserEventRegistrationID,
		EventID:    m.UserEventRegistrationEventID,
		UserID:     m.UserEventRegistrationUserID,
		Status:     m.UserEventRegistrationStatus,
		Registered: m.UserEventRegistrationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserEventRegistrationResponseList(models []model.UserEventRegistrationModel) []UserEventRegistrationResponse {
	out := make([]UserEventRegistrationResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToUserEventRegistrationResponse(&models[i]))
	}
	return out
}
