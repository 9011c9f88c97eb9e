package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventSlug        string    `gorm:"column:event_slug;type:varchar(100);not null" json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(255)" json:"event_location"`

	// Denormalized: dipakai untuk konsistensi kepemilikan saat read —
	// event yang temple_id-nya tidak cocok dengan pura yang diminta
	// diperlakukan sebagai not-found.
	EventTempleID uuid.UUID `gorm:"column:event_temple_id;type:uuid;not null;index:idx_events_temple_id" json:"event_temple_id"`

	EventStartsAt *time.Time `gorm:"column:event_starts_at;type:timestamptz" json:"event_starts_at,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`

	// NOTE: unik slug per pura (case-insensitive) dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_events_slug_per_temple_lower ON events (event_temple_id, LOWER(event_slug));
	//   Tidak bisa diekspresikan langsung via tag GORM.
}

func (EventModel) TableName() string {
	return "events"
}
