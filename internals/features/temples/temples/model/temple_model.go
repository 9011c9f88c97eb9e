package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TempleModel struct {
	TempleID       uuid.UUID `gorm:"column:temple_id;type:uuid;default:gen_random_uuid();primaryKey" json:"temple_id"`
	TempleName     string    `gorm:"column:temple_name;type:varchar(100);not null" json:"temple_name"`
	TempleSlug     string    `gorm:"column:temple_slug;type:varchar(100);uniqueIndex;not null" json:"temple_slug"`
	TempleLocation string    `gorm:"column:temple_location;type:text;not null" json:"temple_location"`

	// Nullable: update boleh set NULL secara eksplisit
	TempleDescription *string `gorm:"column:temple_description;type:text" json:"temple_description,omitempty"`

	TempleCreatedAt time.Time      `gorm:"column:temple_created_at;type:timestamptz;autoCreateTime" json:"temple_created_at"`
	TempleUpdatedAt time.Time      `gorm:"column:temple_updated_at;type:timestamptz;autoUpdateTime" json:"temple_updated_at"`
	TempleDeletedAt gorm.DeletedAt `gorm:"column:temple_deleted_at;type:timestamptz;index" json:"temple_deleted_at,omitempty"`
}

func (TempleModel) TableName() string {
	return "temples"
}
