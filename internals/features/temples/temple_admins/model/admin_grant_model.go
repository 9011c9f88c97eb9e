package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminGrantModel adalah record hak admin per user:
// - grant_is_super_admin: akses tak terbatas ke semua pura
// - grant_is_admin + grant_temple_id: admin ter-scope ke satu pura
// Record absen berarti tidak ada hak sama sekali.
type AdminGrantModel struct {
	GrantUserID uuid.UUID `gorm:"column:grant_user_id;type:uuid;primaryKey" json:"grant_user_id"`

	GrantIsAdmin      bool       `gorm:"column:grant_is_admin;not null;default:false" json:"grant_is_admin"`
	GrantIsSuperAdmin bool       `gorm:"column:grant_is_super_admin;not null;default:false" json:"grant_is_super_admin"`
	GrantTempleID     *uuid.UUID `gorm:"column:grant_temple_id;type:uuid;index" json:"grant_temple_id,omitempty"`

	GrantCreatedAt time.Time `gorm:"column:grant_created_at;autoCreateTime" json:"grant_created_at"`
	GrantUpdatedAt time.Time `gorm:"column:grant_updated_at;autoUpdateTime" json:"grant_updated_at"`
}

func (AdminGrantModel) TableName() string {
	return "temple_admin_grants"
}
