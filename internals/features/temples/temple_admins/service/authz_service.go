// internals/features/temples/temple_admins/service/authz_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/temple_admins/model"
)

// Cek otorisasi otoritatif di sisi server: lookup grant record per user.
// "Record tidak ada" dan "flag kurang" sengaja tidak dibedakan — dua-duanya
// jatuh ke deny, caller cukup menerjemahkan ke 403.

// FindGrant mengambil grant record untuk satu user.
func FindGrant(db *gorm.DB, userID uuid.UUID) (*model.AdminGrantModel, error) {
	var grant model.AdminGrantModel
	if err := db.Where("grant_user_id = ?", userID).First(&grant).Error; err != nil {
		return nil, err
	}
	return &grant, nil
}

// IsSuperAdmin: admit untuk aksi kelas pembuatan/pengubahan pura.
func IsSuperAdmin(db *gorm.DB, userID uuid.UUID) (bool, error) {
	grant, err := FindGrant(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return grant.GrantIsSuperAdmin, nil
}

// CanManageTemple: admit untuk aksi ter-scope pura (mis. kelola event).
// Super admin selalu lolos; admin biasa harus punya scope pura yang sama.
func CanManageTemple(db *gorm.DB, userID, templeID uuid.UUID) (bool, error) {
	grant, err := FindGrant(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return GrantAllowsTemple(grant, templeID), nil
}

// GrantAllowsTemple adalah rule murni di atas satu grant record.
func GrantAllowsTemple(grant *model.AdminGrantModel, templeID uuid.UUID) bool {
	if grant == nil {
		return false
	}
	if grant.GrantIsSuperAdmin {
		return true
	}
	return grant.GrantIsAdmin && grant.GrantTempleID != nil && *grant.GrantTempleID == templeID
}
