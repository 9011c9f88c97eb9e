package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/user_follow_temples/model"
	helper "templeku_backend/internals/helpers"
)

type FollowTempleController struct {
	DB *gorm.DB
}

func NewFollowTempleController(db *gorm.DB) *FollowTempleController {
	return &FollowTempleController{DB: db}
}

// ✅ POST /api/u/follow-temples — user mengikuti pura
func (ctrl *FollowTempleController) FollowTemple(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body struct {
		FollowTempleID uuid.UUID `json:"follow_temple_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.FollowTempleID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "follow_temple_id wajib diisi")
	}

	var existing model.UserFollowTempleModel
	err = ctrl.DB.
		Where("follow_user_id = ? AND follow_temple_id = ?", userID, body.FollowTempleID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah mengikuti pura ini")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data follow")
	}

	follow := model.UserFollowTempleModel{
		FollowUserID:   userID,
		FollowTempleID: body.FollowTempleID,
	}
	if err := ctrl.DB.Create(&follow).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan follow: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengikuti pura")
	}

	return helper.JsonCreated(c, "Berhasil mengikuti pura", follow)
}

// ✅ DELETE /api/u/follow-temples/:temple_id — berhenti mengikuti
func (ctrl *FollowTempleController) UnfollowTemple(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	templeUUID, err := uuid.Parse(strings.TrimSpace(c.Params("temple_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	result := ctrl.DB.
		Where("follow_user_id = ? AND follow_temple_id = ?", userID, templeUUID).
		Delete(&model.UserFollowTempleModel{})
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal berhenti mengikuti")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anda tidak mengikuti pura ini")
	}

	return helper.JsonDeleted(c, "Berhenti mengikuti pura", fiber.Map{
		"follow_temple_id": templeUUID.String(),
	})
}

// 🟢 GET /api/temples/members?temple_id=... — publik.
// Anggota = user yang mengikuti pura tersebut.
func (ctrl *FollowTempleController) GetMembersByTemple(c *fiber.Ctx) error {
	templeIDStr := strings.TrimSpace(c.Query("temple_id"))
	if templeIDStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "temple_id wajib diisi")
	}
	templeUUID, err := uuid.Parse(templeIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	type memberRow struct {
		UserID   uuid.UUID `json:"user_id" gorm:"column:follow_user_id"`
		UserName string    `json:"user_name" gorm:"column:user_name"`
		Since    string    `json:"member_since" gorm:"column:member_since"`
	}
	members := []memberRow{} // list kosong tetap [] di JSON, bukan null
	if err := ctrl.DB.
		Table("user_follow_temple").
		Select("user_follow_temple.follow_user_id, users.user_name, to_char(user_follow_temple.follow_created_at, 'YYYY-MM-DD') AS member_since").
		Joins("JOIN users ON users.id = user_follow_temple.follow_user_id").
		Where("user_follow_temple.follow_temple_id = ?", templeUUID).
		Order("user_follow_temple.follow_created_at ASC").
		Scan(&members).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil anggota pura: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}

	return helper.JsonOK(c, "Daftar anggota berhasil diambil", fiber.Map{
		"members": members,
	})
}
