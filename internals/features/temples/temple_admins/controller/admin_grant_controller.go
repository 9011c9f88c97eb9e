package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"templeku_backend/internals/configs"
	"templeku_backend/internals/features/temples/temple_admins/dto"
	"templeku_backend/internals/features/temples/temple_admins/model"
	"templeku_backend/internals/features/temples/temple_admins/service"
	helper "templeku_backend/internals/helpers"
)

type AdminGrantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminGrantController(db *gorm.DB) *AdminGrantController {
	return &AdminGrantController{DB: db, Validate: validator.New()}
}

// 🟠 POST /api/assign-admin — bootstrap super admin.
// SENGAJA tanpa auth dan tanpa Authorization Check: endpoint ini
// meng-overwrite grant untuk SATU user yang sudah ditentukan lewat env
// (BOOTSTRAP_ADMIN_USER_ID), untuk setup awal instalasi.
// TODO: pindahkan ke perintah provisioning offline begitu alur setup
// instalasi baru tidak lagi bergantung pada endpoint ini.
func (ctrl *AdminGrantController) AssignBootstrapAdmin(c *fiber.Ctx) error {
	bootstrapID := strings.TrimSpace(configs.BootstrapAdminUserID)
	if bootstrapID == "" {
		log.Println("[ERROR] BOOTSTRAP_ADMIN_USER_ID belum diset")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bootstrap admin belum dikonfigurasi")
	}
	userUUID, err := uuid.Parse(bootstrapID)
	if err != nil {
		log.Printf("[ERROR] BOOTSTRAP_ADMIN_USER_ID bukan UUID valid: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bootstrap admin belum dikonfigurasi")
	}

	grant := model.AdminGrantModel{
		GrantUserID:       userUUID,
		GrantIsAdmin:      true,
		GrantIsSuperAdmin: true,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "grant_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"grant_is_admin", "grant_is_super_admin", "grant_updated_at"}),
	}).Create(&grant).Error; err != nil {
		log.Printf("[ERROR] Gagal menulis grant bootstrap: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan grant")
	}

	return helper.JsonOK(c, "Bootstrap admin berhasil di-assign", nil)
}

// ✅ POST /api/o/temple-admins — super admin menambah admin ter-scope pura.
func (ctrl *AdminGrantController) AddAdmin(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	ok, err := service.IsSuperAdmin(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var body dto.AdminGrantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grant_user_id dan grant_temple_id wajib diisi")
	}

	// Cek apakah user sudah punya grant
	var existing model.AdminGrantModel
	result := ctrl.DB.Where("grant_user_id = ?", body.GrantUserID).First(&existing)
	if result.Error == nil {
		return helper.JsonError(c, fiber.StatusConflict, "User sudah punya grant admin")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari data grant")
	}

	templeID := body.GrantTempleID
	grant := model.AdminGrantModel{
		GrantUserID:   body.GrantUserID,
		GrantIsAdmin:  true,
		GrantTempleID: &templeID,
	}
	if err := ctrl.DB.Create(&grant).Error; err != nil {
		log.Printf("[ERROR] Gagal menambahkan grant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan admin")
	}

	return helper.JsonCreated(c, "Admin berhasil ditambahkan", dto.ToAdminGrantResponse(&grant))
}

// ✅ DELETE /api/o/temple-admins/:user_id — super admin mencabut grant.
func (ctrl *AdminGrantController) RevokeAdmin(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	ok, err := service.IsSuperAdmin(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	targetUUID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format user_id tidak valid")
	}

	result := ctrl.DB.Where("grant_user_id = ?", targetUUID).Delete(&model.AdminGrantModel{})
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut grant")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grant tidak ditemukan untuk user ini")
	}

	return helper.JsonDeleted(c, "Grant admin berhasil dicabut", fiber.Map{
		"grant_user_id": targetUUID.String(),
	})
}

// ✅ GET /api/a/temple-admins/by-temple/:temple_id — daftar admin satu pura.
func (ctrl *AdminGrantController) GetAdminsByTemple(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	templeUUID, err := uuid.Parse(strings.TrimSpace(c.Params("temple_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	allowed, err := service.CanManageTemple(ctrl.DB, userID, templeUUID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var grants []model.AdminGrantModel
	if err := ctrl.DB.
		Where("grant_temple_id = ? AND grant_is_admin = true", templeUUID).
		Find(&grants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar admin")
	}

	return helper.JsonOK(c, "Daftar admin berhasil diambil", dto.ToAdminGrantResponseList(grants))
}
