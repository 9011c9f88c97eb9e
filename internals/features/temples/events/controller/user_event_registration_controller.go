package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authzService "templeku_backend/internals/features/temples/temple_admins/service"
	"templeku_backend/internals/features/temples/events/dto"
	"templeku_backend/internals/features/temples/events/model"
	helper "templeku_backend/internals/helpers"
)

type UserEventRegistrationController struct {
	DB *gorm.DB
}

func NewUserEventRegistrationController(db *gorm.DB) *UserEventRegistrationController {
	return &UserEventRegistrationController{DB: db}
}

// 🟢 POST /api/u/user-event-registrations — user daftar event.
func (ctrl *UserEventRegistrationController) CreateRegistration(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UserEventRegistrationRequest
	if err := c.BodyParser(&req); err != nil || req.EventID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_event_registration_event_id wajib diisi")
	}

	// Pastikan event ada
	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", req.EventID).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	// Cek duplikat pendaftaran
	var existing model.UserEventRegistrationModel
	err = ctrl.DB.
		Where("user_event_registration_event_id = ? AND user_event_registration_user_id = ?", req.EventID, userID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah terdaftar di event ini")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pendaftaran")
	}

	reg := model.UserEventRegistrationModel{
		UserEventRegistrationEventID: req.EventID,
		UserEventRegistrationUserID:  userID,
		UserEventRegistrationStatus:  "registered",
	}
	if err := ctrl.DB.Create(&reg).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftar event")
	}

	return helper.JsonCreated(c, "Berhasil mendaftar event", dto.ToUserEventRegistrationResponse(&reg))
}

// 🟢 GET /api/u/user-event-registrations — user lihat event yang diikuti.
func (ctrl *UserEventRegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var regs []model.UserEventRegistrationModel
	if err := ctrl.DB.
		Where("user_event_registration_user_id = ?", userID).
		Order("user_event_registration_created_at DESC").
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.JsonOK(c, "Daftar pendaftaran berhasil diambil", dto.ToUserEventRegistrationResponseList(regs))
}

// 🟢 GET /api/a/user-event-registrations/by-event/:event_id — laporan internal admin.
func (ctrl *UserEventRegistrationController) GetRegistrantsByEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	eventUUID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format event ID tidak valid")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventUUID).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	allowed, err := authzService.CanManageTemple(ctrl.DB, userID, ev.EventTempleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var regs []model.UserEventRegistrationModel
	if err := ctrl.DB.
		Where("user_event_registration_event_id = ?", eventUUID).
		Order("user_event_registration_created_at ASC").
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftar")
	}

	return helper.JsonOK(c, "Daftar pendaftar berhasil diambil", dto.ToUserEventRegistrationResponseList(regs))
}
