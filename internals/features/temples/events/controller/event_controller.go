package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authzService "templeku_backend/internals/features/temples/temple_admins/service"
	"templeku_backend/internals/features/temples/events/dto"
	"templeku_backend/internals/features/temples/events/model"
	helper "templeku_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/a/events — admin ter-scope pura (atau super admin).
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	// temple_id boleh diambil dari scope token (di-inject IsTempleAdmin)
	if req.EventTempleID == uuid.Nil {
		if tokenTempleID, err := helper.GetTempleIDFromToken(c); err == nil {
			req.EventTempleID = tokenTempleID
		}
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_title dan event_temple_id wajib diisi")
	}

	// Cek otoritatif: grant harus super admin ATAU admin dengan scope
	// pura yang sama dengan event.
	allowed, err := authzService.CanManageTemple(ctrl.DB, userID, req.EventTempleID)
	if err != nil {
		log.Printf("[ERROR] Gagal cek grant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	newEvent := req.ToModel()
	if newEvent.EventSlug != "" {
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, newEvent.EventSlug, "events", "event_slug")
		if err == nil {
			newEvent.EventSlug = slug
		}
	}

	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	return helper.JsonCreated(c, "Event berhasil ditambahkan", dto.ToEventResponse(newEvent))
}

// 🟢 GET /api/events?temple_id=... — publik.
// Semua event yang dikembalikan dijamin event_temple_id == temple_id
// yang diminta (filter di query, bukan di klien).
func (ctrl *EventController) GetEventsByTemple(c *fiber.Ctx) error {
	templeIDStr := strings.TrimSpace(c.Query("temple_id"))
	if templeIDStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "temple_id wajib diisi")
	}
	templeUUID, err := uuid.Parse(templeIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).
		Where("event_temple_id = ?", templeUUID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count events by temple: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Where("event_temple_id = ?", templeUUID).
		Order("event_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonList(c, "Daftar event berhasil diambil",
		fiber.Map{"events": dto.ToEventResponseList(events)},
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/events/:id?temple_id=... — publik.
// Event yang temple_id tersimpannya beda dengan pura yang diminta
// diperlakukan sebagai not-found.
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak boleh kosong")
	}
	eventUUID, err := uuid.Parse(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format event ID tidak valid")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventUUID).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	if templeIDStr := strings.TrimSpace(c.Query("temple_id")); templeIDStr != "" {
		templeUUID, err := uuid.Parse(templeIDStr)
		if err != nil || ev.EventTempleID != templeUUID {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
	}

	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&ev))
}

// 🟡 PATCH /api/a/events/:id — admin ter-scope pura.
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id := strings.TrimSpace(c.Params("id"))
	eventUUID, err := uuid.Parse(id)
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

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
		updates["event_slug"] = helper.GenerateSlug(*req.EventTitle)
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventStartsAt != nil {
		updates["event_starts_at"] = *req.EventStartsAt
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(&ev))
}

// 🗑️ DELETE /api/a/events/:id — admin ter-scope pura, soft delete.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id := strings.TrimSpace(c.Params("id"))
	eventUUID, err := uuid.Parse(id)
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

	if err := ctrl.DB.Delete(&ev).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{
		"event_id": eventUUID.String(),
	})
}
