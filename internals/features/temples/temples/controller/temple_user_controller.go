package controller

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	eventDto "templeku_backend/internals/features/temples/events/dto"
	eventModel "templeku_backend/internals/features/temples/events/model"
	"templeku_backend/internals/features/temples/temples/dto"
	"templeku_backend/internals/features/temples/temples/model"
	helper "templeku_backend/internals/helpers"
)

// 🟢 GET /api/public/temples — publik, pagination.
func (tc *TempleController) GetAllTemples(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := tc.DB.Model(&model.TempleModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count temples: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pura")
	}

	var temples []model.TempleModel
	if err := tc.DB.
		Order("temple_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&temples).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar pura: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pura")
	}

	return helper.JsonList(c, "Daftar pura berhasil diambil",
		dto.FromModelTempleList(temples),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/public/temples/:slug — publik.
func (tc *TempleController) GetTempleBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	var temple model.TempleModel
	if err := tc.DB.Where("lower(temple_slug) = lower(?)", slug).First(&temple).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pura tidak ditemukan")
	}

	return helper.JsonOK(c, "Pura berhasil ditemukan", dto.FromModelTemple(&temple))
}

// 🟢 GET /api/public/temples/:id/overview — halaman detail.
// Dua read independen (dokumen pura + daftar event awal) dijalankan
// paralel; dua-duanya selesai dulu sebelum respond. Tidak ada ordering
// antar keduanya.
func (tc *TempleController) GetTempleOverview(c *fiber.Ctx) error {
	templeUUID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	var (
		wg        sync.WaitGroup
		temple    model.TempleModel
		events    []eventModel.EventModel
		templeErr error
		eventsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		templeErr = tc.DB.Where("temple_id = ?", templeUUID).First(&temple).Error
	}()
	go func() {
		defer wg.Done()
		eventsErr = tc.DB.
			Where("event_temple_id = ?", templeUUID).
			Where("event_starts_at IS NULL OR event_starts_at >= ?", time.Now().UTC()).
			Order("event_starts_at ASC NULLS LAST").
			Limit(10).
			Find(&events).Error
	}()
	wg.Wait()

	if templeErr != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pura tidak ditemukan")
	}
	if eventsErr != nil {
		log.Printf("[ERROR] Gagal mengambil event untuk overview: %v", eventsErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonOK(c, "Overview pura berhasil diambil", fiber.Map{
		"temple": dto.FromModelTemple(&temple),
		"events": eventDto.ToEventResponseList(events),
	})
}
