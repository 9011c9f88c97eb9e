package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authzService "templeku_backend/internals/features/temples/temple_admins/service"
	"templeku_backend/internals/features/temples/temples/dto"
	"templeku_backend/internals/features/temples/temples/model"
	helper "templeku_backend/internals/helpers"
)

type TempleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTempleController(db *gorm.DB) *TempleController {
	v := validator.New()
	// error validasi pakai nama field JSON, bukan nama field Go
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &TempleController{DB: db, Validate: v}
}

// requireSuperAdmin: cek grant otoritatif di DB. Record absen dan flag
// false sama-sama jatuh ke 403 tanpa dibedakan.
func (tc *TempleController) requireSuperAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ok, err := authzService.IsSuperAdmin(tc.DB, userID)
	if err != nil {
		log.Printf("[ERROR] Gagal cek grant super admin: %v", err)
		return uuid.Nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
	if !ok {
		return uuid.Nil, helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return userID, nil
}

// 🟢 POST /api/temples/create — hanya super admin.
// Urutan: auth (middleware) → otorisasi → validasi body → satu insert.
func (tc *TempleController) CreateTemple(c *fiber.Ctx) error {
	if _, err := tc.requireSuperAdmin(c); err != nil {
		return err
	}

	var req dto.TempleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := tc.Validate.Struct(req); err != nil {
		fieldErrors := map[string][]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				key := strings.ToLower(fe.Field())
				fieldErrors[key] = append(fieldErrors[key], "wajib diisi")
			}
		}
		return helper.JsonValidationError(c, fieldErrors)
	}

	slug := helper.GenerateSlug(req.TempleName)
	slug, err := helper.EnsureUniqueSlug(tc.DB, slug, "temples", "temple_slug")
	if err != nil {
		log.Printf("[ERROR] Gagal membuat slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	newTemple := model.TempleModel{
		TempleName:        strings.TrimSpace(req.TempleName),
		TempleSlug:        slug,
		TempleLocation:    strings.TrimSpace(req.TempleLocation),
		TempleDescription: req.TempleDescription,
	}
	if err := tc.DB.Create(&newTemple).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan pura: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pura")
	}

	return helper.JsonOK(c, "Pura berhasil dibuat", fiber.Map{
		"temple_id": newTemple.TempleID,
		"temple":    dto.FromModelTemple(&newTemple),
	})
}

// 🟡 POST /api/temples/update — hanya super admin. Merge semantics:
// field yang tidak dikirim tidak disentuh; temple_description boleh
// di-set NULL eksplisit. Update ke temple_id yang belum ada = upsert
// (baris baru berisi field yang dikirim saja, TANPA temple_created_at).
func (tc *TempleController) UpdateTemple(c *fiber.Ctx) error {
	if _, err := tc.requireSuperAdmin(c); err != nil {
		return err
	}

	// raw map untuk membedakan "key tidak dikirim" vs "key dikirim null"
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format JSON tidak valid")
	}

	var req dto.TempleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if strings.TrimSpace(req.TempleID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "temple_id wajib diisi")
	}
	templeUUID, err := uuid.Parse(strings.TrimSpace(req.TempleID))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	updates := map[string]interface{}{}
	if req.TempleName != nil {
		updates["temple_name"] = strings.TrimSpace(*req.TempleName)
	}
	if req.TempleLocation != nil {
		updates["temple_location"] = strings.TrimSpace(*req.TempleLocation)
	}
	if rawDesc, ok := raw["temple_description"]; ok {
		if bytes.Equal(bytes.TrimSpace(rawDesc), []byte("null")) {
			updates["temple_description"] = nil // NULL eksplisit, bukan di-skip
		} else if req.TempleDescription != nil {
			updates["temple_description"] = *req.TempleDescription
		}
	}
	updates["temple_updated_at"] = time.Now().UTC()

	res := tc.DB.Model(&model.TempleModel{}).
		Where("temple_id = ?", templeUUID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal memperbarui pura: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pura")
	}

	if res.RowsAffected == 0 {
		// merge-write ke id yang belum ada membuat baris baru
		row := map[string]interface{}{"temple_id": templeUUID}
		for k, v := range updates {
			row[k] = v
		}
		if _, ok := row["temple_slug"]; !ok {
			if name, ok := row["temple_name"].(string); ok && name != "" {
				slug, err := helper.EnsureUniqueSlug(tc.DB, helper.GenerateSlug(name), "temples", "temple_slug")
				if err == nil {
					row["temple_slug"] = slug
				}
			}
			if _, ok := row["temple_slug"]; !ok {
				row["temple_slug"] = templeUUID.String()
			}
		}
		if err := tc.DB.Model(&model.TempleModel{}).Create(row).Error; err != nil {
			log.Printf("[ERROR] Gagal upsert pura: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pura")
		}
	}

	return helper.JsonOK(c, "Pura berhasil diperbarui", fiber.Map{
		"temple_id": templeUUID,
	})
}

// 🗑️ DELETE /api/o/temples/:id — hanya super admin, soft delete.
func (tc *TempleController) DeleteTemple(c *fiber.Ctx) error {
	if _, err := tc.requireSuperAdmin(c); err != nil {
		return err
	}

	pathID := strings.TrimSpace(c.Params("id"))
	templeUUID, err := uuid.Parse(pathID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format temple_id tidak valid")
	}

	var existing model.TempleModel
	if err := tc.DB.First(&existing, "temple_id = ?", templeUUID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pura tidak ditemukan")
	}

	if err := tc.DB.Delete(&existing).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus pura: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pura")
	}

	return helper.JsonDeleted(c, "Pura berhasil dihapus", fiber.Map{
		"temple_id": templeUUID.String(),
	})
}
