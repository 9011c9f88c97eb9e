// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals key yang diisi oleh middleware auth setelah token terverifikasi.
const (
	LocalsUserID         = "user_id"
	LocalsUserRole       = "userRole"
	LocalsIsSuperAdmin   = "is_super_admin"
	LocalsTempleAdminIDs = "temple_admin_ids"
	LocalsActiveTempleID = "temple_id"
)

var (
	ErrNoUserInContext   = errors.New("unauthorized - tidak ada user di context")
	ErrNoTempleInContext = errors.New("unauthorized - token tidak memiliki akses pura")
)

// GetUserIDFromToken mengambil user_id (uuid) dari Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

// GetTempleIDFromToken mengambil temple_id aktif dari Locals
// (di-inject oleh middleware IsTempleAdmin).
func GetTempleIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsActiveTempleID).(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoTempleInContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoTempleInContext
	}
	return id, nil
}

// IsSuperAdminFromToken membaca klaim super admin dari Locals.
// Catatan: ini afordansi UX/fast-path saja; keputusan otoritatif tetap
// lookup grant di DB (service.IsSuperAdmin).
func IsSuperAdminFromToken(c *fiber.Ctx) bool {
	v, ok := c.Locals(LocalsIsSuperAdmin).(bool)
	return ok && v
}
