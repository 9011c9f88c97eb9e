package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "templeku_backend/internals/helpers"
)

// IsTempleAdmin meng-inject temple_id aktif dari klaim token.
// Ini fast-path untuk routing/UX; keputusan otoritatif tetap lookup
// grant di DB yang dilakukan controller (least-information: record
// absen dan scope kurang sama-sama jatuh ke 403 di sana).
func IsTempleAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// ✅ Super admin bypass
		if helper.IsSuperAdminFromToken(c) {
			return c.Next()
		}

		// ✅ Ambil temple_id dari token
		adminTemples, ok := c.Locals("temple_admin_ids").([]string)
		if !ok || len(adminTemples) == 0 {
			log.Println("[MIDDLEWARE] Token tidak punya temple_admin_ids")
			return fiber.NewError(fiber.StatusForbidden, "Token tidak memiliki akses pura")
		}

		c.Locals("temple_id", adminTemples[0])
		return c.Next()
	}
}
