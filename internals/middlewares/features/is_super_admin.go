package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "templeku_backend/internals/helpers"
)

// IsSuperAdmin fast-path dari klaim token. Controller tetap melakukan
// cek grant otoritatif di DB sebelum menulis apa pun.
func IsSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.IsSuperAdminFromToken(c) {
			return c.Next()
		}
		log.Println("[MIDDLEWARE] Akses super admin DITOLAK")
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
}
