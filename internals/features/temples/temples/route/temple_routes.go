package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/temples/controller"
	authMiddleware "templeku_backend/internals/middlewares/auth"
)

// ✅ Rute pengelolaan pura di bawah /api (dipakai langsung oleh dashboard).
// Otorisasi super admin dicek di controller, middleware hanya memastikan login.
func TempleBaseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewTempleController(db)

	// Jangan pakai Group+middleware di prefix /api/temples:
	// GET /api/temples/members harus tetap publik.
	app.Post("/api/temples/create", authMiddleware.AuthMiddleware(db), ctrl.CreateTemple)
	app.Post("/api/temples/update", authMiddleware.AuthMiddleware(db), ctrl.UpdateTemple)
}

// 🟢 Rute publik (tanpa login)
func TemplePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTempleController(db)

	public.Get("/temples", ctrl.GetAllTemples)
	public.Get("/temples/:slug", ctrl.GetTempleBySlug)
	public.Get("/temples/:id/overview", ctrl.GetTempleOverview)
}

// 🔒 Rute owner (login + klaim super admin)
func TempleOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTempleController(db)

	owner.Delete("/temples/:id", ctrl.DeleteTemple)
}
