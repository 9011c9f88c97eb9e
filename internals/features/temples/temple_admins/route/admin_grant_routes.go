package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/temple_admins/controller"
)

// ⚠️ Endpoint bootstrap tanpa auth — target diambil dari env, lihat controller.
func AdminGrantBaseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAdminGrantController(db)

	app.Post("/api/assign-admin", ctrl.AssignBootstrapAdmin)
}

// 🔒 Admin pura boleh lihat daftar admin puranya sendiri
func AdminGrantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminGrantController(db)

	admin.Get("/temple-admins/by-temple/:temple_id", ctrl.GetAdminsByTemple)
}

// 👑 Tambah/cabut grant hanya lewat group owner (klaim super admin;
// controller tetap cek grant otoritatif di DB)
func AdminGrantOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminGrantController(db)

	owner.Post("/temple-admins", ctrl.AddAdmin)
	owner.Delete("/temple-admins/:user_id", ctrl.RevokeAdmin)
}
