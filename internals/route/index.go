// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "templeku_backend/internals/features/users/auth/route"

	eventRoute "templeku_backend/internals/features/temples/events/route"
	adminGrantRoute "templeku_backend/internals/features/temples/temple_admins/route"
	templeRoute "templeku_backend/internals/features/temples/temples/route"
	followRoute "templeku_backend/internals/features/temples/user_follow_temples/route"

	authMiddleware "templeku_backend/internals/middlewares/auth"
	featuresMiddleware "templeku_backend/internals/middlewares/features"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== BASE (/api langsung) =====================
	// Rute lama yang dipakai frontend: path-nya jangan diubah.
	log.Println("[INFO] Mounting base routes under /api...")
	adminGrantRoute.AdminGrantBaseRoutes(app, db) // POST /api/assign-admin (bootstrap, tanpa auth)
	templeRoute.TempleBaseRoutes(app, db)         // POST /api/temples/create, /api/temples/update
	followRoute.FollowBaseRoutes(app, db)         // GET  /api/temples/members
	eventRoute.EventBaseRoutes(app, db)           // GET  /api/events, /api/events/:id

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib login
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN (per pura) → login + klaim admin.
	// Klaim JWT hanya gerbang cepat; controller tetap cek grant di DB.
	log.Println("[INFO] Setting up ADMIN group (Auth + IsTempleAdmin)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.IsTempleAdmin(),
	)

	// OWNER (super admin global) → login + klaim super admin
	log.Println("[INFO] Setting up OWNER group (Auth + IsSuperAdmin)...")
	owner := app.Group("/api/o",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.IsSuperAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Temple routes...")
	templeRoute.TemplePublicRoutes(public, db)
	templeRoute.TempleOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Event routes...")
	eventRoute.EventUserRoutes(private, db)
	eventRoute.EventAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Follow routes...")
	followRoute.FollowUserRoutes(private, db)

	log.Println("[INFO] Mounting Admin Grant routes...")
	adminGrantRoute.AdminGrantAdminRoutes(admin, db)
	adminGrantRoute.AdminGrantOwnerRoutes(owner, db)
}
