package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/user_follow_temples/controller"
)

// 🟢 Daftar anggota pura dibuka untuk publik
func FollowBaseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewFollowTempleController(db)

	app.Get("/api/temples/members", ctrl.GetMembersByTemple)
}

// 🔐 Follow / unfollow untuk user login
func FollowUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFollowTempleController(db)

	user.Post("/follow-temples", ctrl.FollowTemple)
	user.Delete("/follow-temples/:temple_id", ctrl.UnfollowTemple)
}
