package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/features/temples/events/controller"
)

// 🟢 Daftar & detail acara dibuka untuk publik di bawah /api
// (jamaah memilih pura lalu melihat acaranya, temple_id lewat query).
func EventBaseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	app.Get("/api/events", ctrl.GetEventsByTemple)
	app.Get("/api/events/:id", ctrl.GetEventByID)
}

// 🔐 Rute user login: pendaftaran acara
func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	regCtrl := controller.NewUserEventRegistrationController(db)

	user.Post("/user-event-registrations", regCtrl.CreateRegistration)
	user.Get("/user-event-registrations", regCtrl.GetMyRegistrations)
}

// 🔒 Rute admin pura: kelola acara & lihat pendaftar
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)
	regCtrl := controller.NewUserEventRegistrationController(db)

	admin.Post("/events", ctrl.CreateEvent)
	admin.Patch("/events/:id", ctrl.UpdateEvent)
	admin.Delete("/events/:id", ctrl.DeleteEvent)
	admin.Get("/user-event-registrations/by-event/:event_id", regCtrl.GetRegistrantsByEvent)
}
