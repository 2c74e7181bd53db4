package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/", h.Health)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth", logger.New())
	auth.Post("/register", validate.Register(), h.Register)
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/admin/login", validate.Login(), h.AdminLogin)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)

	users := v1.Group("/users", logger.New())
	users.Get("/me", middleware.Protected(h.Cfg), h.Me)
	users.Put("/me", middleware.Protected(h.Cfg), validate.EditProfile(), h.EditProfile)
	users.Post("/change-password", middleware.Protected(h.Cfg), validate.ChangePassword(), h.ChangePassword)

	// Public catalog
	menu := v1.Group("/menu", logger.New())
	menu.Get("/categories", h.ListCategories)
	menu.Get("/dishes", h.ListDishes)
	menu.Get("/dishes/:slug", h.GetDish)

	v1.Get("/tables", h.ListTables)
	v1.Get("/timeslots", h.ListTimeSlots)
	v1.Get("/availability", h.Availability)

	bookings := v1.Group("/bookings", logger.New())
	bookings.Post("/", middleware.Protected(h.Cfg), validate.CreateBooking(), h.CreateBooking)
	bookings.Get("/", middleware.Protected(h.Cfg), h.MyBookings)
	bookings.Get("/:code", middleware.Protected(h.Cfg), h.GetBooking)
	bookings.Put("/:code", middleware.Protected(h.Cfg), validate.UpdateBooking(), h.UpdateBooking)
	bookings.Post("/:code/cancel", middleware.Protected(h.Cfg), h.CancelBooking)

	admin := v1.Group("/admin", logger.New(), middleware.Protected(h.Cfg), middleware.AdminOnly())
	admin.Get("/bookings", h.AdminListBookings)
	admin.Patch("/bookings/:code/status", validate.ChangeBookingStatus(), h.ChangeBookingStatus)

	admin.Get("/users", h.ListUsers)
	admin.Patch("/users/:userId/active", validate.GetById("userId"), h.ToggleUserActive)
	admin.Post("/admins", middleware.AdminRoleOnly(), validate.CreateAdmin(), h.CreateAdmin)
	admin.Get("/stats", h.BookingStats)

	admin.Get("/tables", h.AdminListTables)
	admin.Post("/tables", validate.CreateTable(), h.CreateTable)
	admin.Put("/tables/:tableId", validate.GetById("tableId"), validate.EditTable(), h.EditTable)
	admin.Patch("/tables/:tableId/active", validate.GetById("tableId"), h.ToggleTableActive)

	admin.Get("/timeslots", h.AdminListTimeSlots)
	admin.Post("/timeslots", validate.CreateTimeSlot(h.Cfg), h.CreateTimeSlot)
	admin.Put("/timeslots/:slotId", validate.GetById("slotId"), validate.EditTimeSlot(), h.EditTimeSlot)
	admin.Patch("/timeslots/:slotId/active", validate.GetById("slotId"), h.ToggleTimeSlotActive)

	admin.Get("/categories", h.AdminListCategories)
	admin.Post("/categories", validate.CreateCategory(), h.CreateCategory)
	admin.Put("/categories/:categoryId", validate.GetById("categoryId"), validate.EditCategory(), h.EditCategory)

	admin.Get("/dishes", h.AdminListDishes)
	admin.Post("/dishes", validate.CreateDish(), h.CreateDish)
	admin.Put("/dishes/:dishId", validate.GetById("dishId"), validate.EditDish(), h.EditDish)
	admin.Patch("/dishes/:dishId/available", validate.GetById("dishId"), h.ToggleDishAvailability)

	admin.Post("/cloudinary-signature", h.UploadSignature)
}
