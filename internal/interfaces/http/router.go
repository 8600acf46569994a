package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amartindev/TenjoConecta/internal/application/admin"
	"github.com/amartindev/TenjoConecta/internal/application/auth"
	"github.com/amartindev/TenjoConecta/internal/application/listing"
	"github.com/amartindev/TenjoConecta/internal/application/registration"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ListingUC      *listing.UseCase
	RegistrationUC *registration.UseCase
	AdminUC        *admin.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
	AdminEmail     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Directorio público
	businessHandler := NewBusinessHandler(deps.ListingUC)
	registerHandler := NewRegisterHandler(deps.RegistrationUC)
	businesses := api.Group("/businesses")
	businesses.Get("/", businessHandler.List)
	// featured va antes de :name para que no lo capture el parámetro
	businesses.Get("/featured", businessHandler.Featured)
	businesses.Get("/:name", businessHandler.Detail)
	businesses.Post("/", registerHandler.Register)
	api.Get("/categories", businessHandler.Categories)

	// Administración (requiere Bearer Token del admin configurado)
	adminGroup := api.Group("/admin", AdminMiddleware(deps.JWTSecret, deps.AdminEmail))
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminBusinesses := adminGroup.Group("/businesses")
	adminBusinesses.Get("/", adminHandler.List)
	adminBusinesses.Patch("/:id/status", adminHandler.ChangeStatus)
	adminBusinesses.Put("/:id", adminHandler.Update)
	adminBusinesses.Delete("/:id", adminHandler.DeleteBusiness)
	adminBusinesses.Put("/:id/images/:imageID/main", adminHandler.SetMainImage)
	adminBusinesses.Post("/:id/images", adminHandler.UploadImage)
	adminBusinesses.Delete("/:id/images/:imageID", adminHandler.DeleteImage)
	adminBusinesses.Post("/:id/pdf", adminHandler.UploadPdf)
	adminBusinesses.Delete("/:id/pdf", adminHandler.DeletePdf)
}
