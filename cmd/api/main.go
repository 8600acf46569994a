package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amartindev/TenjoConecta/internal/application/admin"
	"github.com/amartindev/TenjoConecta/internal/application/auth"
	"github.com/amartindev/TenjoConecta/internal/application/listing"
	"github.com/amartindev/TenjoConecta/internal/application/registration"
	"github.com/amartindev/TenjoConecta/internal/infrastructure/postgres"
	infras3 "github.com/amartindev/TenjoConecta/internal/infrastructure/s3"
	httpRouter "github.com/amartindev/TenjoConecta/internal/interfaces/http"
	"github.com/amartindev/TenjoConecta/pkg/config"
	"github.com/amartindev/TenjoConecta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := infras3.NewStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente S3")
	}

	businessRepo := postgres.NewBusinessRepository(pool)
	imageRepo := postgres.NewBusinessImageRepository(pool)
	pdfRepo := postgres.NewBusinessPdfRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	listingUC := listing.NewUseCase(businessRepo, imageRepo, pdfRepo)
	registrationUC := registration.NewUseCase(businessRepo, imageRepo, pdfRepo, store, log)
	adminUC := admin.NewUseCase(businessRepo, imageRepo, pdfRepo, txRunner, store, log)
	authUC := auth.NewUseCase(cfg.Admin.Email, cfg.Admin.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    25 * 1024 * 1024, // formularios con varias imágenes de hasta 10MB
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TenjoConecta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ListingUC:      listingUC,
		RegistrationUC: registrationUC,
		AdminUC:        adminUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		AdminEmail:     cfg.Admin.Email,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
