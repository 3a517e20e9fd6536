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
	appanalytics "github.com/greenroad/licorera-api/internal/application/analytics"
	"github.com/greenroad/licorera-api/internal/application/auth"
	"github.com/greenroad/licorera-api/internal/application/catalog"
	"github.com/greenroad/licorera-api/internal/application/image"
	"github.com/greenroad/licorera-api/internal/application/usecase"
	"github.com/greenroad/licorera-api/internal/infrastructure/memory"
	httpRouter "github.com/greenroad/licorera-api/internal/interfaces/http"
	"github.com/greenroad/licorera-api/pkg/config"
	"github.com/greenroad/licorera-api/pkg/logger"
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

	// Todo el estado vive en memoria: el inventario se siembra al arrancar
	// y se pierde al detener el proceso (no hay base de datos).
	productRepo := memory.NewProductRepository()
	if err := memory.SeedProducts(productRepo); err != nil {
		log.Fatal().Err(err).Msg("siembra del inventario inicial")
	}
	sessionStore := memory.NewSessionStore()

	authUC, err := auth.NewAuthUseCase(sessionStore, auth.Config{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		SessionTTL:    time.Duration(cfg.Auth.SessionTTL) * time.Minute,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización de auth")
	}

	catalogUC := catalog.NewCatalogUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo)
	imageUC := image.NewImageUseCase(cfg.Upload.MaxBytes)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// El límite de cuerpo debe superar el tamaño máximo de imagen para
		// que el exceso llegue al handler y se responda IMAGE_TOO_LARGE en
		// vez de un 413 sin cuerpo.
		BodyLimit: int(cfg.Upload.MaxBytes) + 2*1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Green Road Liquor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		ProductUC:    productUC,
		DashboardUC:  dashboardUC,
		ImageUC:      imageUC,
		AuthUC:       authUC,
		SessionStore: sessionStore,
		JWTSecret:    cfg.JWT.Secret,
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
