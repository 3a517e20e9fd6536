package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenroad/licorera-api/internal/application/analytics"
	"github.com/greenroad/licorera-api/internal/application/auth"
	"github.com/greenroad/licorera-api/internal/application/catalog"
	"github.com/greenroad/licorera-api/internal/application/image"
	"github.com/greenroad/licorera-api/internal/application/usecase"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *catalog.CatalogUseCase
	ProductUC    *usecase.ProductUseCase
	DashboardUC  *analytics.DashboardUseCase
	ImageUC      *image.ImageUseCase
	AuthUC       *auth.AuthUseCase
	SessionStore repository.SessionStore
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Vitrina (público)
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/", catalogHandler.Search)
	catalogGroup.Get("/categories", catalogHandler.Categories)

	// Auth: login público; me/logout requieren sesión viva
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.SessionStore), authHandler.Me)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.SessionStore), authHandler.Logout)

	// Rutas protegidas del panel (Bearer Token + rol admin)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret, deps.SessionStore),
		RequireRole(entity.RoleAdmin),
	)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Images (protegido)
	images := protected.Group("/images")
	imageHandler := NewImageHandler(deps.ImageUC)
	images.Post("/", imageHandler.Upload)
}
