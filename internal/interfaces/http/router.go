package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nublack/nublack-api/internal/application/auth"
	"github.com/nublack/nublack-api/internal/application/cart"
	"github.com/nublack/nublack-api/internal/application/solicitud"
	"github.com/nublack/nublack-api/internal/application/usecase"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	CartUC      *cart.CartUseCase
	SolicitudUC *solicitud.SolicitudUseCase
	Settings    repository.SettingsRepository
	Store       *storage.Store
	Reseed      func() error
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	adminOnly := RequireRole(entity.RoleAdministrador)

	// Catálogo: lecturas públicas (con auth opcional para que un administrador
	// vea también los inactivos), escrituras solo de administrador.
	categorias := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias.Get("/", OptionalAuthMiddleware(deps.JWTSecret), categoryHandler.List)
	categorias.Get("/:id", categoryHandler.GetByID)
	categorias.Post("/", AuthMiddleware(deps.JWTSecret), adminOnly, categoryHandler.Create)
	categorias.Put("/:id", AuthMiddleware(deps.JWTSecret), adminOnly, categoryHandler.Update)
	categorias.Delete("/:id", AuthMiddleware(deps.JWTSecret), adminOnly, categoryHandler.Delete)

	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", OptionalAuthMiddleware(deps.JWTSecret), productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Post("/", AuthMiddleware(deps.JWTSecret), adminOnly, productHandler.Create)
	productos.Put("/:id", AuthMiddleware(deps.JWTSecret), adminOnly, productHandler.Update)
	productos.Delete("/:id", AuthMiddleware(deps.JWTSecret), adminOnly, productHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo Administrador)
	usuarios := protected.Group("/usuarios", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Post("/", userHandler.Create)
	usuarios.Get("/", userHandler.List)
	usuarios.Get("/:id", userHandler.GetByID)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)

	// Carrito (cualquier usuario autenticado, uno por email)
	carrito := protected.Group("/carrito")
	cartHandler := NewCartHandler(deps.CartUC)
	carrito.Get("/", cartHandler.Get)
	carrito.Delete("/", cartHandler.Clear)
	carrito.Post("/items", cartHandler.AddItem)
	carrito.Put("/items", cartHandler.SetItem)
	carrito.Delete("/items", cartHandler.RemoveItem)

	// Solicitudes (autenticado; el handler restringe por rol y propiedad)
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC, deps.Log)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Get("/:id/pdf", solicitudHandler.Receipt)
	solicitudes.Put("/:id/estado", solicitudHandler.ChangeEstado)

	// Ajustes y administración del almacén (solo Administrador)
	adminHandler := NewAdminHandler(deps.Settings, deps.Store, deps.Reseed, deps.Log)
	protected.Get("/ajustes", adminOnly, adminHandler.Settings)
	protected.Post("/admin/storage/reset", adminOnly, adminHandler.StorageReset)
}
