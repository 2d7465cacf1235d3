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

	"github.com/nublack/nublack-api/internal/application/auth"
	"github.com/nublack/nublack-api/internal/application/cart"
	appsolicitud "github.com/nublack/nublack-api/internal/application/solicitud"
	"github.com/nublack/nublack-api/internal/application/usecase"
	"github.com/nublack/nublack-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/nublack/nublack-api/internal/infrastructure/pdf"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	httpRouter "github.com/nublack/nublack-api/internal/interfaces/http"
	"github.com/nublack/nublack-api/pkg/config"
	"github.com/nublack/nublack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage_dir", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	notifier := storage.NewNotifier()
	store, err := storage.NewStore(cfg.Storage.Dir, cfg.Storage.QuotaBytes, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de documentos")
	}

	// Vigila cambios externos en los archivos de colección (otro proceso o
	// edición manual) y notifica a los repositorios para que recarguen.
	watcher, err := storage.NewWatcher(store, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("vigilar directorio del almacén")
	}
	defer watcher.Close()

	// Traza de cambios de colección, útil en desarrollo.
	events, cancelEvents := notifier.Subscribe("")
	defer cancelEvents()
	go func() {
		for ev := range events {
			log.Debug().
				Str("coleccion", ev.Key).
				Int64("rev", ev.Rev).
				Bool("externo", ev.External).
				Msg("colección actualizada")
		}
	}()

	userRepo, err := jsonstore.NewUserRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de usuarios")
	}
	categoryRepo, err := jsonstore.NewCategoryRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de categorías")
	}
	productRepo, err := jsonstore.NewProductRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de productos")
	}
	cartRepo, err := jsonstore.NewCartRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de carritos")
	}
	solicitudRepo, err := jsonstore.NewSolicitudRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de solicitudes")
	}
	settingsRepo, err := jsonstore.NewSettingsRepository(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de ajustes")
	}

	reseed := func() error {
		return jsonstore.Seed(userRepo, settingsRepo, cfg.Admin.Email, cfg.Admin.Password, log)
	}
	if err := reseed(); err != nil {
		log.Fatal().Err(err).Msg("sembrar administrador y ajustes")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	cartUC := cart.NewCartUseCase(cartRepo, productRepo)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	solicitudUC := appsolicitud.NewSolicitudUseCase(solicitudRepo, cartRepo, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NUBLACK API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		CartUC:      cartUC,
		SolicitudUC: solicitudUC,
		Settings:    settingsRepo,
		Store:       store,
		Reseed:      reseed,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
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
