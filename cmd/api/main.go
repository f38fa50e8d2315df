package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/cotizador-pro/internal/application/auth"
	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/cotizador-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/cotizador-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cotizador-pro/internal/interfaces/http"
	"github.com/tu-usuario/cotizador-pro/pkg/config"
	"github.com/tu-usuario/cotizador-pro/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewUserRoleRepository(pool)
	materialRepo := postgres.NewRawMaterialRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	listExporter := excel.NewExcelizeExporter()

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	quotationUC := usecase.NewQuotationUseCase(txRunner, materialRepo, quotationRepo)
	exportUC := usecase.NewExportUseCase(quotationRepo, pdfGenerator, listExporter)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)

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
		Title:    "Cotizador Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MaterialUC:  materialUC,
		QuotationUC: quotationUC,
		ExportUC:    exportUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
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
