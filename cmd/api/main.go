package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/agrotrack/agrotrack-api/internal/application/analytics"
	"github.com/agrotrack/agrotrack-api/internal/application/auth"
	"github.com/agrotrack/agrotrack-api/internal/application/quotes"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
	infrapdf "github.com/agrotrack/agrotrack-api/internal/infrastructure/pdf"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/postgres"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/rediscache"
	httpRouter "github.com/agrotrack/agrotrack-api/internal/interfaces/http"
	"github.com/agrotrack/agrotrack-api/pkg/config"
	"github.com/agrotrack/agrotrack-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	debtRepo := postgres.NewDebtRepository(pool)
	fieldRepo := postgres.NewFieldRepository(pool)
	harvestRepo := postgres.NewHarvestRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.Expiration,
		Issuer:  cfg.JWT.Issuer,
	})
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	revenueUC := usecase.NewRevenueUseCase(revenueRepo)
	debtUC := usecase.NewDebtUseCase(debtRepo)
	fieldUC := usecase.NewFieldUseCase(fieldRepo)
	harvestUC := usecase.NewHarvestUseCase(harvestRepo, fieldRepo)
	dashboardUC := analytics.NewDashboardUseCase(revenueRepo, expenseRepo, debtRepo)
	reportUC := analytics.NewReportUseCase(dashboardUC, infrapdf.NewMarotoReportGenerator())

	// Caché de cotizaciones: opcional, solo si REDIS_ADDR está configurado.
	var quotationCache quotes.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		quotationCache = rediscache.NewQuotationCache(redisClient, rediscache.DefaultQuotationTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de cotizaciones habilitado")
	}
	quotationUC := quotes.NewQuotationUseCase(quotationCache)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ExpenseUC:   expenseUC,
		RevenueUC:   revenueUC,
		DebtUC:      debtUC,
		FieldUC:     fieldUC,
		HarvestUC:   harvestUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		QuotationUC: quotationUC,
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
