// Servidor HTTP de la API analítica de officine: marge, stock, Pareto,
// ABC/XYZ, saisonnalité y evolution sobre los datos importados del LGO.
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

	"github.com/phardev/pharmanalyse-api/internal/application/auth"
	"github.com/phardev/pharmanalyse-api/internal/application/usecase"
	infrapdf "github.com/phardev/pharmanalyse-api/internal/infrastructure/pdf"
	"github.com/phardev/pharmanalyse-api/internal/infrastructure/postgres"
	httpRouter "github.com/phardev/pharmanalyse-api/internal/interfaces/http"
	"github.com/phardev/pharmanalyse-api/pkg/config"
	"github.com/phardev/pharmanalyse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	productRepo := postgres.NewProductRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	dataset := usecase.NewDatasetBuilder(productRepo, priceRepo, salesRepo, stockRepo)

	margeUC := usecase.NewMargeUseCase(dataset, time.Now)
	stockUC := usecase.NewStockUseCase(dataset, time.Now)
	paretoUC := usecase.NewParetoUseCase(dataset, time.Now)
	abcxyzUC := usecase.NewABCXYZUseCase(dataset, time.Now)
	saisonnaliteUC := usecase.NewSaisonnaliteUseCase(dataset, time.Now)
	evolutionUC := usecase.NewEvolutionUseCase(dataset, time.Now)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los análisis de catálogo completo tardan
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pharmanalyse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MargeUC:        margeUC,
		StockUC:        stockUC,
		ParetoUC:       paretoUC,
		ABCXYZUC:       abcxyzUC,
		SaisonnaliteUC: saisonnaliteUC,
		EvolutionUC:    evolutionUC,
		ParetoPDF:      infrapdf.NewParetoReportGenerator(),
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
