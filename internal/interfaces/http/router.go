package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phardev/pharmanalyse-api/internal/application/auth"
	"github.com/phardev/pharmanalyse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MargeUC        *usecase.MargeUseCase
	StockUC        *usecase.StockUseCase
	ParetoUC       *usecase.ParetoUseCase
	ABCXYZUC       *usecase.ABCXYZUseCase
	SaisonnaliteUC *usecase.SaisonnaliteUseCase
	EvolutionUC    *usecase.EvolutionUseCase
	ParetoPDF      ParetoPDFGenerator
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Análisis (protegido, requiere Bearer Token)
	analyse := api.Group("/analyse", AuthMiddleware(deps.JWTSecret))
	analyseHandler := NewAnalyseHandler(
		deps.MargeUC,
		deps.StockUC,
		deps.ParetoUC,
		deps.ABCXYZUC,
		deps.SaisonnaliteUC,
		deps.EvolutionUC,
		deps.ParetoPDF,
	)
	analyse.Get("/marge", analyseHandler.Marge)
	analyse.Get("/stock", analyseHandler.Stock)
	analyse.Get("/pareto", analyseHandler.Pareto)
	analyse.Get("/pareto/pdf", analyseHandler.ParetoPDF)
	analyse.Get("/abc-xyz", analyseHandler.ABCXYZ)
	analyse.Get("/saisonnalite", analyseHandler.Saisonnalite)
	analyse.Get("/evolution", analyseHandler.Evolution)
}
