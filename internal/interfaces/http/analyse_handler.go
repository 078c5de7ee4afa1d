package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/application/usecase"
	"github.com/phardev/pharmanalyse-api/internal/domain"
)

// ParetoPDFGenerator genera el informe imprimible del análisis de Pareto.
type ParetoPDFGenerator interface {
	Generate(ctx context.Context, analyse *dto.AnalyseParetoDTO) ([]byte, error)
}

// AnalyseHandler maneja los endpoints analíticos.
type AnalyseHandler struct {
	marge        *usecase.MargeUseCase
	stock        *usecase.StockUseCase
	pareto       *usecase.ParetoUseCase
	abcxyz       *usecase.ABCXYZUseCase
	saisonnalite *usecase.SaisonnaliteUseCase
	evolution    *usecase.EvolutionUseCase
	paretoPDF    ParetoPDFGenerator
}

// NewAnalyseHandler construye el handler analítico.
func NewAnalyseHandler(
	marge *usecase.MargeUseCase,
	stock *usecase.StockUseCase,
	pareto *usecase.ParetoUseCase,
	abcxyz *usecase.ABCXYZUseCase,
	saisonnalite *usecase.SaisonnaliteUseCase,
	evolution *usecase.EvolutionUseCase,
	paretoPDF ParetoPDFGenerator,
) *AnalyseHandler {
	return &AnalyseHandler{
		marge:        marge,
		stock:        stock,
		pareto:       pareto,
		abcxyz:       abcxyz,
		saisonnalite: saisonnalite,
		evolution:    evolution,
		paretoPDF:    paretoPDF,
	}
}

// scopeFilters acota el análisis a la farmacia del token si la petición no
// trae un filtro explícito.
func scopeFilters(c *fiber.Ctx, f *dto.ProduitFilters) {
	if f.PharmacieID == "" {
		f.PharmacieID = GetPharmacieID(c)
	}
}

// respondAnalyseError traduce el error del caso de uso: los parámetros
// inválidos son culpa del cliente, el resto es interno.
func respondAnalyseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Marge godoc
// @Summary      Analyse de marge contre un seuil
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        seuil_marge  query  number  true   "Seuil de marge en % (0-100)"
// @Param        mode         query  string  true   "below ou above"
// @Param        pharmacie_id query  string  false  "Filtre pharmacie (défaut : celle du token)"
// @Param        fournisseur_id query string false  "Filtre fournisseur"
// @Param        famille_id   query  string  false  "Filtre famille"
// @Param        ean13        query  string  false  "Filtre code EAN13"
// @Success      200  {object}  dto.AnalyseMargeDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/marge [get]
func (h *AnalyseHandler) Marge(c *fiber.Ctx) error {
	var req dto.MargeRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.marge.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}

// Stock godoc
// @Summary      Analyse de couverture de stock en mois
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        seuil_mois_stock  query  number  true  "Seuil en mois de couverture (0-120)"
// @Param        mode              query  string  true  "below ou above"
// @Success      200  {object}  dto.AnalyseStockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/stock [get]
func (h *AnalyseHandler) Stock(c *fiber.Ctx) error {
	var req dto.StockRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.stock.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}

// Pareto godoc
// @Summary      Analyse de concentration du CA (Pareto)
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        seuil_pareto  query  number  false  "Seuil en % du CA (défaut 80)"
// @Param        date_debut    query  string  true   "Début de période (YYYY-MM-DD)"
// @Param        date_fin      query  string  true   "Fin de période (YYYY-MM-DD)"
// @Success      200  {object}  dto.AnalyseParetoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/pareto [get]
func (h *AnalyseHandler) Pareto(c *fiber.Ctx) error {
	var req dto.ParetoRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.pareto.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}

// ParetoPDF godoc
// @Summary      Analyse de Pareto au format PDF
// @Tags         analyse
// @Security     Bearer
// @Produce      application/pdf
// @Param        seuil_pareto  query  number  false  "Seuil en % du CA (défaut 80)"
// @Param        date_debut    query  string  true   "Début de période (YYYY-MM-DD)"
// @Param        date_fin      query  string  true   "Fin de période (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/pareto/pdf [get]
func (h *AnalyseHandler) ParetoPDF(c *fiber.Ctx) error {
	var req dto.ParetoRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.pareto.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	pdfBytes, err := h.paretoPDF.Generate(c.Context(), res)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}

	filename := fmt.Sprintf("pareto_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ABCXYZ godoc
// @Summary      Classification croisée ABC/XYZ
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        date_debut   query  string  true   "Début de période (YYYY-MM-DD)"
// @Param        date_fin     query  string  true   "Fin de période (YYYY-MM-DD)"
// @Param        seuil_abc_a  query  number  false  "Seuil classe A en % cumulé (défaut 80)"
// @Param        seuil_abc_b  query  number  false  "Seuil classe B en % cumulé (défaut 95)"
// @Param        seuil_xyz_x  query  number  false  "Seuil CV classe X (défaut 0.5)"
// @Param        seuil_xyz_y  query  number  false  "Seuil CV classe Y (défaut 1.0)"
// @Success      200  {object}  dto.AnalyseABCXYZDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/abc-xyz [get]
func (h *AnalyseHandler) ABCXYZ(c *fiber.Ctx) error {
	var req dto.ABCXYZRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.abcxyz.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}

// Saisonnalite godoc
// @Summary      Analyse de saisonnalité et prévision de demande
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        periode_historique_annees  query  int     false  "Années d'historique (défaut 3)"
// @Param        seuil_amplitude_forte      query  number  false  "Amplitude FORTE (défaut 1.5)"
// @Param        seuil_amplitude_moyenne    query  number  false  "Amplitude MOYENNE (défaut 0.8)"
// @Param        nb_mois_prevision          query  int     false  "Mois de prévision (défaut 6)"
// @Success      200  {object}  dto.AnalyseSaisonnaliteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/saisonnalite [get]
func (h *AnalyseHandler) Saisonnalite(c *fiber.Ctx) error {
	var req dto.SaisonnaliteRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.saisonnalite.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}

// Evolution godoc
// @Summary      Comparaison de périodes (évolution du CA et des volumes)
// @Tags         analyse
// @Security     Bearer
// @Produce      json
// @Param        date_debut  query  string  true  "Début de période (YYYY-MM-DD)"
// @Param        date_fin    query  string  true  "Fin de période (YYYY-MM-DD)"
// @Success      200  {object}  dto.AnalyseEvolutionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analyse/evolution [get]
func (h *AnalyseHandler) Evolution(c *fiber.Ctx) error {
	var req dto.EvolutionRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "paramètres de requête invalides"})
	}
	scopeFilters(c, &req.ProduitFilters)

	res, err := h.evolution.Analyse(c.Context(), req)
	if err != nil {
		return respondAnalyseError(c, err)
	}
	return c.JSON(res)
}
