package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

// StockRequest parámetros de GET /api/analyse/stock.
type StockRequest struct {
	ProduitFilters
	SeuilMoisStock float64 `query:"seuil_mois_stock" json:"seuil_mois_stock"`
	Mode           string  `query:"mode" json:"mode"` // below | above
}

// Validate valida los parámetros antes de cualquier acceso a datos.
func (r StockRequest) Validate() error {
	if r.SeuilMoisStock < 0 || r.SeuilMoisStock > 120 {
		return fmt.Errorf("seuil_mois_stock doit être compris entre 0 et 120")
	}
	return validateMode(r.Mode)
}

// StockProduitDTO producto con su cobertura de stock en meses.
type StockProduitDTO struct {
	ProduitID             string              `json:"produit_id"`
	EAN13                 string              `json:"ean13"`
	Nom                   string              `json:"nom"`
	StockRayon            decimal.Decimal     `json:"stock_rayon"`
	StockReserve          decimal.Decimal     `json:"stock_reserve"`
	StockTotal            decimal.Decimal     `json:"stock_total"`
	VenteMoyenneMensuelle decimal.Decimal     `json:"vente_moyenne_mensuelle"` // ventas 12 meses / 12
	MoisStock             analyse.StockMonths `json:"mois_stock"`              // número | RUPTURE | STOCK_INFINI
	EcartSeuil            analyse.Delta       `json:"ecart_seuil"`             // mois_stock - seuil, o N/A para los centinelas
}

// StockResumeDTO agregados calculados sobre el conjunto completo (sin filtrar).
type StockResumeDTO struct {
	MoisStockMoyen decimal.Decimal `json:"mois_stock_moyen"` // media de las coberturas numéricas
	NbRuptures     int             `json:"nb_ruptures"`
	NbSurstock     int             `json:"nb_surstock"` // numérico > 2×seuil, o STOCK_INFINI
	NbProduits     int             `json:"nb_produits"`
}

// AnalyseStockDTO respuesta completa del análisis de cobertura de stock.
type AnalyseStockDTO struct {
	Criteres   StockRequest      `json:"criteres"`
	Produits   []StockProduitDTO `json:"produits"`
	Resume     StockResumeDTO    `json:"resume"`
	Diagnostic Diagnostic        `json:"diagnostic"`
}
