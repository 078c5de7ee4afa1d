package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const defaultSeuilPareto = 80

// ParetoRequest parámetros de GET /api/analyse/pareto.
type ParetoRequest struct {
	ProduitFilters
	SeuilPareto float64 `query:"seuil_pareto" json:"seuil_pareto"` // default 80
	DateDebut   string  `query:"date_debut" json:"date_debut"`
	DateFin     string  `query:"date_fin" json:"date_fin"`
}

// ApplyDefaults aplica el umbral de Pareto por defecto (80%).
func (r *ParetoRequest) ApplyDefaults() {
	if r.SeuilPareto == 0 {
		r.SeuilPareto = defaultSeuilPareto
	}
}

// Validate valida los parámetros antes de cualquier acceso a datos.
func (r ParetoRequest) Validate() error {
	if r.SeuilPareto < 1 || r.SeuilPareto > 100 {
		return fmt.Errorf("seuil_pareto doit être compris entre 1 et 100")
	}
	_, _, err := ParsePeriode(r.DateDebut, r.DateFin)
	return err
}

// ParetoProduitDTO producto clasificado por CA descendente.
type ParetoProduitDTO struct {
	Rang              int             `json:"rang"`
	ProduitID         string          `json:"produit_id"`
	EAN13             string          `json:"ean13"`
	Nom               string          `json:"nom"`
	CA                decimal.Decimal `json:"ca"`
	CACumule          decimal.Decimal `json:"ca_cumule"`
	PourcentageCA     decimal.Decimal `json:"pourcentage_ca"`
	PourcentageCumule decimal.Decimal `json:"pourcentage_cumule"`
	Quantite          int64           `json:"quantite"`
	StockTotal        decimal.Decimal `json:"stock_total"`
}

// ParetoResumeDTO síntesis de la concentración del CA.
type ParetoResumeDTO struct {
	CATotal               decimal.Decimal `json:"ca_total"`
	CACible               decimal.Decimal `json:"ca_cible"` // ca_total × seuil/100
	NbProduitsTotal       int             `json:"nb_produits_total"`
	NbProduitsSeuil       int             `json:"nb_produits_seuil"` // referencias necesarias para alcanzar el objetivo
	PourcentageReferences decimal.Decimal `json:"pourcentage_references"`
}

// AnalyseParetoDTO respuesta completa del análisis de Pareto.
type AnalyseParetoDTO struct {
	Criteres   ParetoRequest      `json:"criteres"`
	Produits   []ParetoProduitDTO `json:"produits"`
	Resume     ParetoResumeDTO    `json:"resume"`
	Diagnostic Diagnostic         `json:"diagnostic"`
}
