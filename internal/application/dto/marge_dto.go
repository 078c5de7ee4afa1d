package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MargeRequest parámetros de GET /api/analyse/marge.
type MargeRequest struct {
	ProduitFilters
	SeuilMarge float64 `query:"seuil_marge" json:"seuil_marge"`
	Mode       string  `query:"mode" json:"mode"` // below | above
}

// Validate valida los parámetros antes de cualquier acceso a datos.
func (r MargeRequest) Validate() error {
	if r.SeuilMarge < 0 || r.SeuilMarge > 100 {
		return fmt.Errorf("seuil_marge doit être compris entre 0 et 100")
	}
	return validateMode(r.Mode)
}

// MargeProduitDTO producto retenido por el análisis de margen.
type MargeProduitDTO struct {
	ProduitID    string          `json:"produit_id"`
	EAN13        string          `json:"ean13"`
	Nom          string          `json:"nom"`
	PrixVenteTTC decimal.Decimal `json:"prix_vente_ttc"` // precio efectivo (promo incluida)
	PrixAchatTTC decimal.Decimal `json:"prix_achat_ttc"` // coste neto + TVA
	MargePct     decimal.Decimal `json:"marge_pct"`
	EcartSeuil   decimal.Decimal `json:"ecart_seuil"` // marge_pct - seuil
	CA12Mois     decimal.Decimal `json:"ca_12_mois"`
	Quantite12M  int64           `json:"quantite_12_mois"`
}

// MargeResumeDTO agregados sobre el conjunto filtrado.
type MargeResumeDTO struct {
	MargeMoyennePonderee decimal.Decimal `json:"marge_moyenne_ponderee"` // ponderada por CA
	CATotal              decimal.Decimal `json:"ca_total"`
	QuantiteTotale       int64           `json:"quantite_totale"`
	NbProduits           int             `json:"nb_produits"`
}

// AnalyseMargeDTO respuesta completa del análisis de margen.
type AnalyseMargeDTO struct {
	Criteres   MargeRequest      `json:"criteres"`
	Produits   []MargeProduitDTO `json:"produits"`
	Resume     MargeResumeDTO    `json:"resume"`
	Diagnostic Diagnostic        `json:"diagnostic"`
}
