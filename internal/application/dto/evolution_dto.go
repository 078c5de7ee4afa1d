package dto

import (
	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

// EvolutionRequest parámetros de GET /api/analyse/evolution.
// El período de referencia es el inmediatamente anterior, de igual duración.
type EvolutionRequest struct {
	ProduitFilters
	DateDebut string `query:"date_debut" json:"date_debut"`
	DateFin   string `query:"date_fin" json:"date_fin"`
}

// Validate valida el período antes de cualquier acceso a datos.
func (r EvolutionRequest) Validate() error {
	_, _, err := ParsePeriode(r.DateDebut, r.DateFin)
	return err
}

// PeriodeKPIDTO indicadores de un período.
type PeriodeKPIDTO struct {
	DateDebut                string          `json:"date_debut"`
	DateFin                  string          `json:"date_fin"`
	CA                       decimal.Decimal `json:"ca"`
	Quantite                 int64           `json:"quantite"`
	NbProduitsVendus         int             `json:"nb_produits_vendus"`
	QuantiteMoyenneMensuelle decimal.Decimal `json:"quantite_moyenne_mensuelle"`
}

// EvolutionsDTO variaciones porcentuales entre los dos períodos (N/A si la
// referencia es cero).
type EvolutionsDTO struct {
	CA               analyse.Delta `json:"ca"`
	Quantite         analyse.Delta `json:"quantite"`
	NbProduitsVendus analyse.Delta `json:"nb_produits_vendus"`
}

// AnalyseEvolutionDTO respuesta completa de la comparación de períodos.
type AnalyseEvolutionDTO struct {
	Criteres          EvolutionRequest `json:"criteres"`
	PeriodeCourante   PeriodeKPIDTO    `json:"periode_courante"`
	PeriodePrecedente PeriodeKPIDTO    `json:"periode_precedente"`
	Evolutions        EvolutionsDTO    `json:"evolutions"`
	Diagnostic        Diagnostic       `json:"diagnostic"`
}
