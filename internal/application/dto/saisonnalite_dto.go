package dto

import "fmt"

// Valores por defecto del análisis de saisonnalité.
const (
	defaultPeriodeHistorique = 3
	defaultSeuilForte        = 1.5
	defaultSeuilMoyenne      = 0.8
	defaultNbMoisPrevision   = 6
)

// SaisonnaliteRequest parámetros de GET /api/analyse/saisonnalite.
// Todos opcionales; los ceros reciben los valores por defecto.
type SaisonnaliteRequest struct {
	ProduitFilters
	PeriodeHistoriqueAnnees int     `query:"periode_historique_annees" json:"periode_historique_annees"` // default 3
	SeuilAmplitudeForte     float64 `query:"seuil_amplitude_forte" json:"seuil_amplitude_forte"`         // default 1.5
	SeuilAmplitudeMoyenne   float64 `query:"seuil_amplitude_moyenne" json:"seuil_amplitude_moyenne"`     // default 0.8
	NbMoisPrevision         int     `query:"nb_mois_prevision" json:"nb_mois_prevision"`                 // default 6
}

// ApplyDefaults aplica los valores por defecto a los campos no provistos.
func (r *SaisonnaliteRequest) ApplyDefaults() {
	if r.PeriodeHistoriqueAnnees == 0 {
		r.PeriodeHistoriqueAnnees = defaultPeriodeHistorique
	}
	if r.SeuilAmplitudeForte == 0 {
		r.SeuilAmplitudeForte = defaultSeuilForte
	}
	if r.SeuilAmplitudeMoyenne == 0 {
		r.SeuilAmplitudeMoyenne = defaultSeuilMoyenne
	}
	if r.NbMoisPrevision == 0 {
		r.NbMoisPrevision = defaultNbMoisPrevision
	}
}

// Validate valida los parámetros antes de cualquier acceso a datos.
func (r SaisonnaliteRequest) Validate() error {
	if r.PeriodeHistoriqueAnnees < 1 || r.PeriodeHistoriqueAnnees > 10 {
		return fmt.Errorf("periode_historique_annees doit être compris entre 1 et 10")
	}
	if r.SeuilAmplitudeForte < 0.5 || r.SeuilAmplitudeForte > 5.0 {
		return fmt.Errorf("seuil_amplitude_forte doit être compris entre 0.5 et 5.0")
	}
	if r.SeuilAmplitudeMoyenne < 0.2 || r.SeuilAmplitudeMoyenne > 3.0 {
		return fmt.Errorf("seuil_amplitude_moyenne doit être compris entre 0.2 et 3.0")
	}
	if r.SeuilAmplitudeForte <= r.SeuilAmplitudeMoyenne {
		return fmt.Errorf("seuil_amplitude_forte doit être supérieur à seuil_amplitude_moyenne")
	}
	if r.NbMoisPrevision < 1 || r.NbMoisPrevision > 24 {
		return fmt.Errorf("nb_mois_prevision doit être compris entre 1 et 24")
	}
	return nil
}

// PrevisionDTO previsión de demanda de un mes futuro.
type PrevisionDTO struct {
	Mois           string  `json:"mois"` // YYYY-MM
	QuantitePrevue float64 `json:"quantite_prevue"`
	StockMin       int     `json:"stock_min"` // ~15 días de cobertura
	StockMax       int     `json:"stock_max"` // ~45 días de cobertura
	Confiance      string  `json:"confiance"` // ELEVEE | MOYENNE | FAIBLE
}

// SaisonnaliteProduitDTO perfil estacional completo de un producto.
type SaisonnaliteProduitDTO struct {
	ProduitID          string         `json:"produit_id"`
	EAN13              string         `json:"ean13"`
	Nom                string         `json:"nom"`
	MoyennesMensuelles [12]float64    `json:"moyennes_mensuelles"`
	Coefficients       [12]float64    `json:"coefficients_saisonniers"`
	Amplitude          float64        `json:"amplitude"`
	TypeSaisonnalite   string         `json:"type_saisonnalite"` // FORTE | MOYENNE | FAIBLE | AUCUNE
	MoisPic            int            `json:"mois_pic"`
	MoisCreux          int            `json:"mois_creux"`
	TendanceAnnuelle   float64        `json:"tendance_annuelle"` // fracción anual, ej. 0.08 = +8%/an
	NiveauSurveillance string         `json:"niveau_surveillance"`
	Recommandations    []string       `json:"recommandations"`
	Previsions         []PrevisionDTO `json:"previsions"`
}

// TopSaisonnierDTO entrada de un top-5 estacional.
type TopSaisonnierDTO struct {
	ProduitID string  `json:"produit_id"`
	EAN13     string  `json:"ean13"`
	Nom       string  `json:"nom"`
	Valeur    float64 `json:"valeur"` // amplitud o volumen según el top
}

// SaisonnaliteTopsDTO los cuatro tops del análisis.
type SaisonnaliteTopsDTO struct {
	TopAmplitude []TopSaisonnierDTO `json:"top_amplitude"`  // FORTE únicamente
	TopPicsHiver []TopSaisonnierDTO `json:"top_pics_hiver"` // pico en nov..feb
	TopPicsEte   []TopSaisonnierDTO `json:"top_pics_ete"`   // pico en jun..ago
	TopVolume    []TopSaisonnierDTO `json:"top_volume"`     // FORTE/MOYENNE por volumen
}

// AnalyseSaisonnaliteDTO respuesta completa del análisis de saisonnalité.
type AnalyseSaisonnaliteDTO struct {
	Criteres   SaisonnaliteRequest      `json:"criteres"`
	Produits   []SaisonnaliteProduitDTO `json:"produits"`
	Tops       SaisonnaliteTopsDTO      `json:"tops"`
	Diagnostic Diagnostic               `json:"diagnostic"`
}
