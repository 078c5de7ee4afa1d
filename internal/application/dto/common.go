package dto

import (
	"fmt"
	"time"
)

// Modos de comparación con el umbral de los analizadores marge/stock.
const (
	ModeBelow = "below"
	ModeAbove = "above"
)

// DateLayout formato de las fechas de la API (date_debut / date_fin).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Diagnostic trío de diagnóstico devuelto con cada análisis: descripción
// legible de la consulta masiva equivalente, duración y número de filas.
// Lo consume la capa de presentación; no interviene en ningún cálculo.
type Diagnostic struct {
	Requete  string `json:"requete"`
	DureeMs  int64  `json:"duree_ms"`
	NbLignes int    `json:"nb_lignes"`
}

// ProduitFilters filtros opcionales comunes a todos los analizadores.
// Un campo vacío no filtra.
type ProduitFilters struct {
	PharmacieID   string `query:"pharmacie_id" json:"pharmacie_id,omitempty"`
	FournisseurID string `query:"fournisseur_id" json:"fournisseur_id,omitempty"`
	FamilleID     string `query:"famille_id" json:"famille_id,omitempty"`
	EAN13         string `query:"ean13" json:"ean13,omitempty"`
}

// ParsePeriode parsea y valida un rango [date_debut, date_fin].
// Ambas fechas son obligatorias y deben ser cronológicas.
func ParsePeriode(dateDebut, dateFin string) (from, to time.Time, err error) {
	if dateDebut == "" || dateFin == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("date_debut et date_fin sont obligatoires (format %s)", DateLayout)
	}
	from, err = time.Parse(DateLayout, dateDebut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date_debut invalide: %s", dateDebut)
	}
	to, err = time.Parse(DateLayout, dateFin)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date_fin invalide: %s", dateFin)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("date_debut doit précéder date_fin")
	}
	return from, to, nil
}

func validateMode(mode string) error {
	if mode != ModeBelow && mode != ModeAbove {
		return fmt.Errorf("mode doit valoir %q ou %q", ModeBelow, ModeAbove)
	}
	return nil
}
