package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Valores por defecto de los umbrales ABC/XYZ.
const (
	defaultSeuilABCA = 80.0
	defaultSeuilABCB = 95.0
	defaultSeuilXYZX = 0.5
	defaultSeuilXYZY = 1.0
)

// ABCXYZRequest parámetros de GET /api/analyse/abc-xyz.
type ABCXYZRequest struct {
	ProduitFilters
	DateDebut string  `query:"date_debut" json:"date_debut"`
	DateFin   string  `query:"date_fin" json:"date_fin"`
	SeuilABCA float64 `query:"seuil_abc_a" json:"seuil_abc_a"` // default 80
	SeuilABCB float64 `query:"seuil_abc_b" json:"seuil_abc_b"` // default 95
	SeuilXYZX float64 `query:"seuil_xyz_x" json:"seuil_xyz_x"` // default 0.5
	SeuilXYZY float64 `query:"seuil_xyz_y" json:"seuil_xyz_y"` // default 1.0
}

// ApplyDefaults aplica los umbrales por defecto a los campos no provistos.
func (r *ABCXYZRequest) ApplyDefaults() {
	if r.SeuilABCA == 0 {
		r.SeuilABCA = defaultSeuilABCA
	}
	if r.SeuilABCB == 0 {
		r.SeuilABCB = defaultSeuilABCB
	}
	if r.SeuilXYZX == 0 {
		r.SeuilXYZX = defaultSeuilXYZX
	}
	if r.SeuilXYZY == 0 {
		r.SeuilXYZY = defaultSeuilXYZY
	}
}

// Validate valida umbrales y período antes de cualquier acceso a datos.
func (r ABCXYZRequest) Validate() error {
	if r.SeuilABCA < 50 || r.SeuilABCA > 95 {
		return fmt.Errorf("seuil_abc_a doit être compris entre 50 et 95")
	}
	if r.SeuilABCB < 85 || r.SeuilABCB > 99 {
		return fmt.Errorf("seuil_abc_b doit être compris entre 85 et 99")
	}
	if r.SeuilABCA >= r.SeuilABCB {
		return fmt.Errorf("seuil_abc_a doit être inférieur à seuil_abc_b")
	}
	if r.SeuilXYZX < 0.1 || r.SeuilXYZX > 2.0 {
		return fmt.Errorf("seuil_xyz_x doit être compris entre 0.1 et 2.0")
	}
	if r.SeuilXYZY < 0.5 || r.SeuilXYZY > 3.0 {
		return fmt.Errorf("seuil_xyz_y doit être compris entre 0.5 et 3.0")
	}
	if r.SeuilXYZX >= r.SeuilXYZY {
		return fmt.Errorf("seuil_xyz_x doit être inférieur à seuil_xyz_y")
	}
	_, _, err := ParsePeriode(r.DateDebut, r.DateFin)
	return err
}

// ABCXYZProduitDTO producto con su clasificación cruzada.
type ABCXYZProduitDTO struct {
	ProduitID            string          `json:"produit_id"`
	EAN13                string          `json:"ean13"`
	Nom                  string          `json:"nom"`
	CA                   decimal.Decimal `json:"ca"`
	PourcentageCA        decimal.Decimal `json:"pourcentage_ca"`
	PourcentageCumule    decimal.Decimal `json:"pourcentage_cumule"`
	ClasseABC            string          `json:"classe_abc"`
	CoefficientVariation float64         `json:"coefficient_variation"`
	ClasseXYZ            string          `json:"classe_xyz"`
	ClassificationFinale string          `json:"classification_finale"` // AX..CZ
	Strategie            string          `json:"strategie"`
	Actions              []string        `json:"actions"`
}

// ABCXYZCelluleDTO una celda de la matriz 3×3.
type ABCXYZCelluleDTO struct {
	Classification string          `json:"classification"` // AX..CZ
	NbProduits     int             `json:"nb_produits"`
	CA             decimal.Decimal `json:"ca"`
	PourcentageCA  decimal.Decimal `json:"pourcentage_ca"`
	Strategie      string          `json:"strategie"`
	Actions        []string        `json:"actions"`
}

// ABCXYZResumeDTO recomendaciones agregadas por familia de celdas.
type ABCXYZResumeDTO struct {
	PrioriteAbsolue int `json:"priorite_absolue"` // |AX|
	Surveillance    int `json:"surveillance"`     // |AY| + |AZ|
	Automatisable   int `json:"automatisable"`    // |BX| + |CX|
	Depriorises     int `json:"depriorises"`      // |CZ|
	NbProduits      int `json:"nb_produits"`
}

// AnalyseABCXYZDTO respuesta completa de la clasificación ABC/XYZ.
type AnalyseABCXYZDTO struct {
	Criteres   ABCXYZRequest      `json:"criteres"`
	Produits   []ABCXYZProduitDTO `json:"produits"`
	Matrice    []ABCXYZCelluleDTO `json:"matrice"` // 9 celdas en orden AX..CZ
	Resume     ABCXYZResumeDTO    `json:"resume"`
	Diagnostic Diagnostic         `json:"diagnostic"`
}
