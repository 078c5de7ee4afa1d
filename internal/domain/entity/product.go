package entity

import "github.com/shopspring/decimal"

// Estados posibles de un producto. Solo los ACTIVE entran en los análisis.
const (
	ProductStatusActive   = "ACTIVE"
	ProductStatusInactive = "INACTIVE"
)

// Product representa un producto del catálogo de la farmacia tal como llega
// del import del LGO (logiciel de gestion d'officine). Solo lectura: la capa
// analítica nunca lo modifica.
type Product struct {
	ID          string           `db:"id"`
	EAN13       string           `db:"code_13_ref"` // código de barras principal
	Name        string           `db:"nom"`
	FamilyID    string           `db:"famille_id"`
	PharmacyID  string           `db:"pharmacie_id"`
	VATRate     *decimal.Decimal `db:"taux_tva"` // porcentaje; nil -> 20 por defecto
	Status      string           `db:"statut"`
}

// VATRateOrDefault devuelve el taux de TVA del producto, o 20% si no está definido.
func (p Product) VATRateOrDefault() decimal.Decimal {
	if p.VATRate == nil {
		return decimal.NewFromInt(20)
	}
	return *p.VATRate
}
