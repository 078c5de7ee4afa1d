package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasePrice precio de compra neto (HT) de un producto para un proveedor.
// Puede haber varias filas por producto (historial); la más reciente por
// ImportedAt es la vigente.
type PurchasePrice struct {
	ProductID  string          `db:"produit_id"`
	SupplierID string          `db:"fournisseur_id"`
	NetCostHT  decimal.Decimal `db:"prix_achat_ht"`
	ImportedAt time.Time       `db:"date_import"`
}

// SalePrice precio de venta TTC de un producto, con promoción opcional.
// La fila más reciente por ExtractedAt es la vigente.
type SalePrice struct {
	ProductID   string           `db:"produit_id"`
	PriceTTC    decimal.Decimal  `db:"prix_vente_ttc"`
	PromoPrice  *decimal.Decimal `db:"prix_promo"`
	PromoStart  *time.Time       `db:"promo_debut"`
	PromoEnd    *time.Time       `db:"promo_fin"`
	ExtractedAt time.Time        `db:"date_extraction"`
}

// PromoActiveAt indica si la promoción está activa en el instante dado:
// existe un precio promo y now cae dentro de [PromoStart, PromoEnd] inclusive.
func (sp SalePrice) PromoActiveAt(now time.Time) bool {
	if sp.PromoPrice == nil || sp.PromoStart == nil || sp.PromoEnd == nil {
		return false
	}
	return !now.Before(*sp.PromoStart) && !now.After(*sp.PromoEnd)
}

// EffectivePriceAt devuelve el precio de venta efectivo TTC en el instante dado:
// el precio promo si la promoción está activa, si no el precio base.
func (sp SalePrice) EffectivePriceAt(now time.Time) decimal.Decimal {
	if sp.PromoActiveAt(now) {
		return *sp.PromoPrice
	}
	return sp.PriceTTC
}
