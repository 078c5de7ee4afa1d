package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock fotografía del stock de un producto en un momento dado.
// La fila más reciente por ExtractedAt es la vigente.
type Stock struct {
	ProductID   string          `db:"produit_id"`
	ShelfQty    decimal.Decimal `db:"quantite_rayon"`
	ReserveQty  decimal.Decimal `db:"quantite_reserve"`
	ExtractedAt time.Time       `db:"date_extraction"`
}

// Total devuelve el stock total disponible (rayón + reserva).
func (s Stock) Total() decimal.Decimal {
	return s.ShelfQty.Add(s.ReserveQty)
}
