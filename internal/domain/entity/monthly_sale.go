package entity

import "fmt"

// MonthlySale cantidad vendida de un producto en un mes calendario.
// Una fila por producto y mes (upsert idempotente en el import, aguas arriba).
type MonthlySale struct {
	ProductID string `db:"produit_id"`
	Year      int    `db:"annee"`
	Month     int    `db:"mois"` // 1..12
	Quantity  int64  `db:"quantite"`
}

// PeriodKey devuelve la clave "YYYY-MM" del mes de venta.
func (m MonthlySale) PeriodKey() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
