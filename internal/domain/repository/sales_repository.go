package repository

import (
	"context"
	"time"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// SalesRepository consultas de lectura sobre ventas mensuales.
type SalesRepository interface {
	// MonthlySales devuelve las filas de venta mensual de los productos dados
	// cuyo (annee, mois) cae dentro de [from, to].
	//
	// Selección de período (comportamiento heredado del import, a conservar):
	//   - from y to en el mismo año: annee = Y AND mois BETWEEN m1 AND m2.
	//   - años distintos: annee BETWEEN y1 AND y2, SIN acotar los meses dentro
	//     de los años frontera (un rango multi-año incluye los 12 meses de
	//     ambos años extremos).
	MonthlySales(ctx context.Context, productIDs []string, from, to time.Time) ([]entity.MonthlySale, error)
}
