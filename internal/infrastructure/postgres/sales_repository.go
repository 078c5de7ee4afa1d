package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador de lectura de ventas mensuales.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

const monthlySalesSameYearSQL = `
	SELECT produit_id, annee, mois, quantite
	FROM ventes_mensuelles
	WHERE produit_id = ANY($1)
	  AND annee = $2
	  AND mois BETWEEN $3 AND $4
	ORDER BY produit_id, annee, mois`

const monthlySalesMultiYearSQL = `
	SELECT produit_id, annee, mois, quantite
	FROM ventes_mensuelles
	WHERE produit_id = ANY($1)
	  AND annee BETWEEN $2 AND $3
	ORDER BY produit_id, annee, mois`

// MonthlySales devuelve las filas de venta mensual del período.
// Un rango dentro del mismo año acota los meses; un rango multi-año toma los
// años completos, sin acotar los meses de los años frontera (contrato del
// puerto, heredado del import histórico).
func (r *SalesRepo) MonthlySales(ctx context.Context, productIDs []string, from, to time.Time) ([]entity.MonthlySale, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var rows pgx.Rows
	var err error
	if from.Year() == to.Year() {
		rows, err = r.pool.Query(ctx, monthlySalesSameYearSQL,
			productIDs, from.Year(), int(from.Month()), int(to.Month()))
	} else {
		rows, err = r.pool.Query(ctx, monthlySalesMultiYearSQL,
			productIDs, from.Year(), to.Year())
	}
	if err != nil {
		return nil, fmt.Errorf("select ventes mensuelles: %w", err)
	}
	defer rows.Close()

	var out []entity.MonthlySale
	for rows.Next() {
		var ms entity.MonthlySale
		if err := rows.Scan(&ms.ProductID, &ms.Year, &ms.Month, &ms.Quantity); err != nil {
			return nil, fmt.Errorf("scan vente mensuelle: %w", err)
		}
		out = append(out, ms)
	}
	return out, rows.Err()
}
