package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de lectura de stocks.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

const latestStocksSQL = `
	SELECT DISTINCT ON (produit_id)
	       produit_id,
	       COALESCE(quantite_rayon, 0)   AS quantite_rayon,
	       COALESCE(quantite_reserve, 0) AS quantite_reserve,
	       date_extraction
	FROM stocks
	WHERE produit_id = ANY($1)
	ORDER BY produit_id, date_extraction DESC, id DESC`

// LatestStocks devuelve la fotografía de stock más reciente por producto.
func (r *StockRepo) LatestStocks(ctx context.Context, productIDs []string) ([]entity.Stock, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, latestStocksSQL, productIDs)
	if err != nil {
		return nil, fmt.Errorf("select stocks: %w", err)
	}
	defer rows.Close()

	var out []entity.Stock
	for rows.Next() {
		var st entity.Stock
		if err := rows.Scan(&st.ProductID, &st.ShelfQty, &st.ReserveQty, &st.ExtractedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
