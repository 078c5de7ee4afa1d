package repository

import (
	"context"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// StockRepository consultas de lectura sobre fotografías de stock.
type StockRepository interface {
	// LatestStocks devuelve, por producto, la fila de stock más reciente
	// (por date_extraction). Productos sin fila de stock no aparecen.
	LatestStocks(ctx context.Context, productIDs []string) ([]entity.Stock, error)
}
