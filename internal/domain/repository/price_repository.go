package repository

import (
	"context"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// PriceRepository consultas de lectura sobre precios de compra y de venta.
type PriceRepository interface {
	// LatestPurchasePrices devuelve, por producto, la fila de precio de compra
	// más reciente (por date_import). Productos sin precio no aparecen.
	LatestPurchasePrices(ctx context.Context, productIDs []string) ([]entity.PurchasePrice, error)

	// LatestSalePrices devuelve, por producto, la fila de precio de venta
	// más reciente (por date_extraction). Productos sin precio no aparecen.
	LatestSalePrices(ctx context.Context, productIDs []string) ([]entity.SalePrice, error)

	// ProductIDsBySupplier devuelve los ids de producto que tienen al menos una
	// fila de precio de compra para el proveedor dado (join secundario del
	// filtro fournisseur).
	ProductIDsBySupplier(ctx context.Context, supplierID string) ([]string, error)
}
