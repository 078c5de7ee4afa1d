package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceRepository sobre PostgreSQL.
// Las consultas "más reciente por producto" usan DISTINCT ON con un ORDER BY
// secundario por id para que los empates de fecha sean deterministas.
type PriceRepo struct {
	pool *pgxpool.Pool
}

// NewPriceRepository construye el adaptador de lectura de precios.
func NewPriceRepository(pool *pgxpool.Pool) *PriceRepo {
	return &PriceRepo{pool: pool}
}

const latestPurchasePricesSQL = `
	SELECT DISTINCT ON (produit_id)
	       produit_id, fournisseur_id, prix_achat_ht, date_import
	FROM prix_achats
	WHERE produit_id = ANY($1)
	ORDER BY produit_id, date_import DESC, id DESC`

// LatestPurchasePrices devuelve la fila de compra más reciente por producto.
func (r *PriceRepo) LatestPurchasePrices(ctx context.Context, productIDs []string) ([]entity.PurchasePrice, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, latestPurchasePricesSQL, productIDs)
	if err != nil {
		return nil, fmt.Errorf("select prix d'achat: %w", err)
	}
	defer rows.Close()

	var out []entity.PurchasePrice
	for rows.Next() {
		var pp entity.PurchasePrice
		if err := rows.Scan(&pp.ProductID, &pp.SupplierID, &pp.NetCostHT, &pp.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan prix d'achat: %w", err)
		}
		out = append(out, pp)
	}
	return out, rows.Err()
}

const latestSalePricesSQL = `
	SELECT DISTINCT ON (produit_id)
	       produit_id, prix_vente_ttc, prix_promo, promo_debut, promo_fin, date_extraction
	FROM prix_ventes
	WHERE produit_id = ANY($1)
	ORDER BY produit_id, date_extraction DESC, id DESC`

// LatestSalePrices devuelve la fila de venta más reciente por producto.
func (r *PriceRepo) LatestSalePrices(ctx context.Context, productIDs []string) ([]entity.SalePrice, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, latestSalePricesSQL, productIDs)
	if err != nil {
		return nil, fmt.Errorf("select prix de vente: %w", err)
	}
	defer rows.Close()

	var out []entity.SalePrice
	for rows.Next() {
		var sp entity.SalePrice
		if err := rows.Scan(&sp.ProductID, &sp.PriceTTC, &sp.PromoPrice, &sp.PromoStart, &sp.PromoEnd, &sp.ExtractedAt); err != nil {
			return nil, fmt.Errorf("scan prix de vente: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

const productIDsBySupplierSQL = `
	SELECT DISTINCT produit_id
	FROM prix_achats
	WHERE fournisseur_id = $1`

// ProductIDsBySupplier devuelve los ids de producto con al menos una fila de
// precio de compra del proveedor dado.
func (r *PriceRepo) ProductIDsBySupplier(ctx context.Context, supplierID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, productIDsBySupplierSQL, supplierID)
	if err != nil {
		return nil, fmt.Errorf("select produits fournisseur: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan produit fournisseur: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
