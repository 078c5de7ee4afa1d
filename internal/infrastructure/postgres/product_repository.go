package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewProductRepository construye el adaptador de lectura del catálogo.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindActive devuelve los productos ACTIVE que cumplen el filtro.
// El WHERE se compone dinámicamente: un campo vacío no añade condición.
func (r *ProductRepo) FindActive(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	q := r.builder.
		Select("id", "code_13_ref", "nom", "famille_id", "pharmacie_id", "taux_tva", "statut").
		From("produits").
		Where(squirrel.Eq{"statut": entity.ProductStatusActive}).
		OrderBy("nom")

	if filter.PharmacyID != "" {
		q = q.Where(squirrel.Eq{"pharmacie_id": filter.PharmacyID})
	}
	if filter.FamilyID != "" {
		q = q.Where(squirrel.Eq{"famille_id": filter.FamilyID})
	}
	if filter.EAN13 != "" {
		q = q.Where(squirrel.Eq{"code_13_ref": filter.EAN13})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query produits: %w", err)
	}

	products := []entity.Product{}
	if err := pgxscan.Select(ctx, r.pool, &products, sql, args...); err != nil {
		return nil, fmt.Errorf("select produits: %w", err)
	}
	return products, nil
}
