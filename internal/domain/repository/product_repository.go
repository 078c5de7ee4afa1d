package repository

import (
	"context"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// ProductFilter criterios opcionales de selección de productos.
// Campos vacíos no filtran. El filtro por proveedor NO está aquí: los
// proveedores se relacionan con los productos vía precios de compra, así que
// se resuelve con PriceRepository.ProductIDsBySupplier y una intersección.
type ProductFilter struct {
	PharmacyID string
	FamilyID   string
	EAN13      string
}

// ProductRepository consultas de lectura sobre el catálogo de productos.
type ProductRepository interface {
	// FindActive devuelve los productos ACTIVE que cumplen el filtro.
	// Sin coincidencias devuelve slice vacío, nunca error.
	FindActive(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
}
