package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de los analizadores. Reproducen el
// contrato de los repositorios Postgres, incluida la selección de período de
// las ventas (mismo año acotado por meses, multi-año por años completos).

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) FindActive(_ context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.Status != entity.ProductStatusActive {
			continue
		}
		if filter.PharmacyID != "" && p.PharmacyID != filter.PharmacyID {
			continue
		}
		if filter.FamilyID != "" && p.FamilyID != filter.FamilyID {
			continue
		}
		if filter.EAN13 != "" && p.EAN13 != filter.EAN13 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakePriceRepo struct {
	purchases []entity.PurchasePrice
	sales     []entity.SalePrice
}

func (f *fakePriceRepo) LatestPurchasePrices(_ context.Context, ids []string) ([]entity.PurchasePrice, error) {
	wanted := idSet(ids)
	latest := map[string]entity.PurchasePrice{}
	for _, pp := range f.purchases {
		if _, ok := wanted[pp.ProductID]; !ok {
			continue
		}
		if cur, ok := latest[pp.ProductID]; !ok || pp.ImportedAt.After(cur.ImportedAt) {
			latest[pp.ProductID] = pp
		}
	}
	out := make([]entity.PurchasePrice, 0, len(latest))
	for _, pp := range latest {
		out = append(out, pp)
	}
	return out, nil
}

func (f *fakePriceRepo) LatestSalePrices(_ context.Context, ids []string) ([]entity.SalePrice, error) {
	wanted := idSet(ids)
	latest := map[string]entity.SalePrice{}
	for _, sp := range f.sales {
		if _, ok := wanted[sp.ProductID]; !ok {
			continue
		}
		if cur, ok := latest[sp.ProductID]; !ok || sp.ExtractedAt.After(cur.ExtractedAt) {
			latest[sp.ProductID] = sp
		}
	}
	out := make([]entity.SalePrice, 0, len(latest))
	for _, sp := range latest {
		out = append(out, sp)
	}
	return out, nil
}

func (f *fakePriceRepo) ProductIDsBySupplier(_ context.Context, supplierID string) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, pp := range f.purchases {
		if pp.SupplierID != supplierID {
			continue
		}
		if _, ok := seen[pp.ProductID]; ok {
			continue
		}
		seen[pp.ProductID] = struct{}{}
		out = append(out, pp.ProductID)
	}
	return out, nil
}

type fakeSalesRepo struct {
	rows []entity.MonthlySale
}

func (f *fakeSalesRepo) MonthlySales(_ context.Context, ids []string, from, to time.Time) ([]entity.MonthlySale, error) {
	wanted := idSet(ids)
	var out []entity.MonthlySale
	for _, row := range f.rows {
		if _, ok := wanted[row.ProductID]; !ok {
			continue
		}
		if from.Year() == to.Year() {
			if row.Year == from.Year() && row.Month >= int(from.Month()) && row.Month <= int(to.Month()) {
				out = append(out, row)
			}
			continue
		}
		if row.Year >= from.Year() && row.Year <= to.Year() {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	rows []entity.Stock
}

func (f *fakeStockRepo) LatestStocks(_ context.Context, ids []string) ([]entity.Stock, error) {
	wanted := idSet(ids)
	latest := map[string]entity.Stock{}
	for _, row := range f.rows {
		if _, ok := wanted[row.ProductID]; !ok {
			continue
		}
		if cur, ok := latest[row.ProductID]; !ok || row.ExtractedAt.After(cur.ExtractedAt) {
			latest[row.ProductID] = row
		}
	}
	out := make([]entity.Stock, 0, len(latest))
	for _, row := range latest {
		out = append(out, row)
	}
	return out, nil
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// ── Constructores de fixtures ────────────────────────────────────────────────

func activeProduct(id, name string) entity.Product {
	return entity.Product{
		ID:         id,
		EAN13:      "340000000000" + id,
		Name:       name,
		FamilyID:   "fam-1",
		PharmacyID: "ph-1",
		Status:     entity.ProductStatusActive,
	}
}

func purchaseAt(productID string, costHT float64, at time.Time) entity.PurchasePrice {
	return entity.PurchasePrice{
		ProductID:  productID,
		SupplierID: "four-1",
		NetCostHT:  decimal.NewFromFloat(costHT),
		ImportedAt: at,
	}
}

func saleAt(productID string, priceTTC float64, at time.Time) entity.SalePrice {
	return entity.SalePrice{
		ProductID:   productID,
		PriceTTC:    decimal.NewFromFloat(priceTTC),
		ExtractedAt: at,
	}
}

func stockAt(productID string, shelf, reserve int64, at time.Time) entity.Stock {
	return entity.Stock{
		ProductID:   productID,
		ShelfQty:    decimal.NewFromInt(shelf),
		ReserveQty:  decimal.NewFromInt(reserve),
		ExtractedAt: at,
	}
}

func newBuilder(products *fakeProductRepo, prices *fakePriceRepo, sales *fakeSalesRepo, stocks *fakeStockRepo) *DatasetBuilder {
	return NewDatasetBuilder(products, prices, sales, stocks)
}

func fixedNow(t time.Time) Clock {
	return func() time.Time { return t }
}
