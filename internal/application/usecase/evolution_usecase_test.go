package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// evolutionFixture dos referencias:
//   - "p1" (precio 10): 10/mes en T1 2026, 20/mes en T2 2026.
//   - "p2" (precio 5): vendido únicamente en mayo 2026.
func evolutionFixture() *DatasetBuilder {
	products := &fakeProductRepo{products: []entity.Product{
		activeProduct("p1", "Produit un"),
		activeProduct("p2", "Produit deux"),
	}}
	prices := &fakePriceRepo{sales: []entity.SalePrice{
		saleAt("p1", 10, testNow),
		saleAt("p2", 5, testNow),
	}}
	sales := &fakeSalesRepo{rows: []entity.MonthlySale{
		{ProductID: "p1", Year: 2026, Month: 1, Quantity: 10},
		{ProductID: "p1", Year: 2026, Month: 2, Quantity: 10},
		{ProductID: "p1", Year: 2026, Month: 3, Quantity: 10},
		{ProductID: "p1", Year: 2026, Month: 4, Quantity: 20},
		{ProductID: "p1", Year: 2026, Month: 5, Quantity: 20},
		{ProductID: "p1", Year: 2026, Month: 6, Quantity: 20},
		{ProductID: "p2", Year: 2026, Month: 5, Quantity: 10},
	}}
	return newBuilder(products, prices, sales, &fakeStockRepo{})
}

func TestEvolutionPeriodes(t *testing.T) {
	uc := NewEvolutionUseCase(evolutionFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), dto.EvolutionRequest{
		DateDebut: "2026-04-01",
		DateFin:   "2026-06-30",
	})
	require.NoError(t, err)

	// Período corriente T2: p1 60 uds (CA 600) + p2 10 uds (CA 50).
	cur := res.PeriodeCourante
	assert.Equal(t, "2026-04-01", cur.DateDebut)
	assert.Equal(t, "650", cur.CA.String())
	assert.Equal(t, int64(70), cur.Quantite)
	assert.Equal(t, 2, cur.NbProduitsVendus)
	assert.Equal(t, "23.33", cur.QuantiteMoyenneMensuelle.String())

	// Período anterior T1, de igual duración: solo p1, 30 uds, CA 300.
	prev := res.PeriodePrecedente
	assert.Equal(t, "2026-01-01", prev.DateDebut)
	assert.Equal(t, "2026-03-31", prev.DateFin)
	assert.Equal(t, "300", prev.CA.String())
	assert.Equal(t, int64(30), prev.Quantite)
	assert.Equal(t, 1, prev.NbProduitsVendus)

	// Variaciones: CA +116.67%, cantidad +133.33%, referencias +100%.
	require.True(t, res.Evolutions.CA.IsNumeric())
	assert.Equal(t, "116.67", res.Evolutions.CA.Value().Round(2).String())
	assert.Equal(t, "133.33", res.Evolutions.Quantite.Value().Round(2).String())
	assert.Equal(t, "100", res.Evolutions.NbProduitsVendus.Value().Round(2).String())
}

func TestEvolutionReferenceVide(t *testing.T) {
	uc := NewEvolutionUseCase(evolutionFixture(), fixedNow(testNow))

	// Período anterior (T4 2025) sin ninguna venta: variaciones N/A.
	res, err := uc.Analyse(context.Background(), dto.EvolutionRequest{
		DateDebut: "2026-01-01",
		DateFin:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.PeriodePrecedente.Quantite)
	assert.False(t, res.Evolutions.CA.IsNumeric())
	assert.False(t, res.Evolutions.Quantite.IsNumeric())
	assert.False(t, res.Evolutions.NbProduitsVendus.IsNumeric())
}

func TestEvolutionPeriodeObligatoire(t *testing.T) {
	uc := NewEvolutionUseCase(evolutionFixture(), fixedNow(testNow))

	_, err := uc.Analyse(context.Background(), dto.EvolutionRequest{DateDebut: "2026-01-01"})
	require.Error(t, err)
}
