package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// abcxyzFixture tres referencias con precio 1:
//   - "regulier": 100/mes x6 -> CA 600 (50% acumulado), CV 0.
//   - "stable":   60/mes x6  -> CA 360 (80% acumulado exacto), CV 0.
//   - "erratique": todo en enero -> CA 240 (100% acumulado), CV elevado.
func abcxyzFixture() *DatasetBuilder {
	products := &fakeProductRepo{products: []entity.Product{
		activeProduct("regulier", "Vente régulière"),
		activeProduct("stable", "Vente stable"),
		activeProduct("erratique", "Vente erratique"),
	}}
	prices := &fakePriceRepo{sales: []entity.SalePrice{
		saleAt("regulier", 1, testNow),
		saleAt("stable", 1, testNow),
		saleAt("erratique", 1, testNow),
	}}

	var rows []entity.MonthlySale
	for m := 1; m <= 6; m++ {
		rows = append(rows,
			entity.MonthlySale{ProductID: "regulier", Year: 2026, Month: m, Quantity: 100},
			entity.MonthlySale{ProductID: "stable", Year: 2026, Month: m, Quantity: 60},
		)
	}
	rows = append(rows, entity.MonthlySale{ProductID: "erratique", Year: 2026, Month: 1, Quantity: 240})

	return newBuilder(products, prices, &fakeSalesRepo{rows: rows}, &fakeStockRepo{})
}

func abcxyzRequest() dto.ABCXYZRequest {
	return dto.ABCXYZRequest{
		DateDebut: "2026-01-01",
		DateFin:   "2026-06-30",
	}
}

func TestABCXYZClassification(t *testing.T) {
	uc := NewABCXYZUseCase(abcxyzFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), abcxyzRequest())
	require.NoError(t, err)
	require.Len(t, res.Produits, 3)

	// "regulier": 50% acumulado, CV 0 -> AX.
	p := res.Produits[0]
	assert.Equal(t, "regulier", p.ProduitID)
	assert.Equal(t, "A", p.ClasseABC)
	assert.Equal(t, "X", p.ClasseXYZ)
	assert.Equal(t, "AX", p.ClassificationFinale)
	assert.Zero(t, p.CoefficientVariation)
	assert.NotEmpty(t, p.Strategie)
	assert.NotEmpty(t, p.Actions)

	// "stable": acumulado 80% exacto, frontera inclusiva -> sigue siendo A.
	p = res.Produits[1]
	assert.Equal(t, "stable", p.ProduitID)
	assert.Equal(t, "80", p.PourcentageCumule.String())
	assert.Equal(t, "AX", p.ClassificationFinale)

	// "erratique": 100% acumulado -> C; todo vendido en un mes -> Z.
	p = res.Produits[2]
	assert.Equal(t, "erratique", p.ProduitID)
	assert.Equal(t, "C", p.ClasseABC)
	assert.Equal(t, "Z", p.ClasseXYZ)
	assert.Equal(t, "CZ", p.ClassificationFinale)
	assert.Greater(t, p.CoefficientVariation, 1.0)
}

func TestABCXYZMatrice(t *testing.T) {
	uc := NewABCXYZUseCase(abcxyzFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), abcxyzRequest())
	require.NoError(t, err)

	require.Len(t, res.Matrice, 9)
	assert.Equal(t, "AX", res.Matrice[0].Classification)
	assert.Equal(t, 2, res.Matrice[0].NbProduits)
	assert.Equal(t, "960", res.Matrice[0].CA.String())
	assert.Equal(t, "80", res.Matrice[0].PourcentageCA.String())

	// La última celda es CZ y las celdas vacías siguen presentes.
	assert.Equal(t, "CZ", res.Matrice[8].Classification)
	assert.Equal(t, 1, res.Matrice[8].NbProduits)
	assert.Equal(t, 0, res.Matrice[1].NbProduits)

	assert.Equal(t, 2, res.Resume.PrioriteAbsolue)
	assert.Equal(t, 0, res.Resume.Surveillance)
	assert.Equal(t, 1, res.Resume.Depriorises)
	assert.Equal(t, 3, res.Resume.NbProduits)
}

func TestABCXYZPartitionCA(t *testing.T) {
	uc := NewABCXYZUseCase(abcxyzFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), abcxyzRequest())
	require.NoError(t, err)

	// Las 9 celdas particionan el CA: los porcentajes suman 100.
	total := res.Matrice[0].PourcentageCA
	for _, cell := range res.Matrice[1:] {
		total = total.Add(cell.PourcentageCA)
	}
	assert.Equal(t, "100", total.String())
}

func TestABCXYZSeuilsParDefaut(t *testing.T) {
	uc := NewABCXYZUseCase(abcxyzFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), abcxyzRequest())
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.Criteres.SeuilABCA)
	assert.Equal(t, 95.0, res.Criteres.SeuilABCB)
	assert.Equal(t, 0.5, res.Criteres.SeuilXYZX)
	assert.Equal(t, 1.0, res.Criteres.SeuilXYZY)
}
