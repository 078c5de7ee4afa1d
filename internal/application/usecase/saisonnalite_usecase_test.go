package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// saisonnaliteFixture dos años completos de histórico (2024, 2025):
//   - "hivernal": 100/mes salvo diciembre a 200 -> pico invernal moderado.
//   - "plat": 50/mes todo el año -> sin saisonnalité.
func saisonnaliteFixture() *DatasetBuilder {
	products := &fakeProductRepo{products: []entity.Product{
		activeProduct("hivernal", "Sirop antitussif"),
		activeProduct("plat", "Compresses stériles"),
	}}

	var rows []entity.MonthlySale
	for _, year := range []int{2024, 2025} {
		for m := 1; m <= 12; m++ {
			qty := int64(100)
			if m == 12 {
				qty = 200
			}
			rows = append(rows,
				entity.MonthlySale{ProductID: "hivernal", Year: year, Month: m, Quantity: qty},
				entity.MonthlySale{ProductID: "plat", Year: year, Month: m, Quantity: 50},
			)
		}
	}

	return newBuilder(products, &fakePriceRepo{}, &fakeSalesRepo{rows: rows}, &fakeStockRepo{})
}

func findProduit(t *testing.T, produits []dto.SaisonnaliteProduitDTO, id string) dto.SaisonnaliteProduitDTO {
	t.Helper()
	for _, p := range produits {
		if p.ProduitID == id {
			return p
		}
	}
	t.Fatalf("produit %s absent", id)
	return dto.SaisonnaliteProduitDTO{}
}

func TestSaisonnaliteProfil(t *testing.T) {
	uc := NewSaisonnaliteUseCase(saisonnaliteFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{})
	require.NoError(t, err)
	require.Len(t, res.Produits, 2)

	// "hivernal": media anual 108.33, coef décembre 1.85, amplitude 0.92.
	p := findProduit(t, res.Produits, "hivernal")
	assert.InDelta(t, 100, p.MoyennesMensuelles[0], 0.01)
	assert.InDelta(t, 200, p.MoyennesMensuelles[11], 0.01)
	assert.InDelta(t, 1.85, p.Coefficients[11], 0.01)
	assert.InDelta(t, 0.92, p.Amplitude, 0.01)
	assert.Equal(t, analyse.SeasonalityMoyenne, p.TypeSaisonnalite)
	assert.Equal(t, 12, p.MoisPic)
	assert.Equal(t, analyse.SurveillanceImportant, p.NiveauSurveillance)
	assert.Zero(t, p.TendanceAnnuelle)
	assert.NotEmpty(t, p.Recommandations)

	// "plat": coeficientes 1.0, amplitude 0 -> AUCUNE.
	p = findProduit(t, res.Produits, "plat")
	assert.Zero(t, p.Amplitude)
	assert.Equal(t, analyse.SeasonalityAucune, p.TypeSaisonnalite)
	assert.Equal(t, analyse.SurveillanceMinimal, p.NiveauSurveillance)
}

func TestSaisonnalitePrevisions(t *testing.T) {
	uc := NewSaisonnaliteUseCase(saisonnaliteFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{NbMoisPrevision: 6})
	require.NoError(t, err)

	// now = agosto 2026: previsiones de septiembre 2026 a febrero 2027.
	p := findProduit(t, res.Produits, "hivernal")
	require.Len(t, p.Previsions, 6)
	assert.Equal(t, "2026-09", p.Previsions[0].Mois)
	assert.Equal(t, "2027-02", p.Previsions[5].Mois)

	// Sin tendencia, la previsión de un mes ordinario es su media histórica.
	assert.InDelta(t, 100, p.Previsions[0].QuantitePrevue, 0.01)
	// Diciembre 2026 (índice 3) hereda el pico.
	assert.Equal(t, "2026-12", p.Previsions[3].Mois)
	assert.InDelta(t, 200, p.Previsions[3].QuantitePrevue, 0.01)

	// Horquilla de stock ~15 a ~45 días.
	assert.Equal(t, 50, p.Previsions[0].StockMin)
	assert.Equal(t, 150, p.Previsions[0].StockMax)
	assert.Equal(t, analyse.ConfidenceElevee, p.Previsions[0].Confiance)
}

func TestSaisonnaliteTendance(t *testing.T) {
	// 1200 en 2024, 1800 en 2025: +50% en un intervalo de un año.
	products := &fakeProductRepo{products: []entity.Product{activeProduct("croissant", "En croissance")}}
	var rows []entity.MonthlySale
	for m := 1; m <= 12; m++ {
		rows = append(rows,
			entity.MonthlySale{ProductID: "croissant", Year: 2024, Month: m, Quantity: 100},
			entity.MonthlySale{ProductID: "croissant", Year: 2025, Month: m, Quantity: 150},
		)
	}
	uc := NewSaisonnaliteUseCase(
		newBuilder(products, &fakePriceRepo{}, &fakeSalesRepo{rows: rows}, &fakeStockRepo{}),
		fixedNow(testNow),
	)

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{})
	require.NoError(t, err)

	p := findProduit(t, res.Produits, "croissant")
	assert.InDelta(t, 0.5, p.TendanceAnnuelle, 0.01)

	// Las previsiones crecen mes a mes con la tendencia compuesta.
	require.NotEmpty(t, p.Previsions)
	for i := 1; i < len(p.Previsions); i++ {
		assert.Greater(t, p.Previsions[i].QuantitePrevue, p.Previsions[i-1].QuantitePrevue)
	}
}

func TestSaisonnaliteTops(t *testing.T) {
	uc := NewSaisonnaliteUseCase(saisonnaliteFixture(), fixedNow(testNow))

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{})
	require.NoError(t, err)

	// "hivernal" es MOYENNE: fuera del top de amplitud (reservado a FORTE)
	// pero presente en picos de invierno y en volumen.
	assert.Empty(t, res.Tops.TopAmplitude)
	require.Len(t, res.Tops.TopPicsHiver, 1)
	assert.Equal(t, "hivernal", res.Tops.TopPicsHiver[0].ProduitID)
	assert.Empty(t, res.Tops.TopPicsEte)
	require.Len(t, res.Tops.TopVolume, 1)
	assert.Equal(t, "hivernal", res.Tops.TopVolume[0].ProduitID)
}

func TestSaisonnaliteTopsPicFaible(t *testing.T) {
	// "leger": 100/mes salvo diciembre a 140 -> amplitude ~0.39, FAIBLE.
	// Un pico invernal real entra en el top de invierno aunque el perfil
	// sea FAIBLE; el top de volumen sigue reservado a FORTE/MOYENNE.
	products := &fakeProductRepo{products: []entity.Product{activeProduct("leger", "Baume à lèvres")}}
	var rows []entity.MonthlySale
	for _, year := range []int{2024, 2025} {
		for m := 1; m <= 12; m++ {
			qty := int64(100)
			if m == 12 {
				qty = 140
			}
			rows = append(rows, entity.MonthlySale{ProductID: "leger", Year: year, Month: m, Quantity: qty})
		}
	}
	uc := NewSaisonnaliteUseCase(
		newBuilder(products, &fakePriceRepo{}, &fakeSalesRepo{rows: rows}, &fakeStockRepo{}),
		fixedNow(testNow),
	)

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{})
	require.NoError(t, err)

	p := findProduit(t, res.Produits, "leger")
	assert.Equal(t, analyse.SeasonalityFaible, p.TypeSaisonnalite)
	assert.Equal(t, 12, p.MoisPic)

	require.Len(t, res.Tops.TopPicsHiver, 1)
	assert.Equal(t, "leger", res.Tops.TopPicsHiver[0].ProduitID)
	assert.Empty(t, res.Tops.TopAmplitude)
	assert.Empty(t, res.Tops.TopVolume)
}

func TestSaisonnaliteSansHistorique(t *testing.T) {
	products := &fakeProductRepo{products: []entity.Product{activeProduct("neuf", "Nouveau produit")}}
	uc := NewSaisonnaliteUseCase(
		newBuilder(products, &fakePriceRepo{}, &fakeSalesRepo{}, &fakeStockRepo{}),
		fixedNow(testNow),
	)

	res, err := uc.Analyse(context.Background(), dto.SaisonnaliteRequest{})
	require.NoError(t, err)

	// Histórico vacío: perfil AUCUNE con coeficientes neutros, sin exclusión.
	require.Len(t, res.Produits, 1)
	p := res.Produits[0]
	assert.Equal(t, analyse.SeasonalityAucune, p.TypeSaisonnalite)
	assert.Equal(t, 1.0, p.Coefficients[0])
	for _, prev := range p.Previsions {
		assert.Zero(t, prev.QuantitePrevue)
	}
}
