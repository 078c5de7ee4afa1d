package analyse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Escenario de referencia: 11 meses a 100 y diciembre a 200.
// annual_avg = 108.33, coef[dic] ~ 1.846, coef[otros] ~ 0.923,
// amplitud ~ 0.923 -> MOYENNE con los umbrales por defecto (0.8 / 1.5).
func TestBuildSeasonalProfile_PicoDiciembre(t *testing.T) {
	var monthly [12]float64
	for m := 0; m < 12; m++ {
		monthly[m] = 100
	}
	monthly[11] = 200

	p := BuildSeasonalProfile(monthly)

	assert.InDelta(t, 108.333, p.AnnualAvg, 0.001)
	assert.InDelta(t, 1.846, p.Coefficients[11], 0.001)
	assert.InDelta(t, 0.923, p.Coefficients[0], 0.001)
	assert.InDelta(t, 0.923, p.Amplitude, 0.001)
	assert.Equal(t, 12, p.PeakMonth)
	assert.Equal(t, 1, p.TroughMonth) // primer mes del coeficiente mínimo

	assert.Equal(t, SeasonalityMoyenne, ClassifySeasonality(p.Amplitude, 1.5, 0.8))
}

func TestBuildSeasonalProfile_SinVentas(t *testing.T) {
	var monthly [12]float64
	p := BuildSeasonalProfile(monthly)

	assert.Equal(t, 0.0, p.AnnualAvg)
	// Sin media anual todos los coeficientes valen 1.0 y la amplitud es 0.
	for m := 0; m < 12; m++ {
		assert.Equal(t, 1.0, p.Coefficients[m])
	}
	assert.Equal(t, 0.0, p.Amplitude)
	assert.Equal(t, SeasonalityAucune, ClassifySeasonality(p.Amplitude, 1.5, 0.8))
}

func TestClassifySeasonality_Niveles(t *testing.T) {
	assert.Equal(t, SeasonalityForte, ClassifySeasonality(1.5, 1.5, 0.8))
	assert.Equal(t, SeasonalityMoyenne, ClassifySeasonality(0.8, 1.5, 0.8))
	assert.Equal(t, SeasonalityFaible, ClassifySeasonality(0.3, 1.5, 0.8))
	assert.Equal(t, SeasonalityAucune, ClassifySeasonality(0.29, 1.5, 0.8))
}

func TestSurveillanceYConfianza(t *testing.T) {
	assert.Equal(t, SurveillanceCritique, SurveillanceFor(SeasonalityForte))
	assert.Equal(t, SurveillanceImportant, SurveillanceFor(SeasonalityMoyenne))
	assert.Equal(t, SurveillanceStandard, SurveillanceFor(SeasonalityFaible))
	assert.Equal(t, SurveillanceMinimal, SurveillanceFor(SeasonalityAucune))

	assert.Equal(t, ConfidenceElevee, ConfidenceFor(SeasonalityForte))
	assert.Equal(t, ConfidenceElevee, ConfidenceFor(SeasonalityMoyenne))
	assert.Equal(t, ConfidenceMoyenne, ConfidenceFor(SeasonalityFaible))
	assert.Equal(t, ConfidenceFaible, ConfidenceFor(SeasonalityAucune))
}

func TestAnnualTrend(t *testing.T) {
	// (1200-1000)/1000 / (3-1) = +10% anual
	assert.InDelta(t, 0.10, AnnualTrend(1000, 1200, 3), 1e-9)
	// Primer año a cero o menos de 2 años -> 0
	assert.Equal(t, 0.0, AnnualTrend(0, 500, 3))
	assert.Equal(t, 0.0, AnnualTrend(1000, 1200, 1))
}

func TestProjectDemand_CrecimientoCompuesto(t *testing.T) {
	var monthly [12]float64
	for m := 0; m < 12; m++ {
		monthly[m] = 120
	}
	p := BuildSeasonalProfile(monthly)

	// Sin tendencia la previsión es la media anual por el coeficiente del mes.
	assert.InDelta(t, 120, ProjectDemand(p, 6, 1, 0), 1e-9)

	// Con +12% anual, a 12 meses vista la previsión crece un 12%.
	assert.InDelta(t, 120*1.12, ProjectDemand(p, 6, 12, 0.12), 1e-6)
}
