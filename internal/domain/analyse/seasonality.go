package analyse

import "math"

// Tipos de saisonnalité por amplitud del perfil de coeficientes.
const (
	SeasonalityForte   = "FORTE"
	SeasonalityMoyenne = "MOYENNE"
	SeasonalityFaible  = "FAIBLE"
	SeasonalityAucune  = "AUCUNE"
)

// Niveles de surveillance asociados al tipo de saisonnalité.
const (
	SurveillanceCritique  = "CRITIQUE"
	SurveillanceImportant = "IMPORTANT"
	SurveillanceStandard  = "STANDARD"
	SurveillanceMinimal   = "MINIMAL"
)

// Niveles de confianza de las previsiones.
const (
	ConfidenceElevee  = "ELEVEE"
	ConfidenceMoyenne = "MOYENNE"
	ConfidenceFaible  = "FAIBLE"
)

// faibleAmplitude umbral fijo bajo el cual la saisonnalité pasa de FAIBLE a AUCUNE.
const faibleAmplitude = 0.3

// SeasonalProfile perfil estacional de 12 meses de un producto.
type SeasonalProfile struct {
	MonthlyAvg   [12]float64 // media histórica de cada mes calendario (índice 0 = enero)
	AnnualAvg    float64     // media de las 12 medias mensuales
	Coefficients [12]float64 // MonthlyAvg[m] / AnnualAvg; 1.0 si AnnualAvg es 0
	Amplitude    float64     // max(coef) - min(coef)
	PeakMonth    int         // mes 1..12 del coeficiente máximo
	TroughMonth  int         // mes 1..12 del coeficiente mínimo
}

// BuildSeasonalProfile calcula el perfil a partir de las medias mensuales.
func BuildSeasonalProfile(monthlyAvg [12]float64) SeasonalProfile {
	p := SeasonalProfile{MonthlyAvg: monthlyAvg}

	var sum float64
	for _, v := range monthlyAvg {
		sum += v
	}
	p.AnnualAvg = sum / 12

	maxC, minC := math.Inf(-1), math.Inf(1)
	for m := 0; m < 12; m++ {
		coef := 1.0
		if p.AnnualAvg != 0 {
			coef = monthlyAvg[m] / p.AnnualAvg
		}
		p.Coefficients[m] = coef
		if coef > maxC {
			maxC = coef
			p.PeakMonth = m + 1
		}
		if coef < minC {
			minC = coef
			p.TroughMonth = m + 1
		}
	}
	p.Amplitude = maxC - minC
	return p
}

// ClassifySeasonality clasifica la amplitud:
// FORTE si >= seuilForte, MOYENNE si >= seuilMoyenne, FAIBLE si >= 0.3, si no AUCUNE.
func ClassifySeasonality(amplitude, seuilForte, seuilMoyenne float64) string {
	switch {
	case amplitude >= seuilForte:
		return SeasonalityForte
	case amplitude >= seuilMoyenne:
		return SeasonalityMoyenne
	case amplitude >= faibleAmplitude:
		return SeasonalityFaible
	default:
		return SeasonalityAucune
	}
}

// SurveillanceFor nivel de surveillance recomendado para el tipo de saisonnalité.
func SurveillanceFor(seasonality string) string {
	switch seasonality {
	case SeasonalityForte:
		return SurveillanceCritique
	case SeasonalityMoyenne:
		return SurveillanceImportant
	case SeasonalityFaible:
		return SurveillanceStandard
	default:
		return SurveillanceMinimal
	}
}

// ConfidenceFor confianza de una previsión según el tipo de saisonnalité:
// un perfil marcado (FORTE/MOYENNE) se proyecta con más fiabilidad que el ruido.
func ConfidenceFor(seasonality string) string {
	switch seasonality {
	case SeasonalityForte, SeasonalityMoyenne:
		return ConfidenceElevee
	case SeasonalityFaible:
		return ConfidenceMoyenne
	default:
		return ConfidenceFaible
	}
}

// AnnualTrend tendencia anual simple: (total último año - total primer año)
// / total primer año, anualizada dividiendo por (nbAnnees - 1).
// 0 si el primer año es 0 o con menos de 2 años de datos.
func AnnualTrend(firstYearTotal, lastYearTotal float64, nbYears int) float64 {
	if nbYears < 2 || firstYearTotal == 0 {
		return 0
	}
	return (lastYearTotal - firstYearTotal) / firstYearTotal / float64(nbYears-1)
}

// ProjectDemand previsión del mes i (1..horizon) a partir del perfil:
// annual_avg * coefficient[mois] * (1+trend)^(i/12).
func ProjectDemand(p SeasonalProfile, forecastMonth, monthIndex int, trend float64) float64 {
	growth := math.Pow(1+trend, float64(monthIndex)/12)
	return p.AnnualAvg * p.Coefficients[forecastMonth-1] * growth
}
