package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

// monthNames nombres franceses de los meses, para las recomendaciones.
var monthNames = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// trendNotable umbral a partir del cual la tendencia anual merece mención.
const trendNotable = 0.05

const topSize = 5

// SaisonnaliteUseCase análisis de estacionalidad y previsión de demanda:
// perfil de 12 coeficientes por producto, clasificación por amplitud,
// tendencia anual y proyección a N meses.
type SaisonnaliteUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewSaisonnaliteUseCase construye el analizador de saisonnalité.
func NewSaisonnaliteUseCase(data *DatasetBuilder, now Clock) *SaisonnaliteUseCase {
	if now == nil {
		now = time.Now
	}
	return &SaisonnaliteUseCase{data: data, now: now}
}

// Analyse ejecuta el análisis sobre los N últimos años (el año corriente
// incluido). Todos los productos resueltos participan: un histórico vacío
// produce un perfil AUCUNE, no una exclusión.
func (uc *SaisonnaliteUseCase) Analyse(ctx context.Context, req dto.SaisonnaliteRequest) (*dto.AnalyseSaisonnaliteDTO, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	start := time.Now()
	now := uc.now()
	from := time.Date(now.Year()-req.PeriodeHistoriqueAnnees+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	ds, err := uc.data.Build(ctx, req.ProduitFilters, from, now, now)
	if err != nil {
		return nil, err
	}

	produits := make([]dto.SaisonnaliteProduitDTO, 0, len(ds.Products))
	volumes := make(map[string]float64, len(ds.Products))

	for _, p := range ds.Products {
		summary := ds.Sales[p.ID]

		var monthSum, monthCnt [12]float64
		yearTotals := map[int]float64{}
		for key, qty := range summary.ParMois {
			t, err := time.Parse("2006-01", key)
			if err != nil {
				continue
			}
			m := int(t.Month()) - 1
			monthSum[m] += float64(qty)
			monthCnt[m]++
			yearTotals[t.Year()] += float64(qty)
		}

		var monthlyAvg [12]float64
		for m := 0; m < 12; m++ {
			if monthCnt[m] > 0 {
				monthlyAvg[m] = monthSum[m] / monthCnt[m]
			}
		}

		profile := analyse.BuildSeasonalProfile(monthlyAvg)
		seasonality := analyse.ClassifySeasonality(profile.Amplitude, req.SeuilAmplitudeForte, req.SeuilAmplitudeMoyenne)
		trend := annualTrendOf(yearTotals)

		produits = append(produits, dto.SaisonnaliteProduitDTO{
			ProduitID:          p.ID,
			EAN13:              p.EAN13,
			Nom:                p.Name,
			MoyennesMensuelles: roundSeries(profile.MonthlyAvg),
			Coefficients:       roundSeries(profile.Coefficients),
			Amplitude:          round2(profile.Amplitude),
			TypeSaisonnalite:   seasonality,
			MoisPic:            profile.PeakMonth,
			MoisCreux:          profile.TroughMonth,
			TendanceAnnuelle:   round2(trend),
			NiveauSurveillance: analyse.SurveillanceFor(seasonality),
			Recommandations:    buildRecommandations(seasonality, profile, trend),
			Previsions:         buildPrevisions(profile, seasonality, trend, now, req.NbMoisPrevision),
		})
		volumes[p.ID] = float64(summary.Total)
	}

	return &dto.AnalyseSaisonnaliteDTO{
		Criteres:   req,
		Produits:   produits,
		Tops:       buildTops(produits, volumes),
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete,
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(produits),
		},
	}, nil
}

// annualTrendOf tendencia anual entre el primer y el último año con ventas.
func annualTrendOf(yearTotals map[int]float64) float64 {
	if len(yearTotals) < 2 {
		return 0
	}
	years := make([]int, 0, len(yearTotals))
	for y := range yearTotals {
		years = append(years, y)
	}
	sort.Ints(years)
	first, last := years[0], years[len(years)-1]
	return analyse.AnnualTrend(yearTotals[first], yearTotals[last], len(years))
}

// buildPrevisions proyecta la demanda de los nbMois próximos meses:
// media anual × coeficiente del mes × (1+tendance)^(i/12), con una horquilla
// de stock de ~15 a ~45 días de cobertura.
func buildPrevisions(p analyse.SeasonalProfile, seasonality string, trend float64, now time.Time, nbMois int) []dto.PrevisionDTO {
	confiance := analyse.ConfidenceFor(seasonality)
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	previsions := make([]dto.PrevisionDTO, 0, nbMois)
	for i := 1; i <= nbMois; i++ {
		t := base.AddDate(0, i, 0)
		qty := round2(analyse.ProjectDemand(p, int(t.Month()), i, trend))
		previsions = append(previsions, dto.PrevisionDTO{
			Mois:           t.Format("2006-01"),
			QuantitePrevue: qty,
			StockMin:       int(math.Ceil(qty * 0.5)),
			StockMax:       int(math.Ceil(qty * 1.5)),
			Confiance:      confiance,
		})
	}
	return previsions
}

// buildRecommandations textos de gestión según el tipo de saisonnalité,
// completados con una mención de tendencia si es notable.
func buildRecommandations(seasonality string, p analyse.SeasonalProfile, trend float64) []string {
	var recs []string
	switch seasonality {
	case analyse.SeasonalityForte:
		recs = append(recs,
			fmt.Sprintf("Saisonnalité forte : anticiper les commandes deux mois avant le pic de %s.", monthNames[p.PeakMonth-1]),
			fmt.Sprintf("Réduire le stock à l'approche du creux de %s.", monthNames[p.TroughMonth-1]),
		)
	case analyse.SeasonalityMoyenne:
		recs = append(recs,
			fmt.Sprintf("Ajuster les quantités commandées à l'approche du pic de %s.", monthNames[p.PeakMonth-1]),
		)
	case analyse.SeasonalityFaible:
		recs = append(recs, "Profil peu marqué : gestion standard avec revue trimestrielle.")
	default:
		recs = append(recs, "Aucune saisonnalité détectée : réapprovisionnement régulier.")
	}

	switch {
	case trend >= trendNotable:
		recs = append(recs, fmt.Sprintf("Tendance annuelle en hausse (+%.0f%%) : prévoir des volumes croissants.", trend*100))
	case trend <= -trendNotable:
		recs = append(recs, fmt.Sprintf("Tendance annuelle en baisse (%.0f%%) : éviter le surstock.", trend*100))
	}
	return recs
}

// buildTops los cuatro tops de 5 productos: amplitud (solo FORTE), picos de
// invierno (nov..fév) y de verano (juin..août) para cualquier perfil marcado,
// y volumen (FORTE/MOYENNE).
func buildTops(produits []dto.SaisonnaliteProduitDTO, volumes map[string]float64) dto.SaisonnaliteTopsDTO {
	isWinter := func(m int) bool { return m == 11 || m == 12 || m == 1 || m == 2 }
	isSummer := func(m int) bool { return m >= 6 && m <= 8 }

	var amplitude, hiver, ete, volume []dto.TopSaisonnierDTO
	for _, p := range produits {
		entry := dto.TopSaisonnierDTO{ProduitID: p.ProduitID, EAN13: p.EAN13, Nom: p.Nom, Valeur: p.Amplitude}
		if p.TypeSaisonnalite == analyse.SeasonalityForte {
			amplitude = append(amplitude, entry)
		}
		// Un perfil AUCUNE no tiene pico real: su MoisPic es un artefacto
		// del desempate sobre coeficientes planos.
		if p.TypeSaisonnalite != analyse.SeasonalityAucune {
			if isWinter(p.MoisPic) {
				hiver = append(hiver, entry)
			}
			if isSummer(p.MoisPic) {
				ete = append(ete, entry)
			}
		}
		if p.TypeSaisonnalite == analyse.SeasonalityForte || p.TypeSaisonnalite == analyse.SeasonalityMoyenne {
			volume = append(volume, dto.TopSaisonnierDTO{
				ProduitID: p.ProduitID, EAN13: p.EAN13, Nom: p.Nom, Valeur: volumes[p.ProduitID],
			})
		}
	}

	byValeur := func(s []dto.TopSaisonnierDTO) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Valeur > s[j].Valeur })
	}
	byValeur(amplitude)
	byValeur(hiver)
	byValeur(ete)
	byValeur(volume)

	return dto.SaisonnaliteTopsDTO{
		TopAmplitude: head(amplitude, topSize),
		TopPicsHiver: head(hiver, topSize),
		TopPicsEte:   head(ete, topSize),
		TopVolume:    head(volume, topSize),
	}
}

func head(s []dto.TopSaisonnierDTO, n int) []dto.TopSaisonnierDTO {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func roundSeries(values [12]float64) [12]float64 {
	var out [12]float64
	for i, v := range values {
		out[i] = round2(v)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
