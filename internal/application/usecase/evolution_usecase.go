package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

// EvolutionUseCase comparación de períodos: KPIs del período pedido contra
// el período inmediatamente anterior de igual duración, con las variaciones
// porcentuales (N/A si la referencia es cero).
type EvolutionUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewEvolutionUseCase construye el comparador de períodos.
func NewEvolutionUseCase(data *DatasetBuilder, now Clock) *EvolutionUseCase {
	if now == nil {
		now = time.Now
	}
	return &EvolutionUseCase{data: data, now: now}
}

// Analyse calcula los KPIs de los dos períodos. El CA de ambos se valora con
// los precios vigentes hoy: la base de datos no conserva precios históricos,
// así que la comparación mide la evolución del volumen a precios constantes.
func (uc *EvolutionUseCase) Analyse(ctx context.Context, req dto.EvolutionRequest) (*dto.AnalyseEvolutionDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	from, to, _ := dto.ParsePeriode(req.DateDebut, req.DateFin)

	start := time.Now()
	now := uc.now()

	// Período anterior contiguo, de igual número de meses calendario.
	nbMois := monthsBetween(from, to)
	prevFrom := from.AddDate(0, -nbMois, 0)
	prevTo := from.AddDate(0, 0, -1) // último día del mes anterior

	ds, err := uc.data.Build(ctx, req.ProduitFilters, from, to, now)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(ds.Products))
	for i, p := range ds.Products {
		ids[i] = p.ID
	}
	prevSales, err := uc.data.AggregateSales(ctx, ids, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}

	courante := uc.periodKPI(ds, ds.Sales, from, to, nbMois)
	precedente := uc.periodKPI(ds, prevSales, prevFrom, prevTo, nbMois)

	return &dto.AnalyseEvolutionDTO{
		Criteres:          req,
		PeriodeCourante:   courante,
		PeriodePrecedente: precedente,
		Evolutions: dto.EvolutionsDTO{
			CA:       analyse.DeltaPct(courante.CA, precedente.CA),
			Quantite: analyse.DeltaPct(decimal.NewFromInt(courante.Quantite), decimal.NewFromInt(precedente.Quantite)),
			NbProduitsVendus: analyse.DeltaPct(
				decimal.NewFromInt(int64(courante.NbProduitsVendus)),
				decimal.NewFromInt(int64(precedente.NbProduitsVendus)),
			),
		},
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete + fmt.Sprintf(" + ventes [%s..%s]", prevFrom.Format("2006-01"), prevTo.Format("2006-01")),
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(ds.Products),
		},
	}, nil
}

// periodKPI agrega los indicadores de un período a partir de las ventas
// correspondientes y de los precios efectivos actuales.
func (uc *EvolutionUseCase) periodKPI(
	ds *Dataset,
	sales map[string]SalesSummary,
	from, to time.Time,
	nbMois int,
) dto.PeriodeKPIDTO {
	ca := decimal.Zero
	var quantite int64
	vendus := 0
	for _, p := range ds.Products {
		qty := sales[p.ID].Total
		if qty == 0 {
			continue
		}
		vendus++
		quantite += qty
		if pr, ok := ds.Prices[p.ID]; ok && pr.HasPrice {
			ca = ca.Add(pr.EffectiveTTC.Mul(decimal.NewFromInt(qty)))
		}
	}

	moyenne := decimal.Zero
	if nbMois > 0 {
		moyenne = decimal.NewFromInt(quantite).Div(decimal.NewFromInt(int64(nbMois)))
	}

	return dto.PeriodeKPIDTO{
		DateDebut:                from.Format(dto.DateLayout),
		DateFin:                  to.Format(dto.DateLayout),
		CA:                       ca.Round(2),
		Quantite:                 quantite,
		NbProduitsVendus:         vendus,
		QuantiteMoyenneMensuelle: moyenne.Round(2),
	}
}
