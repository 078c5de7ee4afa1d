package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
)

// MargeUseCase análisis de margen contra umbral: productos cuya marge brute
// está estrictamente por debajo o por encima del seuil, sobre la ventana
// móvil de los 12 últimos meses.
type MargeUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewMargeUseCase construye el analizador de margen.
func NewMargeUseCase(data *DatasetBuilder, now Clock) *MargeUseCase {
	if now == nil {
		now = time.Now
	}
	return &MargeUseCase{data: data, now: now}
}

type margeItem struct {
	dto   dto.MargeProduitDTO
	gap   decimal.Decimal // marge - seuil, sin redondear
	marge decimal.Decimal
	ca    decimal.Decimal
}

// Analyse ejecuta el análisis de margen. Solo los productos con precio de
// venta y de compra vigentes son analizables; el resto se excluye en silencio.
func (uc *MargeUseCase) Analyse(ctx context.Context, req dto.MargeRequest) (*dto.AnalyseMargeDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	start := time.Now()
	now := uc.now()
	from := now.AddDate(0, -11, 0) // 12 meses incluyendo el mes corriente

	ds, err := uc.data.Build(ctx, req.ProduitFilters, from, now, now)
	if err != nil {
		return nil, err
	}

	seuil := decimal.NewFromFloat(req.SeuilMarge)
	items := make([]margeItem, 0, len(ds.Products))
	for _, p := range ds.Products {
		pr, ok := ds.Prices[p.ID]
		if !ok || !pr.HasPrice || !pr.HasCost {
			continue
		}

		// marge brute TTC ; precio de venta 0 => margen 0, nunca división por cero
		marge := decimal.Zero
		if pr.EffectiveTTC.IsPositive() {
			marge = pr.EffectiveTTC.Sub(pr.CostTTC).Div(pr.EffectiveTTC).Mul(hundred)
		}

		var keep bool
		if req.Mode == dto.ModeBelow {
			keep = marge.LessThan(seuil)
		} else {
			keep = marge.GreaterThan(seuil)
		}
		if !keep {
			continue
		}

		qty := ds.Sales[p.ID].Total
		ca := pr.EffectiveTTC.Mul(decimal.NewFromInt(qty))
		gap := marge.Sub(seuil)

		items = append(items, margeItem{
			dto: dto.MargeProduitDTO{
				ProduitID:    p.ID,
				EAN13:        p.EAN13,
				Nom:          p.Name,
				PrixVenteTTC: pr.EffectiveTTC.Round(2),
				PrixAchatTTC: pr.CostTTC.Round(2),
				MargePct:     marge.Round(2),
				EcartSeuil:   gap.Round(2),
				CA12Mois:     ca.Round(2),
				Quantite12M:  qty,
			},
			gap:   gap,
			marge: marge,
			ca:    ca,
		})
	}

	// Los peores primero: desviación ascendente en below, descendente en above.
	sort.SliceStable(items, func(i, j int) bool {
		if req.Mode == dto.ModeBelow {
			return items[i].gap.LessThan(items[j].gap)
		}
		return items[i].gap.GreaterThan(items[j].gap)
	})

	produits := make([]dto.MargeProduitDTO, len(items))
	caTotal := decimal.Zero
	weighted := decimal.Zero
	var qtyTotal int64
	for i, it := range items {
		produits[i] = it.dto
		caTotal = caTotal.Add(it.ca)
		weighted = weighted.Add(it.marge.Mul(it.ca))
		qtyTotal += it.dto.Quantite12M
	}
	margeMoyenne := decimal.Zero
	if caTotal.IsPositive() {
		margeMoyenne = weighted.Div(caTotal)
	}

	return &dto.AnalyseMargeDTO{
		Criteres: req,
		Produits: produits,
		Resume: dto.MargeResumeDTO{
			MargeMoyennePonderee: margeMoyenne.Round(2),
			CATotal:              caTotal.Round(2),
			QuantiteTotale:       qtyTotal,
			NbProduits:           len(produits),
		},
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete,
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(produits),
		},
	}, nil
}
