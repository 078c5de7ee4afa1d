package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// ParetoUseCase análisis de concentración del CA (ley 80/20): clasifica las
// referencias por CA descendente y determina cuántas bastan para alcanzar el
// porcentaje objetivo.
type ParetoUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewParetoUseCase construye el analizador de Pareto.
func NewParetoUseCase(data *DatasetBuilder, now Clock) *ParetoUseCase {
	if now == nil {
		now = time.Now
	}
	return &ParetoUseCase{data: data, now: now}
}

// revenueItem producto con CA calculado en el período, base común de los
// análisis Pareto y ABC/XYZ.
type revenueItem struct {
	product entity.Product
	ca      decimal.Decimal
	qty     int64
}

// rankByRevenue conserva los productos con precio efectivo y ventas no nulas
// y los devuelve por CA descendente (orden estable para los empates).
func rankByRevenue(ds *Dataset) []revenueItem {
	items := make([]revenueItem, 0, len(ds.Products))
	for _, p := range ds.Products {
		pr, ok := ds.Prices[p.ID]
		if !ok || !pr.HasPrice {
			continue
		}
		qty := ds.Sales[p.ID].Total
		if qty == 0 {
			continue
		}
		items = append(items, revenueItem{
			product: p,
			ca:      pr.EffectiveTTC.Mul(decimal.NewFromInt(qty)),
			qty:     qty,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ca.GreaterThan(items[j].ca)
	})
	return items
}

// Analyse ejecuta el análisis de Pareto sobre el período pedido.
// nb_produits_seuil es el mayor k cuyo porcentaje acumulado no supera el
// objetivo (<=, no <): con [500 300 150 40 10] y seuil 80, k = 2.
func (uc *ParetoUseCase) Analyse(ctx context.Context, req dto.ParetoRequest) (*dto.AnalyseParetoDTO, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	from, to, _ := dto.ParsePeriode(req.DateDebut, req.DateFin)

	start := time.Now()
	now := uc.now()

	ds, err := uc.data.Build(ctx, req.ProduitFilters, from, to, now)
	if err != nil {
		return nil, err
	}

	items := rankByRevenue(ds)
	caTotal := decimal.Zero
	for _, it := range items {
		caTotal = caTotal.Add(it.ca)
	}

	seuil := decimal.NewFromFloat(req.SeuilPareto)
	caCible := caTotal.Mul(seuil).Div(hundred)

	produits := make([]dto.ParetoProduitDTO, 0, len(items))
	cumule := decimal.Zero
	nbSeuil := 0
	for i, it := range items {
		cumule = cumule.Add(it.ca)

		pctCA := decimal.Zero
		pctCumule := decimal.Zero
		if caTotal.IsPositive() {
			pctCA = it.ca.Div(caTotal).Mul(hundred)
			pctCumule = cumule.Div(caTotal).Mul(hundred)
		}
		if pctCumule.LessThanOrEqual(seuil) {
			nbSeuil = i + 1
		}

		produits = append(produits, dto.ParetoProduitDTO{
			Rang:              i + 1,
			ProduitID:         it.product.ID,
			EAN13:             it.product.EAN13,
			Nom:               it.product.Name,
			CA:                it.ca.Round(2),
			CACumule:          cumule.Round(2),
			PourcentageCA:     pctCA.Round(2),
			PourcentageCumule: pctCumule.Round(2),
			Quantite:          it.qty,
			StockTotal:        ds.Stocks[it.product.ID].Total(),
		})
	}

	pctRefs := decimal.Zero
	if len(items) > 0 {
		pctRefs = decimal.NewFromInt(int64(nbSeuil)).
			Div(decimal.NewFromInt(int64(len(items)))).
			Mul(hundred)
	}

	return &dto.AnalyseParetoDTO{
		Criteres: req,
		Produits: produits,
		Resume: dto.ParetoResumeDTO{
			CATotal:               caTotal.Round(2),
			CACible:               caCible.Round(2),
			NbProduitsTotal:       len(items),
			NbProduitsSeuil:       nbSeuil,
			PourcentageReferences: pctRefs.Round(2),
		},
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete,
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(produits),
		},
	}, nil
}
