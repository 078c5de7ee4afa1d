package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

var (
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
)

// StockUseCase análisis de cobertura de stock en meses: stock total dividido
// por la venta media mensual de los 12 últimos meses, con dos centinelas
// (RUPTURE, STOCK_INFINI) que escapan a la comparación numérica.
type StockUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewStockUseCase construye el analizador de cobertura.
func NewStockUseCase(data *DatasetBuilder, now Clock) *StockUseCase {
	if now == nil {
		now = time.Now
	}
	return &StockUseCase{data: data, now: now}
}

type stockItem struct {
	dto  dto.StockProduitDTO
	rank int             // 0 rupture, 1 numérico, 2 infini
	gap  decimal.Decimal // mois_stock - seuil, solo numéricos
}

// Analyse ejecuta el análisis de cobertura. Todos los productos resueltos
// participan, tengan o no precio: la cobertura solo depende de stock y ventas.
// El umbral filtra únicamente las coberturas numéricas; los centinelas se
// devuelven siempre (una ruptura interesa sea cual sea el seuil).
func (uc *StockUseCase) Analyse(ctx context.Context, req dto.StockRequest) (*dto.AnalyseStockDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	start := time.Now()
	now := uc.now()
	from := now.AddDate(0, -11, 0)

	ds, err := uc.data.Build(ctx, req.ProduitFilters, from, now, now)
	if err != nil {
		return nil, err
	}

	seuil := decimal.NewFromFloat(req.SeuilMoisStock)
	surstockSeuil := seuil.Mul(two)

	items := make([]stockItem, 0, len(ds.Products))
	numericSum := decimal.Zero
	numericCount := 0
	nbRuptures, nbSurstock := 0, 0

	for _, p := range ds.Products {
		st := ds.Stocks[p.ID] // ausencia de fila => stock cero
		stockTotal := st.Total()
		monthlyAvg := decimal.NewFromInt(ds.Sales[p.ID].Total).Div(twelve)

		var mois analyse.StockMonths
		switch {
		case !stockTotal.IsPositive():
			mois = analyse.RuptureStockMonths()
		case monthlyAvg.IsZero():
			mois = analyse.InfiniteStockMonths()
		default:
			mois = analyse.NumericStockMonths(stockTotal.Div(monthlyAvg))
		}

		// Agregados sobre el conjunto completo, antes de filtrar.
		switch mois.Kind() {
		case analyse.StockMonthsRupture:
			nbRuptures++
		case analyse.StockMonthsInfinite:
			nbSurstock++
		default:
			numericSum = numericSum.Add(mois.Value())
			numericCount++
			if mois.Value().GreaterThan(surstockSeuil) {
				nbSurstock++
			}
		}

		item := stockItem{rank: 1}
		ecart := analyse.NADelta()
		switch mois.Kind() {
		case analyse.StockMonthsRupture:
			item.rank = 0
		case analyse.StockMonthsInfinite:
			item.rank = 2
		default:
			item.gap = mois.Value().Sub(seuil)
			ecart = analyse.NumericDelta(item.gap)
			var keep bool
			if req.Mode == dto.ModeBelow {
				keep = mois.Value().LessThan(seuil)
			} else {
				keep = mois.Value().GreaterThan(seuil)
			}
			if !keep {
				continue
			}
		}

		item.dto = dto.StockProduitDTO{
			ProduitID:             p.ID,
			EAN13:                 p.EAN13,
			Nom:                   p.Name,
			StockRayon:            st.ShelfQty,
			StockReserve:          st.ReserveQty,
			StockTotal:            stockTotal,
			VenteMoyenneMensuelle: monthlyAvg.Round(2),
			MoisStock:             mois,
			EcartSeuil:            ecart,
		}
		items = append(items, item)
	}

	// Orden de lectura: rupturas primero, numéricos por desviación (los más
	// alejados del seuil en el sentido del modo), stock infini al final.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].rank != items[j].rank {
			return items[i].rank < items[j].rank
		}
		if items[i].rank != 1 {
			return false
		}
		if req.Mode == dto.ModeBelow {
			return items[i].gap.LessThan(items[j].gap)
		}
		return items[i].gap.GreaterThan(items[j].gap)
	})

	produits := make([]dto.StockProduitDTO, len(items))
	for i, it := range items {
		produits[i] = it.dto
	}

	moisMoyen := decimal.Zero
	if numericCount > 0 {
		moisMoyen = numericSum.Div(decimal.NewFromInt(int64(numericCount)))
	}

	return &dto.AnalyseStockDTO{
		Criteres: req,
		Produits: produits,
		Resume: dto.StockResumeDTO{
			MoisStockMoyen: moisMoyen.Round(2),
			NbRuptures:     nbRuptures,
			NbSurstock:     nbSurstock,
			NbProduits:     len(produits),
		},
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete,
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(produits),
		},
	}, nil
}
