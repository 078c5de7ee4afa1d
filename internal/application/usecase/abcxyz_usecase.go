package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/analyse"
)

// ABCXYZUseCase clasificación cruzada ABC (parte del CA acumulado) × XYZ
// (regularidad mensual de la demanda), con la matriz 3×3 de estrategias.
type ABCXYZUseCase struct {
	data *DatasetBuilder
	now  Clock
}

// NewABCXYZUseCase construye el clasificador ABC/XYZ.
func NewABCXYZUseCase(data *DatasetBuilder, now Clock) *ABCXYZUseCase {
	if now == nil {
		now = time.Now
	}
	return &ABCXYZUseCase{data: data, now: now}
}

// Analyse ejecuta la clasificación sobre el período pedido. El conjunto
// clasificable es el mismo que el de Pareto: precio efectivo y ventas no
// nulas. El CV se calcula sobre los meses calendario nominales del período,
// con 0 para los meses sin ventas.
func (uc *ABCXYZUseCase) Analyse(ctx context.Context, req dto.ABCXYZRequest) (*dto.AnalyseABCXYZDTO, error) {
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

	seuilA := decimal.NewFromFloat(req.SeuilABCA)
	seuilB := decimal.NewFromFloat(req.SeuilABCB)
	months := monthKeys(from, to)

	type cellAgg struct {
		nb int
		ca decimal.Decimal
	}
	var cellules [9]cellAgg

	produits := make([]dto.ABCXYZProduitDTO, 0, len(items))
	cumule := decimal.Zero
	for _, it := range items {
		cumule = cumule.Add(it.ca)

		pctCA := decimal.Zero
		pctCumule := decimal.Zero
		if caTotal.IsPositive() {
			pctCA = it.ca.Div(caTotal).Mul(hundred)
			pctCumule = cumule.Div(caTotal).Mul(hundred)
		}
		abc := analyse.ClassifyABC(pctCumule, seuilA, seuilB)

		series := make([]float64, len(months))
		parMois := ds.Sales[it.product.ID].ParMois
		for i, key := range months {
			series[i] = float64(parMois[key])
		}
		cv := analyse.CoefficientVariation(series)
		xyz := analyse.ClassifyXYZ(cv, req.SeuilXYZX, req.SeuilXYZY)

		cell := analyse.CellOf(abc, xyz)
		strategy := analyse.StrategyFor(cell)
		cellules[cell].nb++
		cellules[cell].ca = cellules[cell].ca.Add(it.ca)

		produits = append(produits, dto.ABCXYZProduitDTO{
			ProduitID:            it.product.ID,
			EAN13:                it.product.EAN13,
			Nom:                  it.product.Name,
			CA:                   it.ca.Round(2),
			PourcentageCA:        pctCA.Round(2),
			PourcentageCumule:    pctCumule.Round(2),
			ClasseABC:            string(abc),
			CoefficientVariation: math.Round(cv*100) / 100,
			ClasseXYZ:            string(xyz),
			ClassificationFinale: cell.String(),
			Strategie:            strategy.Text,
			Actions:              strategy.Actions,
		})
	}

	matrice := make([]dto.ABCXYZCelluleDTO, 0, len(analyse.Cells))
	for _, cell := range analyse.Cells {
		agg := cellules[cell]
		pct := decimal.Zero
		if caTotal.IsPositive() {
			pct = agg.ca.Div(caTotal).Mul(hundred)
		}
		strategy := analyse.StrategyFor(cell)
		matrice = append(matrice, dto.ABCXYZCelluleDTO{
			Classification: cell.String(),
			NbProduits:     agg.nb,
			CA:             agg.ca.Round(2),
			PourcentageCA:  pct.Round(2),
			Strategie:      strategy.Text,
			Actions:        strategy.Actions,
		})
	}

	return &dto.AnalyseABCXYZDTO{
		Criteres: req,
		Produits: produits,
		Matrice:  matrice,
		Resume: dto.ABCXYZResumeDTO{
			PrioriteAbsolue: cellules[analyse.CellAX].nb,
			Surveillance:    cellules[analyse.CellAY].nb + cellules[analyse.CellAZ].nb,
			Automatisable:   cellules[analyse.CellBX].nb + cellules[analyse.CellCX].nb,
			Depriorises:     cellules[analyse.CellCZ].nb,
			NbProduits:      len(produits),
		},
		Diagnostic: dto.Diagnostic{
			Requete:  ds.Requete,
			DureeMs:  time.Since(start).Milliseconds(),
			NbLignes: len(produits),
		},
	}, nil
}
